package template

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	paramPairPattern = regexp.MustCompile(`(\w+)=([^,]+)`)
	floatPattern     = regexp.MustCompile(`^\d+\.\d+$`)
)

// ParseParameters parses a compact "key=value,key=value" string into a
// typed Params map. Values are coerced in priority order: boolean,
// integer, float, then string with one layer of surrounding quotes
// stripped. Extraction is regex-driven and deliberately permissive:
// fragments that do not look like key=value pairs are silently dropped,
// never rejected. Empty input yields an empty map.
func ParseParameters(text string) Params {
	params := Params{}
	if text == "" {
		return params
	}
	for _, pair := range paramPairPattern.FindAllStringSubmatch(text, -1) {
		params[pair[1]] = CoerceValue(strings.TrimSpace(pair[2]))
	}
	return params
}

// CoerceValue applies the parameter coercion rules to a single raw
// value: boolean, then integer, then float, then quoted-stripped
// string.
func CoerceValue(raw string) any {
	switch strings.ToLower(raw) {
	case "true":
		return true
	case "false":
		return false
	}
	if isAllDigits(raw) {
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	}
	if floatPattern.MatchString(raw) {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	}
	return stripQuotes(raw)
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// stripQuotes removes one layer of matching surrounding single or double
// quotes.
func stripQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '\'' || first == '"') {
		return s[1 : len(s)-1]
	}
	return s
}
