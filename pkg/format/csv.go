// Package format converts generated record batches into response
// payloads beyond plain JSON.
package format

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// RecordsToCSV flattens a batch of records into CSV text. Nested maps
// contribute dotted column names, arrays are JSON-encoded into their
// cell. The header is the union of flattened keys: the first record's
// keys in sorted order, with keys introduced by later records appended
// (also sorted). Records missing a column leave the cell empty.
func RecordsToCSV(records []any) (string, error) {
	if len(records) == 0 {
		return "", nil
	}

	flats := make([]map[string]string, 0, len(records))
	var header []string
	known := make(map[string]struct{})

	for i, record := range records {
		asMap, ok := record.(map[string]any)
		if !ok {
			return "", fmt.Errorf("format: record %d is %T, expected an object", i, record)
		}
		flat := make(map[string]string)
		flatten("", asMap, flat)
		flats = append(flats, flat)

		fresh := make([]string, 0, len(flat))
		for key := range flat {
			if _, seen := known[key]; !seen {
				known[key] = struct{}{}
				fresh = append(fresh, key)
			}
		}
		sort.Strings(fresh)
		header = append(header, fresh...)
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("format: write header: %w", err)
	}
	for _, flat := range flats {
		row := make([]string, len(header))
		for i, column := range header {
			row[i] = flat[column]
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("format: write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("format: flush: %w", err)
	}
	return buf.String(), nil
}

func flatten(prefix string, node map[string]any, dest map[string]string) {
	for key, value := range node {
		column := key
		if prefix != "" {
			column = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			flatten(column, v, dest)
		case []any:
			encoded, err := json.Marshal(v)
			if err != nil {
				dest[column] = fmt.Sprintf("%v", v)
				continue
			}
			dest[column] = string(encoded)
		case nil:
			dest[column] = ""
		default:
			dest[column] = fmt.Sprintf("%v", v)
		}
	}
}
