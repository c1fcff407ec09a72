package server

import (
	"net/http"
	"strconv"

	"github.com/jpwhite3/phoney/pkg/fake"
	"github.com/jpwhite3/phoney/pkg/template"
)

func (s *Server) handleGenerators(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, fake.New().Names())
}

func (s *Server) handleGeneratorInfo(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	registry := fake.New()
	concrete, ok := registry.Resolve(name)
	if !ok {
		writeError(w, http.StatusNotFound, "generator not found", name)
		return
	}
	desc, _ := registry.Describe(concrete)
	writeJSON(w, http.StatusOK, desc)
}

func (s *Server) handleProviders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Metadata())
}

func (s *Server) handleProvider(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	p, ok := s.catalog.Get(name)
	if !ok {
		writeError(w, http.StatusNotFound, "provider not found", name)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type fakeResponse struct {
	Generator string `json:"generator"`
	Locale    string `json:"locale"`
	Seed      *int64 `json:"seed,omitempty"`
	Count     int    `json:"count"`
	Data      any    `json:"data"`
}

// handleFake serves one-off generation: GET /fake/{generator} with
// optional count, seed, and locale query parameters. Remaining query
// parameters are passed through to the generator after coercion.
func (s *Server) handleFake(w http.ResponseWriter, r *http.Request) {
	requested := r.PathValue("generator")
	query := r.URL.Query()

	count := 1
	if raw := query.Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid count", raw)
			return
		}
		count = n
	}
	if count > s.cfg.Limits.MaxCount {
		writeError(w, http.StatusBadRequest, "count exceeds limit",
			strconv.Itoa(s.cfg.Limits.MaxCount))
		return
	}

	var seed *int64
	if raw := query.Get("seed"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid seed", raw)
			return
		}
		seed = &n
	}

	opts := []fake.Option{fake.WithLocale(query.Get("locale"))}
	if seed != nil {
		opts = append(opts, fake.WithSeed(*seed))
	}
	registry := fake.New(opts...)

	concrete, ok := registry.Resolve(requested)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":       "generator not found",
			"generator":   requested,
			"suggestions": registry.Suggest(requested, 5),
		})
		return
	}

	params := make(map[string]any)
	for key, values := range query {
		switch key {
		case "count", "seed", "locale":
			continue
		}
		if len(values) > 0 {
			params[key] = template.CoerceValue(values[0])
		}
	}

	values := make([]any, 0, count)
	for i := 0; i < count; i++ {
		value, err := registry.Invoke(concrete, params)
		if err != nil {
			writeError(w, http.StatusBadRequest, "generation failed", err.Error())
			return
		}
		values = append(values, value)
	}

	var data any = values
	if count == 1 {
		data = values[0]
	}
	writeJSON(w, http.StatusOK, fakeResponse{
		Generator: concrete,
		Locale:    registry.Locale(),
		Seed:      seed,
		Count:     count,
		Data:      data,
	})
}
