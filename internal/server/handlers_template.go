package server

import (
	"net/http"
	"strconv"

	"github.com/jpwhite3/phoney"
	"github.com/jpwhite3/phoney/pkg/fake"
	"github.com/jpwhite3/phoney/pkg/format"
	"github.com/jpwhite3/phoney/pkg/template"
)

type templateRequest struct {
	Template any    `json:"template"`
	Count    int    `json:"count"`
	Locale   string `json:"locale,omitempty"`
	Seed     *int64 `json:"seed,omitempty"`
	Unique   bool   `json:"unique,omitempty"`
	Format   string `json:"format,omitempty"`
}

type templateResponse struct {
	Data           any                  `json:"data"`
	GeneratedCount int                  `json:"generated_count"`
	RequestedCount int                  `json:"requested_count"`
	Format         string               `json:"format"`
	Locale         string               `json:"locale"`
	Seed           *int64               `json:"seed,omitempty"`
	Streaming      bool                 `json:"streaming,omitempty"`
	Diagnostics    []phoney.Diagnostic  `json:"diagnostics,omitempty"`
}

type validateRequest struct {
	Template any  `json:"template"`
	Strict   bool `json:"strict,omitempty"`
}

type validateResponse struct {
	Valid      bool                     `json:"valid"`
	Errors     []phoney.ValidationError `json:"errors"`
	Warnings   []string                 `json:"warnings"`
	FieldCount int                      `json:"field_count"`
}

// handleSimpleTemplate serves the unauthenticated JSON-only template
// endpoint with the lower count cap.
func (s *Server) handleSimpleTemplate(w http.ResponseWriter, r *http.Request) {
	s.generate(w, r, s.cfg.Limits.MaxCount, false)
}

// handleGenerate serves the authenticated v1 endpoint: higher count
// cap, CSV output, and the streaming advisory flag.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	s.generate(w, r, s.cfg.Limits.MaxTemplateCount, true)
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request, maxCount int, allowCSV bool) {
	var req templateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Template == nil {
		writeError(w, http.StatusBadRequest, "template is required", "")
		return
	}
	if req.Count < 1 {
		req.Count = 1
	}
	if req.Count > maxCount {
		writeError(w, http.StatusBadRequest, "count exceeds limit", strconv.Itoa(maxCount))
		return
	}

	outFormat := req.Format
	if outFormat == "" {
		outFormat = "json"
	}
	if outFormat != "json" && !(allowCSV && outFormat == "csv") {
		writeError(w, http.StatusBadRequest, "unsupported format", req.Format)
		return
	}

	valid, verrs, _ := s.engine.Validate(req.Template, false)
	if !valid {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "template validation failed",
			"errors": verrs,
		})
		return
	}

	opts := []template.ProcessOption{
		template.WithLocale(req.Locale),
		template.WithUnique(req.Unique),
	}
	if req.Seed != nil {
		opts = append(opts, template.WithSeed(*req.Seed))
	}

	records, diags, err := s.engine.Process(req.Template, req.Count, opts...)
	if err != nil {
		writeError(w, http.StatusBadRequest, "template processing failed", err.Error())
		return
	}

	locale := req.Locale
	if locale == "" {
		locale = fake.DefaultLocale
	}

	resp := templateResponse{
		GeneratedCount: len(records),
		RequestedCount: req.Count,
		Format:         outFormat,
		Locale:         locale,
		Seed:           req.Seed,
		Streaming:      allowCSV && req.Count > s.cfg.Limits.StreamingThreshold,
		Diagnostics:    diags,
	}

	if outFormat == "csv" {
		csvText, err := format.RecordsToCSV(records)
		if err != nil {
			writeError(w, http.StatusBadRequest, "csv encoding failed", err.Error())
			return
		}
		resp.Data = csvText
	} else {
		resp.Data = records
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	valid, verrs, warnings := s.engine.Validate(req.Template, req.Strict)

	fields, err := s.engine.Extract(req.Template)
	if err != nil {
		fields = nil
	}
	if verrs == nil {
		verrs = []phoney.ValidationError{}
	}
	if warnings == nil {
		warnings = []string{}
	}

	writeJSON(w, http.StatusOK, validateResponse{
		Valid:      valid,
		Errors:     verrs,
		Warnings:   warnings,
		FieldCount: len(fields),
	})
}
