package server

import "net/http"

// templateExamples is the curated starter set served by the examples
// endpoint. Each entry is a ready-to-post request body.
var templateExamples = map[string]any{
	"basic_example": map[string]any{
		"template": map[string]any{
			"name":  "{{name}}",
			"email": "{{email}}",
			"phone": "{{phone}}",
		},
		"count": 5,
	},
	"parameterized_example": map[string]any{
		"template": map[string]any{
			"age":   "{{random_int:min=18,max=80}}",
			"price": "{{price:min=1,max=500}}",
		},
		"count": 3,
	},
	"array_example": map[string]any{
		"template": map[string]any{
			"company":   "{{company}}",
			"employees": "{{[name]:count=3}}",
			"tags":      "{{[word]:count=5}}",
		},
		"count": 2,
	},
	"nested_example": map[string]any{
		"template": map[string]any{
			"user": map[string]any{
				"profile": map[string]any{
					"name":  "{{name}}",
					"email": "{{email}}",
				},
				"address": map[string]any{
					"street": "{{street}}",
					"city":   "{{city}}",
					"zip":    "{{zip}}",
				},
			},
			"active": "{{bool}}",
		},
		"count": 1,
	},
	"reproducible_example": map[string]any{
		"template": map[string]any{
			"id":   "{{uuid}}",
			"name": "{{name}}",
		},
		"count": 5,
		"seed":  42,
	},
}

func (s *Server) handleTemplateExamples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"examples": templateExamples})
}
