package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

var (
	openAPIOnce sync.Once
	openAPIJSON []byte
	openAPIErr  error
)

func (s *Server) handleOpenAPI(w http.ResponseWriter, r *http.Request) {
	openAPIOnce.Do(func() {
		openAPIJSON, openAPIErr = json.Marshal(buildOpenAPIDoc())
	})
	if openAPIErr != nil {
		writeError(w, http.StatusInternalServerError, "openapi document unavailable", "")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openAPIJSON)
}

func buildOpenAPIDoc() *openapi3.T {
	op := func(id, summary string) *openapi3.Operation {
		return &openapi3.Operation{
			OperationID: id,
			Summary:     summary,
			Responses: openapi3.NewResponses(openapi3.WithStatus(http.StatusOK,
				&openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription("Successful response")})),
		}
	}

	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Phoney",
			Description: "Fake data generation API with template support.",
			Version:     "1.0.0",
		},
		Paths: openapi3.NewPaths(
			openapi3.WithPath("/healthz", &openapi3.PathItem{
				Get: op("health", "Service liveness"),
			}),
			openapi3.WithPath("/generators", &openapi3.PathItem{
				Get: op("listGenerators", "List every generator name"),
			}),
			openapi3.WithPath("/generator/{name}", &openapi3.PathItem{
				Get: op("describeGenerator", "Describe one generator, with fuzzy name resolution"),
			}),
			openapi3.WithPath("/providers", &openapi3.PathItem{
				Get: op("listProviders", "Provider metadata grouped by category"),
			}),
			openapi3.WithPath("/provider/{name}", &openapi3.PathItem{
				Get: op("getProvider", "Generators in one provider"),
			}),
			openapi3.WithPath("/fake/{generator}", &openapi3.PathItem{
				Get: op("generateValue", "Generate values from a single generator"),
			}),
			openapi3.WithPath("/template", &openapi3.PathItem{
				Post: op("simpleTemplate", "Generate records from a template"),
			}),
			openapi3.WithPath("/template/examples", &openapi3.PathItem{
				Get: op("templateExamples", "Curated example templates"),
			}),
			openapi3.WithPath("/token", &openapi3.PathItem{
				Post: op("issueToken", "Exchange credentials for a bearer token"),
			}),
			openapi3.WithPath("/api/v1/template/generate", &openapi3.PathItem{
				Post: op("generateTemplate", "Authenticated generation with CSV support"),
			}),
			openapi3.WithPath("/api/v1/template/validate", &openapi3.PathItem{
				Post: op("validateTemplate", "Validate a template without generating"),
			}),
		),
	}
}
