// Package server exposes the generator registry and template engine
// over HTTP. Routing, authentication, rate limiting, and response
// formatting live here; the engine itself stays transport-agnostic.
package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jpwhite3/phoney"
	"github.com/jpwhite3/phoney/internal/config"
	"github.com/jpwhite3/phoney/pkg/fake"
	"github.com/jpwhite3/phoney/pkg/provider"
)

// Server wires the engine, registry, and catalog behind the HTTP API.
type Server struct {
	cfg     config.Config
	log     *slog.Logger
	engine  *phoney.Engine
	catalog *provider.Catalog
	tokens  *tokenStore
	limiter *clientLimiter
	handler http.Handler
}

// New builds a Server from configuration.
func New(cfg config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:     cfg,
		log:     logger,
		engine:  phoney.NewEngine(),
		catalog: provider.NewCatalog(fake.New()),
		tokens:  newTokenStore(cfg.Auth.TokenTTL),
		limiter: newClientLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst),
	}
	s.handler = s.buildHandler()
	return s
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe runs the server until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := net.JoinHostPort(s.cfg.Server.Host, strconv.Itoa(s.cfg.Server.Port))
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.handler,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.WriteTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) buildHandler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /generators", s.handleGenerators)
	mux.HandleFunc("GET /generator/{name}", s.handleGeneratorInfo)
	mux.HandleFunc("GET /providers", s.handleProviders)
	mux.HandleFunc("GET /provider/{name}", s.handleProvider)
	mux.HandleFunc("GET /fake/{generator}", s.handleFake)
	mux.HandleFunc("POST /template", s.handleSimpleTemplate)
	mux.HandleFunc("GET /template/examples", s.handleTemplateExamples)
	mux.HandleFunc("POST /token", s.handleToken)
	mux.HandleFunc("GET /openapi.json", s.handleOpenAPI)

	mux.Handle("POST /api/v1/template/generate", s.requireAuth(http.HandlerFunc(s.handleGenerate)))
	mux.HandleFunc("POST /api/v1/template/validate", s.handleValidate)
	mux.HandleFunc("GET /api/v1/template/examples", s.handleTemplateExamples)

	var h http.Handler = mux
	h = s.rateLimit(h)
	h = s.securityHeaders(h)
	h = s.cors(h)
	h = s.accessLog(h)
	h = requestID(h)
	return h
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
