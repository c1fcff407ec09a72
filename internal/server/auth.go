package server

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// tokenStore tracks issued bearer tokens in memory. Tokens are opaque
// random strings; restarting the service invalidates them all.
type tokenStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	tokens map[string]time.Time
}

func newTokenStore(ttl time.Duration) *tokenStore {
	return &tokenStore{ttl: ttl, tokens: make(map[string]time.Time)}
}

func (ts *tokenStore) issue() (string, time.Time, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", time.Time{}, err
	}
	token := hex.EncodeToString(raw)
	expiry := time.Now().Add(ts.ttl)

	ts.mu.Lock()
	ts.tokens[token] = expiry
	ts.mu.Unlock()
	return token, expiry, nil
}

func (ts *tokenStore) valid(token string) bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	expiry, ok := ts.tokens[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(ts.tokens, token)
		return false
	}
	return true
}

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   string `json:"expires_at"`
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if s.cfg.Auth.PasswordHash == "" {
		writeError(w, http.StatusServiceUnavailable, "token auth not configured", "")
		return
	}
	if subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.Auth.Username)) != 1 {
		writeError(w, http.StatusUnauthorized, "invalid credentials", "")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.PasswordHash), []byte(req.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	token, expiry, err := s.tokens.issue()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "token issuance failed", "")
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiry.UTC().Format(time.RFC3339),
	})
}

// requireAuth accepts either a bearer token from /token or the
// configured API key.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if key := r.Header.Get("X-API-Key"); key != "" && s.cfg.Auth.APIKey != "" {
			if subtle.ConstantTimeCompare([]byte(key), []byte(s.cfg.Auth.APIKey)) == 1 {
				next.ServeHTTP(w, r)
				return
			}
		}

		authz := r.Header.Get("Authorization")
		if token, ok := strings.CutPrefix(authz, "Bearer "); ok && s.tokens.valid(token) {
			next.ServeHTTP(w, r)
			return
		}

		writeError(w, http.StatusUnauthorized, "authentication required", "")
	})
}
