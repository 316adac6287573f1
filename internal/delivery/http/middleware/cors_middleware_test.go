package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func serveCORS(m *CORSMiddleware, method, origin string, preflight bool) (*httptest.ResponseRecorder, bool) {
	reached := false
	h := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	req := httptest.NewRequest(method, "/api/v1/rooms", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	if preflight {
		req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec, reached
}

func TestCORSMiddleware_Wildcard(t *testing.T) {
	m := NewCORSMiddleware([]string{"*"})

	rec, reached := serveCORS(m, http.MethodOptions, "https://anything.example", true)
	assert.False(t, reached)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, corsMaxAge, rec.Header().Get("Access-Control-Max-Age"))

	rec, reached = serveCORS(m, http.MethodGet, "", false)
	assert.True(t, reached)
	assert.Equal(t, RequestIDHeader, rec.Header().Get("Access-Control-Expose-Headers"))
}

func TestCORSMiddleware_Allowlist(t *testing.T) {
	m := NewCORSMiddleware([]string{" https://Desk.example.com/ ", ""})

	rec, reached := serveCORS(m, http.MethodGet, "https://desk.example.com", false)
	assert.True(t, reached)
	assert.Equal(t, "https://desk.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	rec, reached = serveCORS(m, http.MethodGet, "https://other.example.com", false)
	assert.True(t, reached, "the browser enforces CORS, the request still runs")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	// A bare OPTIONS without a preflight header is an ordinary request.
	_, reached = serveCORS(m, http.MethodOptions, "https://desk.example.com", false)
	assert.True(t, reached)
}
