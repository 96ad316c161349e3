package web

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRequestID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	id := requestID(r)
	_, err := uuid.Parse(id)
	assert.NoError(t, err, "generated id should be a UUID")

	r.Header.Set("X-Request-ID", "client-abc")
	assert.Equal(t, "client-abc", requestID(r))

	r.Header.Set("X-Request-ID", strings.Repeat("x", maxRequestIDLen+1))
	assert.NotEqual(t, strings.Repeat("x", maxRequestIDLen+1), requestID(r))
}

func TestCORSPreflight(t *testing.T) {
	called := false
	h := cors("http://localhost:3000", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/assets/add", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
}

func TestCORSDisabled(t *testing.T) {
	h := cors("", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/get", nil))

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServerRunStopsOnCancel(t *testing.T) {
	s := NewServer(nil, nil, "*", discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, "127.0.0.1:0") }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestServerRunListenError(t *testing.T) {
	s := NewServer(nil, nil, "*", discardLogger())

	err := s.Run(context.Background(), "127.0.0.1:notaport")
	require.Error(t, err)
}
