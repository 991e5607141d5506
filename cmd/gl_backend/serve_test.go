package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/general_ledger/internal/middleware"
	"github.com/SscSPs/general_ledger/internal/platform/config"
	"github.com/SscSPs/general_ledger/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorsConfig(t *testing.T) {
	open := corsConfig(&config.Config{CORSAllowedOrigins: []string{"*"}})
	assert.True(t, open.AllowAllOrigins)
	assert.Empty(t, open.AllowOrigins)

	restricted := corsConfig(&config.Config{CORSAllowedOrigins: []string{"https://books.example.com"}})
	assert.False(t, restricted.AllowAllOrigins)
	assert.Equal(t, []string{"https://books.example.com"}, restricted.AllowOrigins)
	assert.Contains(t, restricted.ExposeHeaders, middleware.RequestIDHeader)
}

func TestNewRouter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := newRouter(&config.Config{RateLimit: "often"}, logger, nil)
	assert.Error(t, err)

	r, err := newRouter(&config.Config{RateLimit: "10-S", CORSAllowedOrigins: []string{"*"}}, logger, metrics.New())
	require.NoError(t, err)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://books.example.com")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}
