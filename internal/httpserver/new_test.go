package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"quote-service/config"
	"quote-service/pkg/log"
)

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	srv, err := New(log.NewNop(), Config{
		Logger:      log.NewNop(),
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "development",
		Redis:       rdb,
		RateLimit:   config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestNewValidation(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"Missing Port", Config{Mode: gin.TestMode, Redis: &goredis.Client{}}},
		{"Missing Mode", Config{Port: 8080, Redis: &goredis.Client{}}},
		{"Missing Redis", Config{Port: 8080, Mode: gin.TestMode}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(log.NewNop(), tc.cfg); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestMapHandlers(t *testing.T) {
	srv := newTestServer(t)
	if err := srv.mapHandlers(); err != nil {
		t.Fatalf("mapHandlers: %v", err)
	}

	t.Run("Health Route Registered", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("Ready Route Pings Storage", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("Quote Routes Registered", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/quotes", nil))
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})
}
