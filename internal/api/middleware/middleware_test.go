package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"campus-admin/backend/pkg/redis"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) { c.String(http.StatusOK, "ok") }

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ── RequestID ──

func TestRequestID_Generated(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	w := serve(r, httptest.NewRequest("GET", "/", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get("X-Request-ID"))
}

func TestRequestID_PropagatesIncoming(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", okHandler)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := serve(r, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestRequestID_RejectsOverlong(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", okHandler)

	long := strings.Repeat("x", requestIDMaxLen+1)
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", long)
	w := serve(r, req)

	got := w.Header().Get("X-Request-ID")
	assert.NotEqual(t, long, got)
	assert.NotEmpty(t, got)
}

// ── Logger ──

func TestLogger_LevelByStatus(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := gin.New()
	r.Use(RequestID(), Logger(zap.New(core), "/"))
	r.GET("/ok", okHandler)
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	serve(r, httptest.NewRequest("GET", "/ok", nil))
	serve(r, httptest.NewRequest("GET", "/bad", nil))
	serve(r, httptest.NewRequest("GET", "/boom", nil))

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, zap.ErrorLevel, entries[2].Level)
	assert.NotEmpty(t, entries[0].ContextMap()["request_id"])
}

func TestLogger_RouteAndResource(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := gin.New()
	r.Use(Logger(zap.New(core), "/api/"))
	r.GET("/api", okHandler)
	r.GET("/api/buildings/:id", okHandler)

	serve(r, httptest.NewRequest("GET", "/api/buildings/42?x=1", nil))
	serve(r, httptest.NewRequest("GET", "/api", nil))
	serve(r, httptest.NewRequest("GET", "/nowhere", nil))

	entries := logs.All()
	require.Len(t, entries, 3)

	first := entries[0].ContextMap()
	assert.Equal(t, "/api/buildings/:id", first["route"])
	assert.Equal(t, "buildings", first["resource"])
	assert.Equal(t, "/api/buildings/42", first["path"])
	assert.Equal(t, "x=1", first["query"])
	assert.Contains(t, first, "size")

	assert.Equal(t, "index", entries[1].ContextMap()["resource"])
	assert.NotContains(t, entries[1].ContextMap(), "query")

	assert.Equal(t, zap.WarnLevel, entries[2].Level)
	assert.Equal(t, "", entries[2].ContextMap()["route"])
	assert.Equal(t, "-", entries[2].ContextMap()["resource"])
}

func TestResourceOf(t *testing.T) {
	tests := []struct {
		route, prefix, want string
	}{
		{"/api/dormitorys", "/api", "dormitorys"},
		{"/api/dormitorys/:id", "/api", "dormitorys"},
		{"/api/", "/api", "index"},
		{"/health", "/api", "health"},
		{"/buildings/:id", "/", "buildings"},
		{"", "/api", "-"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, resourceOf(tt.route, tt.prefix), tt.route)
	}
}

// ── BodyLimit ──

func TestBodyLimit_RejectsLargeContentLength(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimit(8))
	r.POST("/", okHandler)

	w := serve(r, httptest.NewRequest("POST", "/", bytes.NewReader(make([]byte, 16))))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "10005")
}

func TestBodyLimit_AllowsSmallBody(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimit(8))
	r.POST("/", func(c *gin.Context) {
		b, err := io.ReadAll(c.Request.Body)
		require.NoError(t, err)
		c.String(http.StatusOK, string(b))
	})

	w := serve(r, httptest.NewRequest("POST", "/", strings.NewReader("tiny")))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tiny", w.Body.String())
}

// ── SecurityHeaders ──

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/", okHandler)

	w := serve(r, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

// ── CORS ──

func TestCORS_AllowedOrigin(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:5173/"}))
	r.GET("/", okHandler)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := serve(r, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:5173"}))
	r.GET("/", okHandler)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	w := serve(r, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Wildcard(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"*"}))
	r.GET("/", okHandler)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://anything.example")
	w := serve(r, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

// ── RateLimit ──

func setupRateLimitRouter(t *testing.T, limit int) *gin.Engine {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	r := gin.New()
	r.Use(RateLimit(redis.NewFromRedis(rdb, zap.NewNop()), limit, time.Minute, zap.NewNop()))
	r.GET("/", okHandler)
	return r
}

func TestRateLimit_BlocksAfterLimit(t *testing.T) {
	r := setupRateLimitRouter(t, 2)

	for i := 0; i < 2; i++ {
		w := serve(r, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}

	w := serve(r, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "10004")
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
}

func TestRateLimit_NilClientPassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(nil, 1, time.Minute, zap.NewNop()))
	r.GET("/", okHandler)

	for i := 0; i < 3; i++ {
		w := serve(r, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimit_RedisDownPassesThrough(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	mr.Close()

	r := gin.New()
	r.Use(RateLimit(redis.NewFromRedis(rdb, zap.NewNop()), 1, time.Minute, zap.NewNop()))
	r.GET("/", okHandler)

	w := serve(r, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

// ── Metrics ──

func TestMetrics_CountsByRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/items/:id", okHandler)
	r.GET("/metrics", m.Handler())

	serve(r, httptest.NewRequest("GET", "/items/1", nil))
	serve(r, httptest.NewRequest("GET", "/items/2", nil))
	serve(r, httptest.NewRequest("GET", "/missing", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/items/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "unmatched", "404")))

	w := serve(r, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "campus_admin_http_requests_total")
}
