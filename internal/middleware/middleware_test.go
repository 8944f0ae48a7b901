package middleware

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fyyur/internal/config"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func limitCfg() config.RateLimitConfig {
	return config.RateLimitConfig{
		Enabled:        true,
		Capacity:       2,
		RefillTokens:   1,
		RefillInterval: time.Second,
		TTL:            time.Minute,
		KeyStrategy:    "ip_route",
		Prefix:         "rl",
	}
}

func serve(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set(echo.HeaderXRealIP, "10.0.0.1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func ok(c echo.Context) error { return c.String(http.StatusOK, "ok") }

func TestTokenBucketDisabled(t *testing.T) {
	cfg := limitCfg()
	cfg.Enabled = false
	e := echo.New()
	e.POST("/venues/create", ok, NewTokenBucket(cfg, nil, discard))

	rec := serve(e, http.MethodPost, "/venues/create")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestTokenBucketFailsOpen(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	e := echo.New()
	e.POST("/venues/create", ok, NewTokenBucket(limitCfg(), rdb, discard))

	rec := serve(e, http.MethodPost, "/venues/create")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestTokenBucketBlocks(t *testing.T) {
	fixed := time.UnixMilli(1_700_000_000_000)
	clock = func() time.Time { return fixed }
	t.Cleanup(func() { clock = time.Now })

	cfg := limitCfg()
	rdb, mock := redismock.NewClientMock()
	mock.ExpectEvalSha(limiterScript.Hash(), []string{"rl:ip:10.0.0.1:route:POST /venues/create"},
		fixed.UnixMilli(), cfg.Capacity, cfg.RefillTokens,
		cfg.RefillInterval.Milliseconds(), int64(cfg.TTL/time.Second),
	).SetVal([]interface{}{int64(0), int64(0), int64(1500)})

	e := echo.New()
	e.POST("/venues/create", ok, NewTokenBucket(cfg, rdb, discard))

	rec := serve(e, http.MethodPost, "/venues/create")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "2", rec.Header().Get("Retry-After"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildRateKey(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/venues/3", nil)
	req.Header.Set(echo.HeaderXRealIP, "10.0.0.1")
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/venues/:id")

	cfg := limitCfg()
	assert.Equal(t, "rl:ip:10.0.0.1:route:DELETE /venues/:id", buildRateKey(cfg, c))
	cfg.KeyStrategy = "ip"
	assert.Equal(t, "rl:ip:10.0.0.1", buildRateKey(cfg, c))
	cfg.KeyStrategy = "route"
	assert.Equal(t, "rl:route:DELETE /venues/:id", buildRateKey(cfg, c))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	e := echo.New()
	e.Use(RequestLogger(log))
	e.GET("/venues", ok)
	e.GET("/boom", func(c echo.Context) error { return errors.New("db gone") })

	serve(e, http.MethodGet, "/venues")
	rec := serve(e, http.MethodGet, "/boom")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	out := buf.String()
	assert.Contains(t, out, "uri=/venues")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "db gone")
}
