package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRateLimiterTest(t *testing.T, limit int) (*miniredis.Miniredis, echo.HandlerFunc) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	handler := RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: client,
		Key:         "ratelimit:login",
		Limit:       limit,
		Period:      time.Minute,
	})(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return mr, handler
}

func runLimitedRequest(handler echo.HandlerFunc) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec
}

func TestRateLimiterMiddleware_UnderLimitPassesThrough(t *testing.T) {
	_, handler := setupRateLimiterTest(t, 3)

	for i := 0; i < 3; i++ {
		rec := runLimitedRequest(handler)
		assert.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
		assert.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRateLimiterMiddleware_OverLimitGets429WithRetryAfter(t *testing.T) {
	_, handler := setupRateLimiterTest(t, 2)

	assert.Equal(t, http.StatusOK, runLimitedRequest(handler).Code)
	assert.Equal(t, http.StatusOK, runLimitedRequest(handler).Code)

	rec := runLimitedRequest(handler)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	retryAfter, err := strconv.Atoi(rec.Header().Get("Retry-After"))
	assert.NoError(t, err)
	assert.Greater(t, retryAfter, 0)

	var response map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "rate limit exceeded", response["error"])
}

func TestRateLimiterMiddleware_CounterResetsAfterPeriod(t *testing.T) {
	mr, handler := setupRateLimiterTest(t, 1)

	assert.Equal(t, http.StatusOK, runLimitedRequest(handler).Code)
	assert.Equal(t, http.StatusTooManyRequests, runLimitedRequest(handler).Code)

	mr.FastForward(time.Minute + time.Second)

	assert.Equal(t, http.StatusOK, runLimitedRequest(handler).Code)
}

func TestRateLimiterMiddleware_RedisFailureFailsOpen(t *testing.T) {
	mr, handler := setupRateLimiterTest(t, 1)

	assert.Equal(t, http.StatusOK, runLimitedRequest(handler).Code)

	// redis trouble must not lock callers out of login
	mr.Close()

	assert.Equal(t, http.StatusOK, runLimitedRequest(handler).Code)
}
