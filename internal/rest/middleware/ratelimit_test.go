package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/smsdesk/smsdesk/internal/config"
	"github.com/smsdesk/smsdesk/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateLimitedRouter(rl config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.GetDefaultConfig()
	cfg.RateLimit = rl

	router := gin.New()
	router.Use(RateLimitMiddleware(cfg))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func ping(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	req.Header.Set(types.HeaderReferer, "https://app.example.com/groups")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("second request within the window is rejected", func(t *testing.T) {
		router := newRateLimitedRouter(config.RateLimitConfig{Enabled: true, RPS: 1, Burst: 1})

		assert.Equal(t, http.StatusOK, ping(router, "10.0.0.1:1234").Code)

		w := ping(router, "10.0.0.1:1234")
		require.Equal(t, http.StatusTooManyRequests, w.Code)

		var result types.Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, types.OutcomeFailure, result.Outcome)
		assert.Equal(t, "Too many requests, please slow down.", result.Message)
		assert.Equal(t, "https://app.example.com/groups", result.RedirectTarget)
	})

	t.Run("clients are limited independently", func(t *testing.T) {
		router := newRateLimitedRouter(config.RateLimitConfig{Enabled: true, RPS: 1, Burst: 1})

		assert.Equal(t, http.StatusOK, ping(router, "10.0.0.1:1234").Code)
		assert.Equal(t, http.StatusTooManyRequests, ping(router, "10.0.0.1:1234").Code)
		assert.Equal(t, http.StatusOK, ping(router, "10.0.0.2:1234").Code)
	})

	t.Run("disabled limiter passes everything through", func(t *testing.T) {
		router := newRateLimitedRouter(config.RateLimitConfig{Enabled: false, RPS: 1, Burst: 1})

		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusOK, ping(router, "10.0.0.1:1234").Code)
		}
	})
}
