package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stellar-wallet-core/internal/adapter/http/middleware"
	redisStore "stellar-wallet-core/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitRouter(t *testing.T) (*gin.Engine, *miniredis.Miniredis) {
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := redisStore.NewRateLimitStore(client)
	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}

	r := gin.New()
	// Stands in for JWTAuth so requests can carry a session id.
	r.Use(func(c *gin.Context) {
		if sid := c.GetHeader("X-Test-Session"); sid != "" {
			c.Set(middleware.CtxSessionID, sid)
		}
	})
	r.GET("/test", middleware.RateLimiter(store, "test", rule, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	return r, mr
}

func get(r *gin.Engine, session string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if session != "" {
		req.Header.Set("X-Test-Session", session)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	router, _ := setupRateLimitRouter(t)

	for i := 0; i < 3; i++ {
		w := get(router, "")
		assert.Equal(t, 200, w.Code, "request %d should succeed", i+1)
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	router, _ := setupRateLimitRouter(t)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, get(router, "").Code)
	}

	w := get(router, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimiter_SessionsCountedSeparately(t *testing.T) {
	router, _ := setupRateLimitRouter(t)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, get(router, "a").Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, get(router, "a").Code)
	assert.Equal(t, 200, get(router, "b").Code)
}

func TestRateLimiter_StoreDownAllows(t *testing.T) {
	router, mr := setupRateLimitRouter(t)
	mr.Close()

	w := get(router, "")
	assert.Equal(t, 200, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestDefaultRateLimitRules(t *testing.T) {
	rules := middleware.DefaultRateLimitRules()
	assert.Equal(t, int64(5), rules["session"].Limit)
	assert.Equal(t, int64(20), rules["submit"].Limit)
	for group, rule := range rules {
		assert.Positive(t, rule.Limit, group)
		assert.Equal(t, time.Minute, rule.Window, group)
	}
}
