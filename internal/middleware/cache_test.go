package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamkarol/fitness-profile-service/internal/config"
)

func TestProfileCache_DisabledIsPassThrough(t *testing.T) {
	// No redis client: the middleware must forward untouched and
	// Invalidate must be a no-op.
	cache := NewProfileCache(config.CacheConfig{Enabled: true, Prefix: "cache"}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := cache.Middleware()(func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, h(c))
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Cache"))

	cache.Invalidate(c, 7) // must not panic without a client
}

func TestProfileCache_KeyIsPerAccount(t *testing.T) {
	cache := NewProfileCache(config.CacheConfig{Enabled: true, Prefix: "cache"}, nil)
	assert.Equal(t, "cache:profile:7", cache.key(7))
	assert.NotEqual(t, cache.key(7), cache.key(8))
}
