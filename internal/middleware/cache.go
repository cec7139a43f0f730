package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iamkarol/fitness-profile-service/internal/config"
)

// captureWriter captures the response body/status while forwarding to the client.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (cw *captureWriter) WriteHeader(code int) { cw.status = code; cw.ResponseWriter.WriteHeader(code) }
func (cw *captureWriter) Write(b []byte) (int, error) {
	cw.buf.Write(b)
	return cw.ResponseWriter.Write(b)
}

// ProfileCache is a per-account Redis cache for profile reads. The
// cache key is derived from the authenticated account id, never from
// the URL, so one account's cached document can never be served to
// another. Writes call Invalidate so a PUT is immediately visible
// on the next GET.
type ProfileCache struct {
	cfg config.CacheConfig
	rdb *redis.Client
}

// NewProfileCache builds a ProfileCache. A nil Redis client or a
// disabled config yields a cache whose middleware is a pass-through
// and whose Invalidate is a no-op.
func NewProfileCache(cfg config.CacheConfig, rdb *redis.Client) *ProfileCache {
	return &ProfileCache{cfg: cfg, rdb: rdb}
}

func (p *ProfileCache) enabled() bool { return p.cfg.Enabled && p.rdb != nil }

func (p *ProfileCache) key(accountID uint64) string {
	return fmt.Sprintf("%s:profile:%d", p.cfg.Prefix, accountID)
}

// Middleware serves GET responses from Redis when a fresh entry
// exists and stores successful responses otherwise. It must run
// after SessionAuth so the account id is available.
func (p *ProfileCache) Middleware() echo.MiddlewareFunc {
	if !p.enabled() {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	ttl := p.cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			accountID, ok := AccountID(c)
			if !ok {
				return next(c)
			}

			ctx := c.Request().Context()
			key := p.key(accountID)

			if body, err := p.rdb.Get(ctx, key).Bytes(); err == nil && len(body) > 0 {
				c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
				c.Response().Header().Set("X-Cache", "HIT")
				c.Response().WriteHeader(http.StatusOK)
				_, werr := c.Response().Write(body)
				return werr
			}

			// Miss: capture the handler's response and store it on 200.
			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}
			if cw.status == http.StatusOK && cw.buf.Len() > 0 {
				_ = p.rdb.SetEx(ctx, key, cw.buf.Bytes(), ttl).Err()
			}
			return nil
		}
	}
}

// Invalidate removes the cached profile for an account. Called by
// the profile write handler after a successful upsert. Errors are
// ignored: a stale entry expires via TTL anyway.
func (p *ProfileCache) Invalidate(c echo.Context, accountID uint64) {
	if !p.enabled() {
		return
	}
	_ = p.rdb.Del(c.Request().Context(), p.key(accountID)).Err()
}
