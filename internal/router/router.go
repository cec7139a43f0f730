package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iamkarol/fitness-profile-service/internal/handler"
	"github.com/iamkarol/fitness-profile-service/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication
// on the provided Echo instance. Currently it exposes only a health
// check, used by load balancers to verify that the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the credential endpoints under /v1/auth.
// Neither route requires an existing session: register creates the
// account and login exchanges credentials for a session token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
}

// RegisterProfile registers the profile endpoints under /v1. Both
// routes sit behind SessionAuth so handlers always see a validated
// account id. The cache middleware wraps only the read path; writes
// go straight to the handler, which invalidates the cache itself.
func RegisterProfile(e *echo.Echo, p *handler.ProfileHandler, cache *middleware.ProfileCache, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.SessionAuth(jwtSecret))
	g.GET("/profile", p.Get, cache.Middleware())
	g.PUT("/profile", p.Put)
}
