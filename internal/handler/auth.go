package handler

import (
	"context"      // provides context with cancellation for DB calls
	"database/sql" // SQL database interactions
	"errors"
	"log"
	"net/http" // HTTP status codes and primitives
	"strings"  // string manipulation utilities
	"time"     // timeouts for DB calls

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iamkarol/fitness-profile-service/internal/config"
	"github.com/iamkarol/fitness-profile-service/internal/queue"
	"github.com/iamkarol/fitness-profile-service/internal/repository"
	queuepublisher "github.com/iamkarol/fitness-profile-service/internal/service"
	"github.com/iamkarol/fitness-profile-service/internal/utils"
)

// AuthHandler bundles dependencies for the register and login endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Accounts *repository.AccountRepo
}

func NewAuthHandler(cfg config.Config, a *repository.AccountRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Accounts: a}
}

// ----- DTOs -----

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type accountResp struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type tokenResp struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// Register creates an account and returns its public fields. No
// session token is issued here; clients log in as a separate step.
// The password hash never appears in any response.
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create account failed"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acc, err := h.Accounts.Create(ctx, req.Username, hash)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "username already taken"})
		}
		log.Printf("register: create account failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create account failed"})
	}

	// Fire-and-forget signup event; registration never fails because
	// the broker is down.
	go func(ev queue.AccountRegisteredEvent) {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pubCancel()
		_ = queuepublisher.PublishAccountRegistered(pubCtx, ev)
	}(queue.AccountRegisteredEvent{
		AccountID:    acc.ID,
		Username:     acc.Username,
		RegisteredAt: acc.CreatedAt.UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, accountResp{
		ID:        acc.ID,
		Username:  acc.Username,
		CreatedAt: acc.CreatedAt,
	})
}

// Login verifies credentials and returns a fresh session token. An
// unknown username and a wrong password produce the same response so
// the endpoint does not leak which accounts exist.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acc, err := h.Accounts.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		log.Printf("login: query failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(acc.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, err := utils.NewSessionToken(h.Cfg.JWTSecret, acc.ID, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	return c.JSON(http.StatusOK, tokenResp{Token: token.Token, Expires: token.Exp})
}
