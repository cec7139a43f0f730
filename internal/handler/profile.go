package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iamkarol/fitness-profile-service/internal/middleware"
	"github.com/iamkarol/fitness-profile-service/internal/model"
	"github.com/iamkarol/fitness-profile-service/internal/repository"
)

// ProfileHandler bundles dependencies for the profile endpoints.
// All routes it serves sit behind SessionAuth, so the account id is
// always taken from the validated token, never from the request.
type ProfileHandler struct {
	Profiles *repository.ProfileRepo
	Cache    *middleware.ProfileCache
}

func NewProfileHandler(p *repository.ProfileRepo, cache *middleware.ProfileCache) *ProfileHandler {
	return &ProfileHandler{Profiles: p, Cache: cache}
}

// ----- DTOs -----

// profileReq carries a partial profile document. Absent fields stay
// nil and are skipped by the merge; present fields overwrite the
// stored values.
type profileReq struct {
	Email    *string  `json:"email"`
	Age      *uint32  `json:"age"`
	HeightCm *float64 `json:"height_cm"`
	WeightKg *float64 `json:"weight_kg"`
	Gender   *string  `json:"gender"`
	Goal     *string  `json:"goal"`
	Premium  *bool    `json:"premium"`
}

type profileResp struct {
	UID       uint64    `json:"uid"`
	Email     *string   `json:"email,omitempty"`
	Age       *uint32   `json:"age,omitempty"`
	HeightCm  *float64  `json:"height_cm,omitempty"`
	WeightKg  *float64  `json:"weight_kg,omitempty"`
	Gender    *string   `json:"gender,omitempty"`
	Goal      *string   `json:"goal,omitempty"`
	Premium   *bool     `json:"premium,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toProfileResp(p model.Profile) profileResp {
	return profileResp{
		UID:       p.AccountID,
		Email:     p.Email,
		Age:       p.Age,
		HeightCm:  p.HeightCm,
		WeightKg:  p.WeightKg,
		Gender:    p.Gender,
		Goal:      p.Goal,
		Premium:   p.Premium,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// Get returns the caller's profile document. A 404 means the
// account has never written a profile; that is an empty state, not
// a failure.
func (h *ProfileHandler) Get(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Profiles.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		log.Printf("profile get: query failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toProfileResp(p))
}

// Put upserts the caller's profile: fields present in the body
// overwrite the stored document, absent fields keep their stored
// values, and a missing document is created with both timestamps
// set. The merged result is returned.
func (h *ProfileHandler) Put(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req profileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Profiles.Upsert(ctx, accountID, model.Profile{
		Email:    req.Email,
		Age:      req.Age,
		HeightCm: req.HeightCm,
		WeightKg: req.WeightKg,
		Gender:   req.Gender,
		Goal:     req.Goal,
		Premium:  req.Premium,
	})
	if err != nil {
		log.Printf("profile put: upsert failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save profile failed"})
	}

	// Drop any cached copy so the next read sees this write.
	if h.Cache != nil {
		h.Cache.Invalidate(c, accountID)
	}

	return c.JSON(http.StatusOK, toProfileResp(p))
}
