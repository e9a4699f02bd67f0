package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/service"
	"alcyxob/fitness-tracker/internal/validation"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService service.ProfileService
	metrics        *metrics.Manager
}

func NewProfileHandler(profileService service.ProfileService, m *metrics.Manager) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, metrics: m}
}

// --- DTOs ---

// CreateProfileRequest defines the expected JSON for creating a profile.
type CreateProfileRequest struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required"`
	HeightCM *float64 `json:"height_cm" binding:"omitempty,gt=0"`
	Goal     *string  `json:"goal"`
}

type GetProfileQuery struct {
	Email string `form:"email" binding:"required"`
}

// IDResponse is returned by every create endpoint.
type IDResponse struct {
	ID string `json:"id"`
}

type ProfileResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	HeightCM  *float64 `json:"height_cm"`
	Goal      *string  `json:"goal"`
	CreatedAt string   `json:"created_at"`
}

// MapProfileToResponse converts a domain.UserProfile to ProfileResponse DTO.
func MapProfileToResponse(p *domain.UserProfile) ProfileResponse {
	if p == nil {
		return ProfileResponse{}
	}
	return ProfileResponse{
		ID:        p.ID.Hex(),
		Name:      p.Name,
		Email:     p.Email,
		HeightCM:  p.HeightCM,
		Goal:      p.Goal,
		CreatedAt: formatTimestamp(p.CreatedAt),
	}
}

// formatTimestamp renders creation times as RFC 3339 in UTC.
func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// --- Handler Methods ---

// CreateProfile godoc
// @Summary Create a user profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param profile body CreateProfileRequest true "Profile details"
// @Success 201 {object} IDResponse
// @Failure 422 {object} gin.H "Validation error"
// @Failure 503 {object} gin.H "Database not available"
// @Router /api/profile [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := validation.BindJSON(c, &req); err != nil {
		respondError(c, err, "")
		return
	}

	id, err := h.profileService.CreateProfile(c.Request.Context(), &domain.UserProfile{
		Name:     req.Name,
		Email:    req.Email,
		HeightCM: req.HeightCM,
		Goal:     req.Goal,
	})
	if err != nil {
		respondError(c, err, "Failed to create profile.")
		return
	}

	h.metrics.RecordCreated("profile")
	c.JSON(http.StatusCreated, IDResponse{ID: id})
}

// GetProfile godoc
// @Summary Get a profile by email
// @Tags Profile
// @Produce json
// @Param email query string true "User email"
// @Success 200 {object} ProfileResponse
// @Failure 404 {object} gin.H "Profile not found"
// @Router /api/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	var q GetProfileQuery
	if err := validation.BindQuery(c, &q); err != nil {
		respondError(c, err, "")
		return
	}

	profile, err := h.profileService.GetProfileByEmail(c.Request.Context(), q.Email)
	if err != nil {
		respondError(c, err, "Failed to retrieve profile.")
		return
	}

	c.JSON(http.StatusOK, MapProfileToResponse(profile))
}
