package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/service"
	"alcyxob/fitness-tracker/internal/validation"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BodyCompHandler struct {
	bodyCompService service.BodyCompService
	metrics         *metrics.Manager
}

func NewBodyCompHandler(bodyCompService service.BodyCompService, m *metrics.Manager) *BodyCompHandler {
	return &BodyCompHandler{bodyCompService: bodyCompService, metrics: m}
}

type CreateBodyCompRequest struct {
	UserEmail  string   `json:"user_email" binding:"required"`
	Date       string   `json:"date" binding:"required,datetime=2006-01-02"`
	WeightKG   *float64 `json:"weight_kg" binding:"omitempty,gt=0"`
	BodyFatPct *float64 `json:"body_fat_pct" binding:"omitempty,gte=0,lte=100"`
	WaistCM    *float64 `json:"waist_cm" binding:"omitempty,gt=0"`
	HipsCM     *float64 `json:"hips_cm" binding:"omitempty,gt=0"`
	ChestCM    *float64 `json:"chest_cm" binding:"omitempty,gt=0"`
}

type ListBodyCompQuery struct {
	UserEmail string `form:"user_email" binding:"required"`
	Limit     int    `form:"limit,default=30" binding:"min=1,max=365"`
}

type BodyCompResponse struct {
	ID         string   `json:"id"`
	UserEmail  string   `json:"user_email"`
	Date       string   `json:"date"`
	WeightKG   *float64 `json:"weight_kg"`
	BodyFatPct *float64 `json:"body_fat_pct"`
	WaistCM    *float64 `json:"waist_cm"`
	HipsCM     *float64 `json:"hips_cm"`
	ChestCM    *float64 `json:"chest_cm"`
	CreatedAt  string   `json:"created_at"`
}

func MapBodyCompToResponse(e *domain.BodyCompEntry) BodyCompResponse {
	if e == nil {
		return BodyCompResponse{}
	}
	return BodyCompResponse{
		ID:         e.ID.Hex(),
		UserEmail:  e.UserEmail,
		Date:       domain.FormatDate(e.Date),
		WeightKG:   e.WeightKG,
		BodyFatPct: e.BodyFatPct,
		WaistCM:    e.WaistCM,
		HipsCM:     e.HipsCM,
		ChestCM:    e.ChestCM,
		CreatedAt:  formatTimestamp(e.CreatedAt),
	}
}

func MapBodyCompsToResponse(entries []domain.BodyCompEntry) []BodyCompResponse {
	responses := make([]BodyCompResponse, len(entries))
	for i := range entries {
		responses[i] = MapBodyCompToResponse(&entries[i])
	}
	return responses
}

// RecordMeasurement godoc
// @Summary Record a body composition checkpoint
// @Tags BodyComposition
// @Accept json
// @Produce json
// @Param measurement body CreateBodyCompRequest true "Measurement"
// @Success 201 {object} IDResponse
// @Router /api/bodycomp [post]
func (h *BodyCompHandler) RecordMeasurement(c *gin.Context) {
	var req CreateBodyCompRequest
	if err := validation.BindJSON(c, &req); err != nil {
		respondError(c, err, "")
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		respondError(c, err, "Invalid measurement date.")
		return
	}

	id, err := h.bodyCompService.RecordMeasurement(c.Request.Context(), &domain.BodyCompEntry{
		UserEmail:  req.UserEmail,
		Date:       date,
		WeightKG:   req.WeightKG,
		BodyFatPct: req.BodyFatPct,
		WaistCM:    req.WaistCM,
		HipsCM:     req.HipsCM,
		ChestCM:    req.ChestCM,
	})
	if err != nil {
		respondError(c, err, "Failed to record measurement.")
		return
	}

	h.metrics.RecordCreated("bodycomp")
	c.JSON(http.StatusCreated, IDResponse{ID: id})
}

// ListMeasurements godoc
// @Summary List body composition checkpoints, newest first
// @Tags BodyComposition
// @Produce json
// @Param user_email query string true "User email"
// @Param limit query int false "1-365, default 30"
// @Success 200 {array} BodyCompResponse
// @Router /api/bodycomp [get]
func (h *BodyCompHandler) ListMeasurements(c *gin.Context) {
	var q ListBodyCompQuery
	if err := validation.BindQuery(c, &q); err != nil {
		respondError(c, err, "")
		return
	}

	entries, err := h.bodyCompService.ListMeasurements(c.Request.Context(), repository.BodyCompQuery{
		UserEmail: q.UserEmail,
		Limit:     q.Limit,
	})
	if err != nil {
		respondError(c, err, "Failed to retrieve measurements.")
		return
	}

	c.JSON(http.StatusOK, MapBodyCompsToResponse(entries))
}
