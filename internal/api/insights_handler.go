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

type InsightsHandler struct {
	insightsService service.InsightsService
	archiveService  service.ArchiveService
	metrics         *metrics.Manager
}

func NewInsightsHandler(insightsService service.InsightsService, archiveService service.ArchiveService, m *metrics.Manager) *InsightsHandler {
	return &InsightsHandler{
		insightsService: insightsService,
		archiveService:  archiveService,
		metrics:         m,
	}
}

type InsightsQuery struct {
	UserEmail string `form:"user_email" binding:"required"`
	Days      int    `form:"days,default=30" binding:"min=1,max=365"`
}

type ArchiveInsightsRequest struct {
	UserEmail string `json:"user_email" binding:"required"`
	Days      *int   `json:"days" binding:"omitempty,min=1,max=365"`
}

type ArchiveResponse struct {
	Key       string `json:"key"`
	URL       string `json:"url"`
	ExpiresAt string `json:"expires_at"`
}

// GetInsights godoc
// @Summary Aggregate the trailing window of workouts into an insights report
// @Tags Insights
// @Produce json
// @Param user_email query string true "User email"
// @Param days query int false "1-365, default 30"
// @Success 200 {object} domain.InsightsReport
// @Router /api/insights [get]
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	var q InsightsQuery
	if err := validation.BindQuery(c, &q); err != nil {
		respondError(c, err, "")
		return
	}

	report, err := h.insightsService.Insights(c.Request.Context(), q.UserEmail, q.Days)
	if err != nil {
		respondError(c, err, "Failed to compute insights.")
		return
	}

	h.metrics.InsightsComputed()
	c.JSON(http.StatusOK, report)
}

// ArchiveInsights godoc
// @Summary Store a snapshot of the insights report and return a download link
// @Tags Insights
// @Accept json
// @Produce json
// @Param request body ArchiveInsightsRequest true "Report owner and window"
// @Success 201 {object} ArchiveResponse
// @Failure 503 {object} gin.H "Archive storage not configured"
// @Router /api/insights/archive [post]
func (h *InsightsHandler) ArchiveInsights(c *gin.Context) {
	var req ArchiveInsightsRequest
	if err := validation.BindJSON(c, &req); err != nil {
		respondError(c, err, "")
		return
	}

	days := service.DefaultInsightsDays
	if req.Days != nil {
		days = *req.Days
	}

	archive, err := h.archiveService.ArchiveInsights(c.Request.Context(), req.UserEmail, days)
	if err != nil {
		respondError(c, err, "Failed to archive insights report.")
		return
	}

	h.metrics.InsightsComputed()
	c.JSON(http.StatusCreated, MapArchiveToResponse(archive))
}

func MapArchiveToResponse(a *domain.ReportArchive) ArchiveResponse {
	if a == nil {
		return ArchiveResponse{}
	}
	return ArchiveResponse{
		Key:       a.Key,
		URL:       a.URL,
		ExpiresAt: a.ExpiresAt.UTC().Format(time.RFC3339),
	}
}
