package api

import (
	"alcyxob/fitness-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type StatusHandler struct {
	statusService service.StatusService
}

func NewStatusHandler(statusService service.StatusService) *StatusHandler {
	return &StatusHandler{statusService: statusService}
}

// Root answers liveness probes.
func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Fitness Tracker API running"})
}

// Status godoc
// @Summary Report backend and document store health
// @Tags Status
// @Produce json
// @Success 200 {object} domain.StatusReport
// @Router /test [get]
func (h *StatusHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.statusService.Status(c.Request.Context()))
}
