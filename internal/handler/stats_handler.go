package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/learnsphere/learnsphere-api/internal/models"
	"github.com/learnsphere/learnsphere-api/pkg/response"
)

type statsService interface {
	Snapshot(ctx context.Context) (*models.StatsSnapshot, error)
}

// StatsHandler serves the admin dashboard aggregates.
type StatsHandler struct {
	service statsService
}

// NewStatsHandler constructs the handler.
func NewStatsHandler(service statsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Stats godoc
// @Summary Admin dashboard statistics
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/stats [get]
func (h *StatsHandler) Stats(c *gin.Context) {
	start := time.Now()
	snapshot, err := h.service.Snapshot(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	meta := map[string]interface{}{"processing_time_ms": time.Since(start).Milliseconds()}
	response.JSON(c, http.StatusOK, snapshot, meta)
}
