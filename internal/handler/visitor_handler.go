package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnsphere/learnsphere-api/internal/models"
	"github.com/learnsphere/learnsphere-api/internal/service"
	appErrors "github.com/learnsphere/learnsphere-api/pkg/errors"
	"github.com/learnsphere/learnsphere-api/pkg/response"
)

type visitorService interface {
	Track(ctx context.Context, req service.TrackRequest) (*models.VisitorEvent, error)
}

// VisitorHandler receives fire-and-forget telemetry beacons. Leave beacons
// arrive via navigator.sendBeacon and the client never reads the response,
// but the endpoint still answers properly for the visit path.
type VisitorHandler struct {
	service visitorService
}

// NewVisitorHandler constructs the handler.
func NewVisitorHandler(service visitorService) *VisitorHandler {
	return &VisitorHandler{service: service}
}

// Track godoc
// @Summary Record a visitor event
// @Tags Visitors
// @Accept json
// @Produce json
// @Param body body service.TrackRequest true "Visitor event"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /visitors/track [post]
func (h *VisitorHandler) Track(c *gin.Context) {
	var req service.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	if _, err := h.service.Track(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"status": "tracked"})
}
