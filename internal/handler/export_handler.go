package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnsphere/learnsphere-api/internal/service"
	"github.com/learnsphere/learnsphere-api/pkg/response"
)

type exportService interface {
	Bookings(ctx context.Context, format string) (*service.ExportResult, error)
}

// ExportHandler serves tabular booking exports for offline admin use.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs the handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Bookings godoc
// @Summary Export bookings as CSV or PDF
// @Tags Admin
// @Produce octet-stream
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} binary
// @Router /admin/bookings/export [get]
func (h *ExportHandler) Bookings(c *gin.Context) {
	result, err := h.service.Bookings(c.Request.Context(), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Body)
}
