package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnsphere/learnsphere-api/internal/models"
	"github.com/learnsphere/learnsphere-api/pkg/response"
)

// CatalogHandler serves the recommended grade and subject catalogs the
// booking form renders. The catalogs are advisory; submissions are not
// enum-checked against them.
type CatalogHandler struct{}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Catalog godoc
// @Summary Grade and subject catalogs
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /catalog [get]
func (h *CatalogHandler) Catalog(c *gin.Context) {
	response.JSON(c, http.StatusOK, models.Catalog{
		GradeLevels: models.GradeLevels,
		Subjects:    models.Subjects,
	})
}
