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

type inquiryService interface {
	SubmitSubjectQuery(ctx context.Context, req service.SubmitSubjectQueryRequest) (*models.SubjectQuery, error)
	SubmitContactMessage(ctx context.Context, req service.SubmitContactMessageRequest) (*models.ContactMessage, error)
	ListSubjectQueries(ctx context.Context) ([]models.SubjectQuery, error)
	ListContactMessages(ctx context.Context) ([]models.ContactMessage, error)
}

// InquiryHandler wires the inquiry service to HTTP endpoints.
type InquiryHandler struct {
	service inquiryService
}

// NewInquiryHandler constructs the handler.
func NewInquiryHandler(service inquiryService) *InquiryHandler {
	return &InquiryHandler{service: service}
}

// CreateSubjectQuery godoc
// @Summary Submit a subject query
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param body body service.SubmitSubjectQueryRequest true "Subject query"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /subject-queries [post]
func (h *InquiryHandler) CreateSubjectQuery(c *gin.Context) {
	var req service.SubmitSubjectQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	query, err := h.service.SubmitSubjectQuery(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, query)
}

// CreateContactMessage godoc
// @Summary Submit a contact message
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param body body service.SubmitContactMessageRequest true "Contact message"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /contact-messages [post]
func (h *InquiryHandler) CreateContactMessage(c *gin.Context) {
	var req service.SubmitContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	msg, err := h.service.SubmitContactMessage(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, msg)
}

// ListSubjectQueries godoc
// @Summary List subject queries
// @Tags Inquiries
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/subject-queries [get]
func (h *InquiryHandler) ListSubjectQueries(c *gin.Context) {
	queries, err := h.service.ListSubjectQueries(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, queries)
}

// ListContactMessages godoc
// @Summary List contact messages
// @Tags Inquiries
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/contact-messages [get]
func (h *InquiryHandler) ListContactMessages(c *gin.Context) {
	messages, err := h.service.ListContactMessages(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, messages)
}
