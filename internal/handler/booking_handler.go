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

type bookingService interface {
	Submit(ctx context.Context, req service.SubmitBookingRequest) (*models.DemoBooking, error)
	List(ctx context.Context) ([]models.DemoBooking, error)
	UpdateStatus(ctx context.Context, id string, req service.UpdateBookingStatusRequest) error
	Delete(ctx context.Context, id string) error
}

// BookingHandler wires the booking service to HTTP endpoints.
type BookingHandler struct {
	service bookingService
}

// NewBookingHandler constructs the handler.
func NewBookingHandler(service bookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create godoc
// @Summary Submit a demo booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Param body body service.SubmitBookingRequest true "Booking form"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /demo-bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req service.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	booking, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, booking)
}

// List godoc
// @Summary List all demo bookings
// @Tags Bookings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /demo-bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, bookings)
}

// UpdateStatus godoc
// @Summary Transition a booking's status
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param body body service.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /demo-bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	if err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "status updated"})
}

// Delete godoc
// @Summary Delete a booking
// @Tags Bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /demo-bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "booking deleted"})
}
