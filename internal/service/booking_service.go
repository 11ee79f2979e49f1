package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/learnsphere/learnsphere-api/internal/models"
	appErrors "github.com/learnsphere/learnsphere-api/pkg/errors"
)

type bookingRepository interface {
	Create(ctx context.Context, booking *models.DemoBooking) error
	List(ctx context.Context) ([]models.DemoBooking, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// BookingService handles demo booking intake and lifecycle.
type BookingService struct {
	repo      bookingRepository
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewBookingService constructs the service.
func NewBookingService(repo bookingRepository, validate *validator.Validate, logger *zap.Logger) *BookingService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingService{repo: repo, validator: validate, logger: logger, now: time.Now}
}

// SubmitBookingRequest describes the booking form payload.
type SubmitBookingRequest struct {
	Name            string `json:"name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,min=5"`
	GradeLevel      string `json:"grade_level" validate:"required"`
	SubjectInterest string `json:"subject_interest" validate:"required"`
	PreferredDate   string `json:"preferred_date" validate:"required"`
	Message         string `json:"message"`
}

// UpdateBookingStatusRequest carries a status transition.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Submit validates and persists a booking. Validation reports every
// failing field; nothing reaches storage on failure. Successful bookings
// start life as pending.
func (s *BookingService) Submit(ctx context.Context, req SubmitBookingRequest) (*models.DemoBooking, error) {
	var details []appErrors.FieldError
	if err := s.validator.Struct(req); err != nil {
		details = fieldErrors(err)
	}
	if req.PreferredDate != "" {
		if msg := s.checkPreferredDate(req.PreferredDate); msg != "" {
			details = append(details, appErrors.FieldError{Field: "preferred_date", Message: msg})
		}
	}
	if len(details) > 0 {
		return nil, appErrors.Validation(details)
	}

	booking := &models.DemoBooking{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		GradeLevel:      req.GradeLevel,
		SubjectInterest: req.SubjectInterest,
		PreferredDate:   req.PreferredDate,
		Message:         req.Message,
		Status:          models.BookingStatusPending,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		s.logger.Error("booking create failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "failed to store booking")
	}
	s.logger.Info("booking created", zap.String("id", booking.ID), zap.String("subject", booking.SubjectInterest))
	return booking, nil
}

// List returns all bookings, newest first.
func (s *BookingService) List(ctx context.Context) ([]models.DemoBooking, error) {
	bookings, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "failed to list bookings")
	}
	if bookings == nil {
		bookings = []models.DemoBooking{}
	}
	return bookings, nil
}

// UpdateStatus transitions one booking's lifecycle state.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, req UpdateBookingStatusRequest) error {
	if !models.ValidBookingStatus(req.Status) {
		return appErrors.Validation([]appErrors.FieldError{
			{Field: "status", Message: "must be one of pending, confirmed, cancelled, completed"},
		})
	}
	found, err := s.repo.UpdateStatus(ctx, id, models.BookingStatus(req.Status))
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "failed to update booking")
	}
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "booking not found")
	}
	return nil
}

// Delete removes one booking. Deleting a missing id reports not-found; the
// operation is idempotent at the storage level either way.
func (s *BookingService) Delete(ctx context.Context, id string) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "failed to delete booking")
	}
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "booking not found")
	}
	s.logger.Info("booking deleted", zap.String("id", id))
	return nil
}

// checkPreferredDate enforces the parseable, not-in-the-past invariant.
// Today is acceptable; comparison is by calendar date in UTC.
func (s *BookingService) checkPreferredDate(raw string) string {
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return "must be a valid date in YYYY-MM-DD format"
	}
	today := s.now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) {
		return "must not be in the past"
	}
	return ""
}
