package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/learnsphere/learnsphere-api/internal/models"
	appErrors "github.com/learnsphere/learnsphere-api/pkg/errors"
)

type inquiryRepository interface {
	CreateSubjectQuery(ctx context.Context, query *models.SubjectQuery) error
	CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error
	ListSubjectQueries(ctx context.Context) ([]models.SubjectQuery, error)
	ListContactMessages(ctx context.Context) ([]models.ContactMessage, error)
}

// InquiryService handles subject queries and contact messages. Both are
// append-only: a caller who made a mistake submits again, and the duplicate
// is an accepted record.
type InquiryService struct {
	repo      inquiryRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewInquiryService constructs the service.
func NewInquiryService(repo inquiryRepository, validate *validator.Validate, logger *zap.Logger) *InquiryService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InquiryService{repo: repo, validator: validate, logger: logger}
}

// SubmitSubjectQueryRequest describes the subject query payload. The
// subject comes from the page context and is not checked against the
// subject catalog.
type SubmitSubjectQueryRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject" validate:"required"`
	QueryType string `json:"query_type"`
	Message   string `json:"message" validate:"required"`
}

// SubmitContactMessageRequest describes the contact form payload.
type SubmitContactMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

// SubmitSubjectQuery validates and persists a subject query.
func (s *InquiryService) SubmitSubjectQuery(ctx context.Context, req SubmitSubjectQueryRequest) (*models.SubjectQuery, error) {
	var details []appErrors.FieldError
	if err := s.validator.Struct(req); err != nil {
		details = fieldErrors(err)
	}
	if req.QueryType == "" {
		req.QueryType = string(models.QueryTypeGeneral)
	} else if !models.ValidQueryType(req.QueryType) {
		details = append(details, appErrors.FieldError{Field: "query_type", Message: "must be one of general, curriculum, tutor, pricing, demo"})
	}
	if len(details) > 0 {
		return nil, appErrors.Validation(details)
	}

	query := &models.SubjectQuery{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		QueryType: models.QueryType(req.QueryType),
		Message:   req.Message,
	}
	if err := s.repo.CreateSubjectQuery(ctx, query); err != nil {
		s.logger.Error("subject query create failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "failed to store subject query")
	}
	s.logger.Info("subject query created", zap.String("id", query.ID), zap.String("subject", query.Subject))
	return query, nil
}

// SubmitContactMessage validates and persists a contact message.
func (s *InquiryService) SubmitContactMessage(ctx context.Context, req SubmitContactMessageRequest) (*models.ContactMessage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(fieldErrors(err))
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := s.repo.CreateContactMessage(ctx, msg); err != nil {
		s.logger.Error("contact message create failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "failed to store contact message")
	}
	s.logger.Info("contact message created", zap.String("id", msg.ID))
	return msg, nil
}

// ListSubjectQueries returns all subject queries for admin follow-up.
func (s *InquiryService) ListSubjectQueries(ctx context.Context) ([]models.SubjectQuery, error) {
	queries, err := s.repo.ListSubjectQueries(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "failed to list subject queries")
	}
	if queries == nil {
		queries = []models.SubjectQuery{}
	}
	return queries, nil
}

// ListContactMessages returns all contact messages for admin follow-up.
func (s *InquiryService) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	messages, err := s.repo.ListContactMessages(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "failed to list contact messages")
	}
	if messages == nil {
		messages = []models.ContactMessage{}
	}
	return messages, nil
}
