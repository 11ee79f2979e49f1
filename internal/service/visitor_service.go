package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/learnsphere/learnsphere-api/internal/models"
	appErrors "github.com/learnsphere/learnsphere-api/pkg/errors"
)

type visitorRepository interface {
	Insert(ctx context.Context, event *models.VisitorEvent) error
}

// VisitorService records visit and leave telemetry. It imposes no ordering
// or causality between a session's events: whatever arrives is appended.
// Visits are intentionally not deduplicated; total_visits is a page-view
// counter, not a unique-session counter.
type VisitorService struct {
	repo   visitorRepository
	logger *zap.Logger
}

// NewVisitorService constructs the service.
func NewVisitorService(repo visitorRepository, logger *zap.Logger) *VisitorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VisitorService{repo: repo, logger: logger}
}

// TrackRequest describes one telemetry beacon.
type TrackRequest struct {
	SessionID string `json:"session_id"`
	EventType string `json:"event_type"`
	Page      string `json:"page"`
	UserAgent string `json:"user_agent"`
	Referrer  string `json:"referrer"`
}

// Track appends one event row. Unrecognized event types are rejected and
// nothing is persisted.
func (s *VisitorService) Track(ctx context.Context, req TrackRequest) (*models.VisitorEvent, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return nil, appErrors.Validation([]appErrors.FieldError{{Field: "session_id", Message: "is required"}})
	}
	if !models.ValidVisitorEventType(req.EventType) {
		return nil, appErrors.Clone(appErrors.ErrInvalidEventType, "")
	}
	page := req.Page
	if page == "" {
		page = "/"
	}

	event := &models.VisitorEvent{
		SessionID: req.SessionID,
		EventType: models.VisitorEventType(req.EventType),
		Page:      page,
		UserAgent: req.UserAgent,
		Referrer:  req.Referrer,
	}
	if err := s.repo.Insert(ctx, event); err != nil {
		s.logger.Error("visitor event insert failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "failed to store visitor event")
	}
	return event, nil
}
