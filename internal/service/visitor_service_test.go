package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnsphere/learnsphere-api/internal/models"
	appErrors "github.com/learnsphere/learnsphere-api/pkg/errors"
)

type mockVisitorRepo struct {
	events    []models.VisitorEvent
	insertErr error
}

func (m *mockVisitorRepo) Insert(_ context.Context, event *models.VisitorEvent) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.events = append(m.events, *event)
	return nil
}

func TestVisitorServiceTrackVisit(t *testing.T) {
	repo := &mockVisitorRepo{}
	svc := NewVisitorService(repo, nil)

	event, err := svc.Track(context.Background(), TrackRequest{
		SessionID: "sess-1",
		EventType: "visit",
		Page:      "/pricing",
		UserAgent: "Mozilla/5.0",
	})
	require.NoError(t, err)
	assert.Equal(t, models.VisitorEventVisit, event.EventType)
	assert.Equal(t, "/pricing", event.Page)
	assert.Len(t, repo.events, 1)
}

func TestVisitorServiceTrackDefaultsPage(t *testing.T) {
	repo := &mockVisitorRepo{}
	svc := NewVisitorService(repo, nil)

	event, err := svc.Track(context.Background(), TrackRequest{SessionID: "sess-1", EventType: "leave"})
	require.NoError(t, err)
	assert.Equal(t, "/", event.Page)
}

func TestVisitorServiceTrackRejectsUnknownEventType(t *testing.T) {
	repo := &mockVisitorRepo{}
	svc := NewVisitorService(repo, nil)

	_, err := svc.Track(context.Background(), TrackRequest{SessionID: "sess-1", EventType: "click"})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrInvalidEventType.Code, appErr.Code)
	assert.Empty(t, repo.events, "rejected event must not be persisted")
}

func TestVisitorServiceTrackRequiresSession(t *testing.T) {
	repo := &mockVisitorRepo{}
	svc := NewVisitorService(repo, nil)

	_, err := svc.Track(context.Background(), TrackRequest{SessionID: "  ", EventType: "visit"})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Empty(t, repo.events)
}

func TestVisitorServiceTrackAcceptsLeaveWithoutVisit(t *testing.T) {
	repo := &mockVisitorRepo{}
	svc := NewVisitorService(repo, nil)

	_, err := svc.Track(context.Background(), TrackRequest{SessionID: "sess-never-seen", EventType: "leave"})
	require.NoError(t, err)
	assert.Len(t, repo.events, 1)
}
