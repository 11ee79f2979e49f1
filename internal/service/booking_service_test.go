package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnsphere/learnsphere-api/internal/models"
	appErrors "github.com/learnsphere/learnsphere-api/pkg/errors"
)

type mockBookingRepo struct {
	bookings  []models.DemoBooking
	createErr error
	listErr   error
}

func (m *mockBookingRepo) Create(_ context.Context, booking *models.DemoBooking) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.bookings = append(m.bookings, *booking)
	return nil
}

func (m *mockBookingRepo) List(_ context.Context) ([]models.DemoBooking, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.bookings, nil
}

func (m *mockBookingRepo) UpdateStatus(_ context.Context, id string, status models.BookingStatus) (bool, error) {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings[i].Status = status
			return true, nil
		}
	}
	return false, nil
}

func (m *mockBookingRepo) Delete(_ context.Context, id string) (bool, error) {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func validBookingRequest() SubmitBookingRequest {
	return SubmitBookingRequest{
		Name:            "Jo Lee",
		Email:           "jo@example.com",
		Phone:           "5551234",
		GradeLevel:      "Grade 9-10",
		SubjectInterest: "Physics",
		PreferredDate:   "2099-06-01",
		Message:         "After school slots preferred",
	}
}

func detailFields(t *testing.T, err error) []string {
	t.Helper()
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	fields := make([]string, 0, len(appErr.Details))
	for _, d := range appErr.Details {
		fields = append(fields, d.Field)
	}
	return fields
}

func TestBookingServiceSubmit(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := NewBookingService(repo, nil, nil)
	fixed := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	booking, err := svc.Submit(context.Background(), validBookingRequest())
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, fixed, booking.CreatedAt)
	assert.Len(t, repo.bookings, 1)
}

func TestBookingServiceSubmitAcceptsToday(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := NewBookingService(repo, nil, nil)
	svc.now = func() time.Time { return time.Date(2026, 8, 28, 23, 30, 0, 0, time.UTC) }

	req := validBookingRequest()
	req.PreferredDate = "2026-08-28"
	_, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, repo.bookings, 1)
}

func TestBookingServiceSubmitRejectsPastDate(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := NewBookingService(repo, nil, nil)
	svc.now = func() time.Time { return time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC) }

	req := validBookingRequest()
	req.PreferredDate = "2026-08-27"
	_, err := svc.Submit(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, []string{"preferred_date"}, detailFields(t, err))
	assert.Empty(t, repo.bookings)
}

func TestBookingServiceSubmitRejectsUnparseableDate(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := NewBookingService(repo, nil, nil)

	req := validBookingRequest()
	req.PreferredDate = "tomorrow"
	_, err := svc.Submit(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, []string{"preferred_date"}, detailFields(t, err))
	assert.Empty(t, repo.bookings)
}

func TestBookingServiceSubmitReportsEveryFailingField(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := NewBookingService(repo, nil, nil)

	req := SubmitBookingRequest{
		Name:  "J",
		Email: "not-an-email",
		Phone: "123",
	}
	_, err := svc.Submit(context.Background(), req)
	require.Error(t, err)
	fields := detailFields(t, err)
	assert.ElementsMatch(t, []string{"name", "email", "phone", "grade_level", "subject_interest", "preferred_date"}, fields)
	assert.Empty(t, repo.bookings)
}

func TestBookingServiceSubmitStorageFailure(t *testing.T) {
	repo := &mockBookingRepo{createErr: errors.New("connection refused")}
	svc := NewBookingService(repo, nil, nil)

	_, err := svc.Submit(context.Background(), validBookingRequest())
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrStorageUnavailable.Code, appErr.Code)
}

func TestBookingServiceListEmpty(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, nil, nil)

	bookings, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestBookingServiceUpdateStatus(t *testing.T) {
	repo := &mockBookingRepo{bookings: []models.DemoBooking{{ID: "b-1", Status: models.BookingStatusPending}}}
	svc := NewBookingService(repo, nil, nil)

	err := svc.UpdateStatus(context.Background(), "b-1", UpdateBookingStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, repo.bookings[0].Status)
}

func TestBookingServiceUpdateStatusUnknownValue(t *testing.T) {
	repo := &mockBookingRepo{bookings: []models.DemoBooking{{ID: "b-1", Status: models.BookingStatusPending}}}
	svc := NewBookingService(repo, nil, nil)

	err := svc.UpdateStatus(context.Background(), "b-1", UpdateBookingStatusRequest{Status: "done"})
	require.Error(t, err)
	assert.Equal(t, []string{"status"}, detailFields(t, err))
	assert.Equal(t, models.BookingStatusPending, repo.bookings[0].Status)
}

func TestBookingServiceUpdateStatusMissingBooking(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, nil, nil)

	err := svc.UpdateStatus(context.Background(), "missing", UpdateBookingStatusRequest{Status: "confirmed"})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestBookingServiceDeleteTwice(t *testing.T) {
	repo := &mockBookingRepo{bookings: []models.DemoBooking{{ID: "b-1"}}}
	svc := NewBookingService(repo, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), "b-1"))

	err := svc.Delete(context.Background(), "b-1")
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
