package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnsphere/learnsphere-api/internal/models"
	appErrors "github.com/learnsphere/learnsphere-api/pkg/errors"
)

type stubBookingLister struct {
	bookings []models.DemoBooking
}

func (s *stubBookingLister) List(_ context.Context) ([]models.DemoBooking, error) {
	return s.bookings, nil
}

func exportFixture() *stubBookingLister {
	return &stubBookingLister{bookings: []models.DemoBooking{{
		ID:              "b-1",
		Name:            "Jo Lee",
		Email:           "jo@example.com",
		Phone:           "5551234",
		GradeLevel:      "Grade 9-10",
		SubjectInterest: "Physics",
		PreferredDate:   "2099-06-01",
		Status:          models.BookingStatusPending,
		CreatedAt:       time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC),
	}}}
}

func TestExportServiceBookingsCSV(t *testing.T) {
	svc := NewExportService(exportFixture(), nil)

	result, err := svc.Bookings(context.Background(), "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Equal(t, "demo-bookings.csv", result.Filename)

	body := string(result.Body)
	assert.Contains(t, body, "ID,Name,Email,Phone,Grade,Subject,Preferred Date,Status,Created At")
	assert.Contains(t, body, "Jo Lee")
	assert.Contains(t, body, "2026-08-01 09:30")
}

func TestExportServiceBookingsDefaultsToCSV(t *testing.T) {
	svc := NewExportService(exportFixture(), nil)

	result, err := svc.Bookings(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
}

func TestExportServiceBookingsPDF(t *testing.T) {
	svc := NewExportService(exportFixture(), nil)

	result, err := svc.Bookings(context.Background(), "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.Equal(t, "demo-bookings.pdf", result.Filename)
	require.True(t, len(result.Body) > 4)
	assert.Equal(t, "%PDF", string(result.Body[:4]))
}

func TestExportServiceBookingsUnknownFormat(t *testing.T) {
	svc := NewExportService(exportFixture(), nil)

	_, err := svc.Bookings(context.Background(), "xlsx")
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}
