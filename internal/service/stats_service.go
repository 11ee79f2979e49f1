package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/learnsphere/learnsphere-api/internal/models"
	appErrors "github.com/learnsphere/learnsphere-api/pkg/errors"
)

type bookingCounter interface {
	Count(ctx context.Context, filter models.BookingFilter) (int, error)
	Recent(ctx context.Context, n int) ([]models.DemoBooking, error)
}

type visitorCounter interface {
	CountByType(ctx context.Context, eventType models.VisitorEventType) (int, error)
}

// recentBookingsLimit caps the recent_bookings section of the snapshot.
const recentBookingsLimit = 5

// StatsService computes the admin dashboard snapshot. It keeps no state
// and no cache: every call recounts from the store, which eliminates
// counter-drift under concurrent writers at the cost of a few cheap
// aggregate queries per dashboard load. total_leaves is a lower-bound
// approximation of true exits; leave beacons are lossy by nature.
type StatsService struct {
	bookings bookingCounter
	visitors visitorCounter
	logger   *zap.Logger
}

// NewStatsService constructs the service.
func NewStatsService(bookings bookingCounter, visitors visitorCounter, logger *zap.Logger) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{bookings: bookings, visitors: visitors, logger: logger}
}

// Snapshot recomputes all counts from the store's current contents.
func (s *StatsService) Snapshot(ctx context.Context) (*models.StatsSnapshot, error) {
	totalBookings, err := s.bookings.Count(ctx, models.BookingFilter{})
	if err != nil {
		return nil, s.storageErr(err, "failed to count bookings")
	}
	pending := models.BookingStatusPending
	pendingBookings, err := s.bookings.Count(ctx, models.BookingFilter{Status: &pending})
	if err != nil {
		return nil, s.storageErr(err, "failed to count pending bookings")
	}
	totalVisits, err := s.visitors.CountByType(ctx, models.VisitorEventVisit)
	if err != nil {
		return nil, s.storageErr(err, "failed to count visits")
	}
	totalLeaves, err := s.visitors.CountByType(ctx, models.VisitorEventLeave)
	if err != nil {
		return nil, s.storageErr(err, "failed to count leaves")
	}
	recent, err := s.bookings.Recent(ctx, recentBookingsLimit)
	if err != nil {
		return nil, s.storageErr(err, "failed to load recent bookings")
	}
	if recent == nil {
		recent = []models.DemoBooking{}
	}

	return &models.StatsSnapshot{
		TotalBookings:   totalBookings,
		PendingBookings: pendingBookings,
		TotalVisits:     totalVisits,
		TotalLeaves:     totalLeaves,
		RecentBookings:  recent,
	}, nil
}

func (s *StatsService) storageErr(err error, msg string) error {
	s.logger.Error("stats aggregation failed", zap.Error(err))
	return appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, msg)
}
