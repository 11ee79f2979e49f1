package models

// StatsSnapshot is a point-in-time aggregate computed from stored records.
// It is never persisted; every admin dashboard load recomputes it from the
// booking and visitor tables so the counts always reflect committed state.
type StatsSnapshot struct {
	TotalBookings   int           `json:"total_bookings"`
	PendingBookings int           `json:"pending_bookings"`
	TotalVisits     int           `json:"total_visits"`
	TotalLeaves     int           `json:"total_leaves"`
	RecentBookings  []DemoBooking `json:"recent_bookings"`
}
