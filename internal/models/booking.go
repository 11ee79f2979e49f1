package models

import "time"

// BookingStatus represents the lifecycle state of a demo booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// ValidBookingStatus reports whether s is one of the known lifecycle states.
func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	default:
		return false
	}
}

// DemoBooking represents a request for a free trial tutoring session.
// Rows are created by the intake service and mutated only through status
// transitions; every other field is immutable after creation.
type DemoBooking struct {
	ID              string        `db:"id" json:"id"`
	Name            string        `db:"name" json:"name"`
	Email           string        `db:"email" json:"email"`
	Phone           string        `db:"phone" json:"phone"`
	GradeLevel      string        `db:"grade_level" json:"grade_level"`
	SubjectInterest string        `db:"subject_interest" json:"subject_interest"`
	PreferredDate   string        `db:"preferred_date" json:"preferred_date"`
	Message         string        `db:"message" json:"message"`
	Status          BookingStatus `db:"status" json:"status"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
}

// BookingFilter captures filtering criteria for listing and counting bookings.
type BookingFilter struct {
	Status *BookingStatus
}
