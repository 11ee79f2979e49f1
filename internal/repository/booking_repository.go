package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/learnsphere/learnsphere-api/internal/models"
)

// BookingRepository provides persistence for demo bookings.
type BookingRepository struct {
	db *sqlx.DB
}

// NewBookingRepository creates the repository.
func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = "id, name, email, phone, grade_level, subject_interest, preferred_date, message, status, created_at"

// Create inserts a new booking. The id and created_at are assigned here
// when the caller left them empty.
func (r *BookingRepository) Create(ctx context.Context, booking *models.DemoBooking) error {
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO demo_bookings (id, name, email, phone, grade_level, subject_interest, preferred_date, message, status, created_at)
VALUES (:id, :name, :email, :phone, :grade_level, :subject_interest, :preferred_date, :message, :status, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, booking); err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

// List returns all bookings, newest first.
func (r *BookingRepository) List(ctx context.Context) ([]models.DemoBooking, error) {
	query := fmt.Sprintf("SELECT %s FROM demo_bookings ORDER BY created_at DESC", bookingColumns)
	var bookings []models.DemoBooking
	if err := r.db.SelectContext(ctx, &bookings, query); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// Recent returns the n newest bookings for the stats snapshot.
func (r *BookingRepository) Recent(ctx context.Context, n int) ([]models.DemoBooking, error) {
	if n <= 0 {
		n = 5
	}
	query := fmt.Sprintf("SELECT %s FROM demo_bookings ORDER BY created_at DESC LIMIT %d", bookingColumns, n)
	var bookings []models.DemoBooking
	if err := r.db.SelectContext(ctx, &bookings, query); err != nil {
		return nil, fmt.Errorf("recent bookings: %w", err)
	}
	return bookings, nil
}

// FindByID returns one booking by identifier.
func (r *BookingRepository) FindByID(ctx context.Context, id string) (*models.DemoBooking, error) {
	query := fmt.Sprintf("SELECT %s FROM demo_bookings WHERE id = $1", bookingColumns)
	var booking models.DemoBooking
	if err := r.db.GetContext(ctx, &booking, query, id); err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateStatus transitions a booking's lifecycle state. It reports whether
// the id matched a row.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (bool, error) {
	res, err := r.db.ExecContext(ctx, "UPDATE demo_bookings SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return false, fmt.Errorf("update booking status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update booking status: %w", err)
	}
	return affected > 0, nil
}

// Delete removes a booking. It reports whether the id matched a row so a
// repeat delete surfaces as not-found instead of silently succeeding.
func (r *BookingRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM demo_bookings WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete booking: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete booking: %w", err)
	}
	return affected > 0, nil
}

// Count returns the number of bookings, optionally narrowed by status.
func (r *BookingRepository) Count(ctx context.Context, filter models.BookingFilter) (int, error) {
	query := "SELECT COUNT(*) FROM demo_bookings"
	args := []interface{}{}
	if filter.Status != nil {
		query += " WHERE status = $1"
		args = append(args, *filter.Status)
	}
	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return total, nil
}
