package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/learnsphere/learnsphere-api/internal/models"
)

// VisitorRepository appends telemetry events and counts them per type.
// Inserts never read-modify-write, so concurrent beacons cannot race on a
// shared counter.
type VisitorRepository struct {
	db *sqlx.DB
}

// NewVisitorRepository creates the repository.
func NewVisitorRepository(db *sqlx.DB) *VisitorRepository {
	return &VisitorRepository{db: db}
}

// Insert appends exactly one event row.
func (r *VisitorRepository) Insert(ctx context.Context, event *models.VisitorEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	stmt := `INSERT INTO visitor_events (id, session_id, event_type, page, user_agent, referrer, created_at)
VALUES (:id, :session_id, :event_type, :page, :user_agent, :referrer, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, stmt, event); err != nil {
		return fmt.Errorf("insert visitor event: %w", err)
	}
	return nil
}

// CountByType returns the number of events of one type across all sessions.
func (r *VisitorRepository) CountByType(ctx context.Context, eventType models.VisitorEventType) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM visitor_events WHERE event_type = $1", eventType); err != nil {
		return 0, fmt.Errorf("count visitor events: %w", err)
	}
	return total, nil
}
