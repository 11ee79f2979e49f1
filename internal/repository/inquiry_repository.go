package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/learnsphere/learnsphere-api/internal/models"
)

// InquiryRepository persists subject queries and contact messages. Both
// record kinds are append-only; no update path exists by contract.
type InquiryRepository struct {
	db *sqlx.DB
}

// NewInquiryRepository creates the repository.
func NewInquiryRepository(db *sqlx.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

// CreateSubjectQuery inserts a new subject query.
func (r *InquiryRepository) CreateSubjectQuery(ctx context.Context, query *models.SubjectQuery) error {
	if query.ID == "" {
		query.ID = uuid.NewString()
	}
	if query.CreatedAt.IsZero() {
		query.CreatedAt = time.Now().UTC()
	}
	stmt := `INSERT INTO subject_queries (id, name, email, phone, subject, query_type, message, created_at)
VALUES (:id, :name, :email, :phone, :subject, :query_type, :message, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, stmt, query); err != nil {
		return fmt.Errorf("create subject query: %w", err)
	}
	return nil
}

// CreateContactMessage inserts a new contact message.
func (r *InquiryRepository) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	stmt := `INSERT INTO contact_messages (id, name, email, phone, message, created_at)
VALUES (:id, :name, :email, :phone, :message, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, stmt, msg); err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}
	return nil
}

// ListSubjectQueries returns all subject queries, newest first.
func (r *InquiryRepository) ListSubjectQueries(ctx context.Context) ([]models.SubjectQuery, error) {
	const query = `SELECT id, name, email, phone, subject, query_type, message, created_at
FROM subject_queries ORDER BY created_at DESC`
	var queries []models.SubjectQuery
	if err := r.db.SelectContext(ctx, &queries, query); err != nil {
		return nil, fmt.Errorf("list subject queries: %w", err)
	}
	return queries, nil
}

// ListContactMessages returns all contact messages, newest first.
func (r *InquiryRepository) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	const query = `SELECT id, name, email, phone, message, created_at
FROM contact_messages ORDER BY created_at DESC`
	var messages []models.ContactMessage
	if err := r.db.SelectContext(ctx, &messages, query); err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return messages, nil
}
