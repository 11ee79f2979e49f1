package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/learnsphere/learnsphere-api/internal/models"
	appErrors "github.com/learnsphere/learnsphere-api/pkg/errors"
	"github.com/learnsphere/learnsphere-api/pkg/export"
)

type bookingLister interface {
	List(ctx context.Context) ([]models.DemoBooking, error)
}

// ExportService renders the booking table for offline admin use.
type ExportService struct {
	bookings bookingLister
	logger   *zap.Logger
}

// NewExportService constructs the service.
func NewExportService(bookings bookingLister, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{bookings: bookings, logger: logger}
}

// ExportResult carries rendered bytes plus the response headers to use.
type ExportResult struct {
	ContentType string
	Filename    string
	Body        []byte
}

var bookingExportHeaders = []string{"ID", "Name", "Email", "Phone", "Grade", "Subject", "Preferred Date", "Status", "Created At"}

// Bookings renders all bookings in the requested format (csv or pdf).
func (s *ExportService) Bookings(ctx context.Context, format string) (*ExportResult, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "pdf" {
		return nil, appErrors.Validation([]appErrors.FieldError{{Field: "format", Message: "must be csv or pdf"}})
	}

	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "failed to load bookings for export")
	}

	dataset := export.Dataset{Headers: bookingExportHeaders, Rows: make([]map[string]string, 0, len(bookings))}
	for _, b := range bookings {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"ID":             b.ID,
			"Name":           b.Name,
			"Email":          b.Email,
			"Phone":          b.Phone,
			"Grade":          b.GradeLevel,
			"Subject":        b.SubjectInterest,
			"Preferred Date": b.PreferredDate,
			"Status":         string(b.Status),
			"Created At":     b.CreatedAt.UTC().Format("2006-01-02 15:04"),
		})
	}

	if format == "pdf" {
		body, err := export.PDF(dataset, "Demo Bookings")
		if err != nil {
			s.logger.Error("pdf export failed", zap.Error(err))
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{ContentType: "application/pdf", Filename: "demo-bookings.pdf", Body: body}, nil
	}

	body, err := export.CSV(dataset)
	if err != nil {
		s.logger.Error("csv export failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
	}
	return &ExportResult{ContentType: "text/csv", Filename: "demo-bookings.csv", Body: body}, nil
}
