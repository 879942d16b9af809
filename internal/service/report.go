package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"docuflota/internal/model"
	"docuflota/internal/repository"
)

// Expiration report window widths, in days.
const (
	reportShortWindow = 7
	reportLongWindow  = 30
)

// ReportService builds the point-in-time expiration report and its aggregate
// statistics.
type ReportService interface {
	// Generate partitions all dated documents into three disjoint buckets as
	// of now's date: already expired, expiring within 7 days (today included),
	// and expiring between day 8 and day 30.
	Generate(ctx context.Context, now time.Time) (*model.Report, error)

	// Statistics returns the aggregate counts without the row detail.
	Statistics(ctx context.Context, now time.Time) (*model.Statistics, error)
}

type reportService struct {
	repo   repository.ReportRepository
	logger zerolog.Logger
}

// NewReportService constructs a ReportService.
func NewReportService(repo repository.ReportRepository, logger zerolog.Logger) ReportService {
	return &reportService{
		repo:   repo,
		logger: logger.With().Str("component", "report").Logger(),
	}
}

func (s *reportService) Generate(ctx context.Context, now time.Time) (*model.Report, error) {
	today := model.DateOf(now)

	expired, err := s.repo.ExpiredRows(ctx, today)
	if err != nil {
		return nil, err
	}
	expiring7, err := s.repo.ExpiringRows(ctx, today, today.AddDate(0, 0, reportShortWindow))
	if err != nil {
		return nil, err
	}
	// The long bucket starts the day after the short one ends so a document
	// appears in exactly one bucket.
	expiring30, err := s.repo.ExpiringRows(ctx,
		today.AddDate(0, 0, reportShortWindow+1),
		today.AddDate(0, 0, reportLongWindow))
	if err != nil {
		return nil, err
	}

	report := &model.Report{
		ReportDate: today,
		Expired:    expired,
		Expiring7:  expiring7,
		Expiring30: expiring30,
		Summary: model.ReportSummary{
			TotalExpired:    len(expired),
			TotalExpiring7:  len(expiring7),
			TotalExpiring30: len(expiring30),
			TotalTracked:    len(expired) + len(expiring7) + len(expiring30),
		},
	}

	s.logger.Info().
		Int("expired", report.Summary.TotalExpired).
		Int("expiring_7_days", report.Summary.TotalExpiring7).
		Int("expiring_30_days", report.Summary.TotalExpiring30).
		Msg("expiration report generated")
	return report, nil
}

func (s *reportService) Statistics(ctx context.Context, now time.Time) (*model.Statistics, error) {
	return s.repo.Statistics(ctx, model.DateOf(now))
}
