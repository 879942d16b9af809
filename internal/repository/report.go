package repository

import (
	"context"
	"time"

	"docuflota/internal/model"
)

// ReportRepository serves the point-in-time expiration report queries. All
// date windows are inclusive and evaluated at day granularity; documents with
// a null expiration date are never reported.
type ReportRepository interface {
	// ExpiredRows returns documents whose expiration is strictly before the
	// given date, soonest first.
	ExpiredRows(ctx context.Context, today time.Time) ([]model.ReportRow, error)

	// ExpiringRows returns documents expiring in [from, to], soonest first.
	ExpiringRows(ctx context.Context, from, to time.Time) ([]model.ReportRow, error)

	// Statistics returns the aggregate counts over all documents with a
	// non-null expiration date.
	Statistics(ctx context.Context, today time.Time) (*model.Statistics, error)
}
