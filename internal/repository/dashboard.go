package repository

import (
	"context"

	"docuflota/internal/model"
)

// DashboardRepository serves the dashboard's aggregate counters and the
// recent-activity feed.
type DashboardRepository interface {
	// Stats returns entity counts and the document status breakdown.
	Stats(ctx context.Context) (*model.DashboardStats, error)

	// RecentActivity returns the latest uploads and replacements, newest
	// first, capped at limit.
	RecentActivity(ctx context.Context, limit int) ([]model.ActivityEntry, error)
}
