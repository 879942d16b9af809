package notifier

import (
	"context"

	"docuflota/internal/model"
)

// Notifier delivers the daily expiration report to the fleet administrator.
type Notifier interface {
	SendReport(ctx context.Context, to string, report *model.Report) error
}
