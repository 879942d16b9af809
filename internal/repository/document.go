package repository

import (
	"context"
	"time"

	"docuflota/internal/model"
)

// DocumentRepository defines persistence for documents, their replacement
// history, and the bulk status reconciliation passes.
type DocumentRepository interface {
	// Create inserts a new document record and returns the stored row.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID, or model.ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// List returns documents matching the filter with denormalized type,
	// owner, and client names, ordered by expiration date ascending so the
	// most urgent items come first.
	List(ctx context.Context, f DocumentFilter) ([]model.Document, error)

	// Update persists the document's name, expiration date, and status.
	// Returns model.ErrNotFound if the row is absent.
	Update(ctx context.Context, doc *model.Document) (*model.Document, error)

	// Delete removes a document; its replacement records cascade away.
	// Returns model.ErrNotFound if the row is absent.
	Delete(ctx context.Context, id string) error

	// Replace atomically inserts the snapshot record and swaps the document's
	// active file, name, expiration, and status in one transaction. Either
	// both rows persist or neither does.
	Replace(ctx context.Context, rec *model.ReplacementRecord, doc *model.Document) (*model.Document, error)

	// History lists a document's replacement records, newest first.
	History(ctx context.Context, documentID string) ([]model.ReplacementRecord, error)

	// The three synchronizer passes. Each compares expiration_date against
	// the given reference date at day granularity, touches only rows whose
	// stored status differs from the target, and returns the number of rows
	// changed. Re-running a pass with no intervening mutation is a no-op.
	MarkExpired(ctx context.Context, now time.Time) (int64, error)
	MarkWarning(ctx context.Context, now time.Time) (int64, error)
	MarkValid(ctx context.Context, now time.Time) (int64, error)
}
