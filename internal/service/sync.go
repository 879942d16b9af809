package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"docuflota/internal/repository"
)

// SyncResult reports how many rows each reconciliation pass changed.
type SyncResult struct {
	Expired int64 `json:"expired"`
	Warning int64 `json:"warning"`
	Valid   int64 `json:"valid"`
}

// Total returns the number of rows changed across all passes.
func (r SyncResult) Total() int64 {
	return r.Expired + r.Warning + r.Valid
}

// Synchronizer reconciles every document's stored status with its expiration
// date. Run is idempotent: a second run with no intervening mutation changes
// zero rows.
type Synchronizer interface {
	Run(ctx context.Context, now time.Time) (SyncResult, error)
}

type synchronizer struct {
	repo   repository.DocumentRepository
	logger zerolog.Logger
}

// NewSynchronizer constructs the status synchronizer.
func NewSynchronizer(repo repository.DocumentRepository, logger zerolog.Logger) Synchronizer {
	return &synchronizer{
		repo:   repo,
		logger: logger.With().Str("component", "status-sync").Logger(),
	}
}

// Run executes the three passes in order: expired, then warning, then valid.
// The order matters: a document inside the warning window that has also
// passed its expiration must land on expired, so that pass goes first and
// the warning pass only promotes from valid. It aborts on the first failed
// pass and reports the partial result.
func (s *synchronizer) Run(ctx context.Context, now time.Time) (SyncResult, error) {
	var res SyncResult
	var err error

	if res.Expired, err = s.repo.MarkExpired(ctx, now); err != nil {
		s.logger.Error().Err(err).Msg("expired pass failed")
		return res, err
	}
	if res.Warning, err = s.repo.MarkWarning(ctx, now); err != nil {
		s.logger.Error().Err(err).Msg("warning pass failed")
		return res, err
	}
	if res.Valid, err = s.repo.MarkValid(ctx, now); err != nil {
		s.logger.Error().Err(err).Msg("valid pass failed")
		return res, err
	}

	s.logger.Info().
		Int64("expired", res.Expired).
		Int64("warning", res.Warning).
		Int64("valid", res.Valid).
		Msg("document statuses reconciled")
	return res, nil
}
