package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	repoMocks "docuflota/internal/repository/mocks"
)

func TestSynchronizer_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("runs the three passes in order", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		var order []string
		mRepo.On("MarkExpired", ctx, testNow).Run(func(mock.Arguments) {
			order = append(order, "expired")
		}).Return(int64(3), nil)
		mRepo.On("MarkWarning", ctx, testNow).Run(func(mock.Arguments) {
			order = append(order, "warning")
		}).Return(int64(2), nil)
		mRepo.On("MarkValid", ctx, testNow).Run(func(mock.Arguments) {
			order = append(order, "valid")
		}).Return(int64(1), nil)

		sync := NewSynchronizer(mRepo, zerolog.Nop())
		res, err := sync.Run(ctx, testNow)

		assert.NoError(t, err)
		assert.Equal(t, []string{"expired", "warning", "valid"}, order)
		assert.Equal(t, SyncResult{Expired: 3, Warning: 2, Valid: 1}, res)
		assert.Equal(t, int64(6), res.Total())
		mRepo.AssertExpectations(t)
	})

	t.Run("second run over a converged table changes nothing", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("MarkExpired", ctx, testNow).Return(int64(0), nil)
		mRepo.On("MarkWarning", ctx, testNow).Return(int64(0), nil)
		mRepo.On("MarkValid", ctx, testNow).Return(int64(0), nil)

		sync := NewSynchronizer(mRepo, zerolog.Nop())
		res, err := sync.Run(ctx, testNow)

		assert.NoError(t, err)
		assert.Zero(t, res.Total())
	})

	t.Run("aborts after the first failed pass", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("MarkExpired", ctx, testNow).Return(int64(0), errors.New("db down"))

		sync := NewSynchronizer(mRepo, zerolog.Nop())
		_, err := sync.Run(ctx, testNow)

		assert.Error(t, err)
		mRepo.AssertNotCalled(t, "MarkWarning", ctx, testNow)
		mRepo.AssertNotCalled(t, "MarkValid", ctx, testNow)
	})
}
