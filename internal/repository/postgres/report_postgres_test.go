package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docuflota/internal/model"
)

var reportColumns = []string{
	"id", "name", "category", "expiration_date",
	"type_name", "vehicle_name", "personnel_name", "client_name",
}

func TestReportPostgres_ExpiredRows(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewReportPostgres(db)
	ctx := context.Background()
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	today := model.DateOf(now)

	t.Run("returns rows soonest first", func(t *testing.T) {
		rows := sqlmock.NewRows(reportColumns).
			AddRow("doc-1", "Insurance policy", "vehicle", today.AddDate(0, 0, -3),
				"Insurance", "Truck 7", nil, "Transporte Sur").
			AddRow("doc-2", "Driver license", "personnel", today.AddDate(0, 0, -1),
				"License", nil, "J. Diaz", "Transporte Sur")

		dbMock.ExpectQuery("SELECT d.id, d.name").
			WithArgs(today).
			WillReturnRows(rows)

		got, err := repo.ExpiredRows(ctx, now)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Truck 7", got[0].OwnerName())
		assert.Equal(t, "J. Diaz", got[1].OwnerName())
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("query failure", func(t *testing.T) {
		dbMock.ExpectQuery("SELECT d.id, d.name").
			WithArgs(today).
			WillReturnError(errors.New("db down"))

		_, err := repo.ExpiredRows(ctx, now)

		assert.True(t, model.IsStorage(err))
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

func TestReportPostgres_ExpiringRows(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewReportPostgres(db)
	ctx := context.Background()
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	today := model.DateOf(now)

	rows := sqlmock.NewRows(reportColumns).
		AddRow("doc-3", "VTV", "vehicle", today.AddDate(0, 0, 5),
			"Inspection", "Truck 2", nil, "Transporte Sur")

	dbMock.ExpectQuery("BETWEEN").
		WithArgs(today, today.AddDate(0, 0, 7)).
		WillReturnRows(rows)

	got, err := repo.ExpiringRows(ctx, now, now.AddDate(0, 0, 7))

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "VTV", got[0].DocumentName)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestReportPostgres_Statistics(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewReportPostgres(db)
	ctx := context.Background()
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	dbMock.ExpectQuery("COUNT").
		WithArgs(model.DateOf(now)).
		WillReturnRows(sqlmock.NewRows([]string{
			"expired_count", "expiring_7_days", "expiring_30_days", "total_documents",
		}).AddRow(2, 1, 4, 20))

	got, err := repo.Statistics(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 2, got.ExpiredCount)
	assert.Equal(t, 1, got.Expiring7Days)
	assert.Equal(t, 4, got.Expiring30Days)
	assert.Equal(t, 20, got.TotalDocuments)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
