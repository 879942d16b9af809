package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docuflota/internal/model"
)

var vehicleTestColumns = []string{
	"id", "plate", "name", "type", "client_id", "status", "created_at", "updated_at",
}

func sampleVehicle() *model.Vehicle {
	now := time.Now().UTC()
	return &model.Vehicle{
		ID:        "veh-1",
		Plate:     "ABC123",
		Name:      "Truck 7",
		Type:      "truck",
		ClientID:  "client-1",
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func vehicleRow(v *model.Vehicle) *sqlmock.Rows {
	return sqlmock.NewRows(vehicleTestColumns).AddRow(
		v.ID, v.Plate, v.Name, v.Type, v.ClientID, v.Status, v.CreatedAt, v.UpdatedAt,
	)
}

func TestVehiclePostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewVehiclePostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		v := sampleVehicle()
		mock.ExpectQuery("INSERT INTO vehicles").
			WithArgs(v.ID, v.Plate, v.Name, v.Type, v.ClientID, v.Status, v.CreatedAt, v.UpdatedAt).
			WillReturnRows(vehicleRow(v))

		got, err := repo.Create(ctx, v)

		assert.NoError(t, err)
		assert.Equal(t, "ABC123", got.Plate)
	})

	t.Run("duplicate plate", func(t *testing.T) {
		v := sampleVehicle()
		mock.ExpectQuery("INSERT INTO vehicles").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "vehicles_plate_key"})

		_, err := repo.Create(ctx, v)

		assert.True(t, model.IsConflict(err))
	})
}

func TestVehiclePostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewVehiclePostgres(db)

	listColumns := append(append([]string{}, vehicleTestColumns...), "client_name")
	v := sampleVehicle()
	rows := sqlmock.NewRows(listColumns).AddRow(
		v.ID, v.Plate, v.Name, v.Type, v.ClientID, v.Status, v.CreatedAt, v.UpdatedAt,
		"Acme Logistics",
	)
	mock.ExpectQuery("SELECT (.+) FROM vehicles v LEFT JOIN clients").
		WillReturnRows(rows)

	vehicles, err := repo.List(context.Background())

	assert.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "Acme Logistics", vehicles[0].ClientName)
}

func TestVehiclePostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewVehiclePostgres(db)

	mock.ExpectExec("DELETE FROM vehicles WHERE id = ?").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), model.ErrNotFound)
}
