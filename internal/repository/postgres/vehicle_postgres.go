package postgres

import (
	"context"
	"database/sql"
	"errors"

	"docuflota/internal/model"
	"docuflota/internal/repository"
)

// VehiclePostgres is a PostgreSQL implementation of
// repository.VehicleRepository.
type VehiclePostgres struct {
	db *sql.DB
}

// NewVehiclePostgres creates a new VehiclePostgres repository.
func NewVehiclePostgres(db *sql.DB) *VehiclePostgres {
	return &VehiclePostgres{db: db}
}

var _ repository.VehicleRepository = (*VehiclePostgres)(nil)

const vehicleColumns = `id, plate, name, type, client_id, status, created_at, updated_at`

// Create inserts a new vehicle row.
func (r *VehiclePostgres) Create(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	const q = `
		INSERT INTO vehicles (id, plate, name, type, client_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + vehicleColumns
	row := r.db.QueryRowContext(ctx, q,
		v.ID, v.Plate, v.Name, v.Type, v.ClientID, v.Status, v.CreatedAt, v.UpdatedAt,
	)
	out, err := scanVehicle(row)
	if err != nil {
		return nil, translateErr("vehicles.create", err)
	}
	return out, nil
}

// FindByID fetches a single vehicle with its client name.
func (r *VehiclePostgres) FindByID(ctx context.Context, id string) (*model.Vehicle, error) {
	const q = `
		SELECT v.id, v.plate, v.name, v.type, v.client_id, v.status, v.created_at, v.updated_at,
			c.name AS client_name
		FROM vehicles v
		LEFT JOIN clients c ON v.client_id = c.id
		WHERE v.id = $1`
	var v model.Vehicle
	var clientName sql.NullString
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&v.ID, &v.Plate, &v.Name, &v.Type, &v.ClientID, &v.Status, &v.CreatedAt, &v.UpdatedAt,
		&clientName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, translateErr("vehicles.find", err)
	}
	v.ClientName = clientName.String
	return &v, nil
}

// List returns all vehicles with their client names, newest first.
func (r *VehiclePostgres) List(ctx context.Context) ([]model.Vehicle, error) {
	const q = `
		SELECT v.id, v.plate, v.name, v.type, v.client_id, v.status, v.created_at, v.updated_at,
			c.name AS client_name
		FROM vehicles v
		LEFT JOIN clients c ON v.client_id = c.id
		ORDER BY v.created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, translateErr("vehicles.list", err)
	}
	defer rows.Close()

	out := make([]model.Vehicle, 0)
	for rows.Next() {
		var v model.Vehicle
		var clientName sql.NullString
		if err := rows.Scan(
			&v.ID, &v.Plate, &v.Name, &v.Type, &v.ClientID, &v.Status, &v.CreatedAt, &v.UpdatedAt,
			&clientName,
		); err != nil {
			return nil, translateErr("vehicles.list", err)
		}
		v.ClientName = clientName.String
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr("vehicles.list", err)
	}
	return out, nil
}

// Update persists the mutable vehicle fields.
func (r *VehiclePostgres) Update(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	const q = `
		UPDATE vehicles
		SET plate = $1, name = $2, type = $3, client_id = $4, status = $5, updated_at = $6
		WHERE id = $7
		RETURNING ` + vehicleColumns
	row := r.db.QueryRowContext(ctx, q,
		v.Plate, v.Name, v.Type, v.ClientID, v.Status, v.UpdatedAt, v.ID,
	)
	out, err := scanVehicle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, translateErr("vehicles.update", err)
	}
	return out, nil
}

// Delete removes a vehicle; its documents cascade.
func (r *VehiclePostgres) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return translateErr("vehicles.delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return translateErr("vehicles.delete", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanVehicle(row *sql.Row) (*model.Vehicle, error) {
	var v model.Vehicle
	if err := row.Scan(
		&v.ID, &v.Plate, &v.Name, &v.Type, &v.ClientID, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &v, nil
}
