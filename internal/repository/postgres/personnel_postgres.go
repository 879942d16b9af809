package postgres

import (
	"context"
	"database/sql"
	"errors"

	"docuflota/internal/model"
	"docuflota/internal/repository"
)

// PersonnelPostgres is a PostgreSQL implementation of
// repository.PersonnelRepository.
type PersonnelPostgres struct {
	db *sql.DB
}

// NewPersonnelPostgres creates a new PersonnelPostgres repository.
func NewPersonnelPostgres(db *sql.DB) *PersonnelPostgres {
	return &PersonnelPostgres{db: db}
}

var _ repository.PersonnelRepository = (*PersonnelPostgres)(nil)

const personnelColumns = `id, name, role, dni, client_id, status, created_at, updated_at`

// Create inserts a new personnel row.
func (r *PersonnelPostgres) Create(ctx context.Context, p *model.Personnel) (*model.Personnel, error) {
	const q = `
		INSERT INTO personnel (id, name, role, dni, client_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + personnelColumns
	row := r.db.QueryRowContext(ctx, q,
		p.ID, p.Name, p.Role, p.DNI, p.ClientID, p.Status, p.CreatedAt, p.UpdatedAt,
	)
	out, err := scanPersonnel(row)
	if err != nil {
		return nil, translateErr("personnel.create", err)
	}
	return out, nil
}

// FindByID fetches a single personnel record with its client name.
func (r *PersonnelPostgres) FindByID(ctx context.Context, id string) (*model.Personnel, error) {
	const q = `
		SELECT p.id, p.name, p.role, p.dni, p.client_id, p.status, p.created_at, p.updated_at,
			c.name AS client_name
		FROM personnel p
		LEFT JOIN clients c ON p.client_id = c.id
		WHERE p.id = $1`
	var p model.Personnel
	var clientName sql.NullString
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&p.ID, &p.Name, &p.Role, &p.DNI, &p.ClientID, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		&clientName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, translateErr("personnel.find", err)
	}
	p.ClientName = clientName.String
	return &p, nil
}

// List returns all personnel with their client names, newest first.
func (r *PersonnelPostgres) List(ctx context.Context) ([]model.Personnel, error) {
	const q = `
		SELECT p.id, p.name, p.role, p.dni, p.client_id, p.status, p.created_at, p.updated_at,
			c.name AS client_name
		FROM personnel p
		LEFT JOIN clients c ON p.client_id = c.id
		ORDER BY p.created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, translateErr("personnel.list", err)
	}
	defer rows.Close()

	out := make([]model.Personnel, 0)
	for rows.Next() {
		var p model.Personnel
		var clientName sql.NullString
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Role, &p.DNI, &p.ClientID, &p.Status, &p.CreatedAt, &p.UpdatedAt,
			&clientName,
		); err != nil {
			return nil, translateErr("personnel.list", err)
		}
		p.ClientName = clientName.String
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr("personnel.list", err)
	}
	return out, nil
}

// Update persists the mutable personnel fields.
func (r *PersonnelPostgres) Update(ctx context.Context, p *model.Personnel) (*model.Personnel, error) {
	const q = `
		UPDATE personnel
		SET name = $1, role = $2, dni = $3, client_id = $4, status = $5, updated_at = $6
		WHERE id = $7
		RETURNING ` + personnelColumns
	row := r.db.QueryRowContext(ctx, q,
		p.Name, p.Role, p.DNI, p.ClientID, p.Status, p.UpdatedAt, p.ID,
	)
	out, err := scanPersonnel(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, translateErr("personnel.update", err)
	}
	return out, nil
}

// Delete removes a personnel record; its documents cascade.
func (r *PersonnelPostgres) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM personnel WHERE id = $1`, id)
	if err != nil {
		return translateErr("personnel.delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return translateErr("personnel.delete", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanPersonnel(row *sql.Row) (*model.Personnel, error) {
	var p model.Personnel
	if err := row.Scan(
		&p.ID, &p.Name, &p.Role, &p.DNI, &p.ClientID, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
