package postgres

import (
	"context"
	"database/sql"
	"errors"

	"docuflota/internal/model"
	"docuflota/internal/repository"
)

// ClientPostgres is a PostgreSQL implementation of
// repository.ClientRepository.
type ClientPostgres struct {
	db *sql.DB
}

// NewClientPostgres creates a new ClientPostgres repository.
func NewClientPostgres(db *sql.DB) *ClientPostgres {
	return &ClientPostgres{db: db}
}

var _ repository.ClientRepository = (*ClientPostgres)(nil)

const clientColumns = `id, name, cuit, contact_name, contact_email, contact_phone,
	status, created_at, updated_at`

// Create inserts a new client row.
func (r *ClientPostgres) Create(ctx context.Context, c *model.Client) (*model.Client, error) {
	const q = `
		INSERT INTO clients (id, name, cuit, contact_name, contact_email, contact_phone,
			status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + clientColumns
	row := r.db.QueryRowContext(ctx, q,
		c.ID, c.Name, c.CUIT, c.ContactName, c.ContactEmail, c.ContactPhone,
		c.Status, c.CreatedAt, c.UpdatedAt,
	)
	out, err := scanClient(row)
	if err != nil {
		return nil, translateErr("clients.create", err)
	}
	return out, nil
}

// FindByID fetches a single client.
func (r *ClientPostgres) FindByID(ctx context.Context, id string) (*model.Client, error) {
	const q = `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	out, err := scanClient(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, translateErr("clients.find", err)
	}
	return out, nil
}

// List returns all clients, newest first.
func (r *ClientPostgres) List(ctx context.Context) ([]model.Client, error) {
	const q = `SELECT ` + clientColumns + ` FROM clients ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, translateErr("clients.list", err)
	}
	defer rows.Close()

	out := make([]model.Client, 0)
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(
			&c.ID, &c.Name, &c.CUIT, &c.ContactName, &c.ContactEmail, &c.ContactPhone,
			&c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, translateErr("clients.list", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr("clients.list", err)
	}
	return out, nil
}

// Update persists the mutable client fields.
func (r *ClientPostgres) Update(ctx context.Context, c *model.Client) (*model.Client, error) {
	const q = `
		UPDATE clients
		SET name = $1, cuit = $2, contact_name = $3, contact_email = $4,
			contact_phone = $5, status = $6, updated_at = $7
		WHERE id = $8
		RETURNING ` + clientColumns
	row := r.db.QueryRowContext(ctx, q,
		c.Name, c.CUIT, c.ContactName, c.ContactEmail, c.ContactPhone,
		c.Status, c.UpdatedAt, c.ID,
	)
	out, err := scanClient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, translateErr("clients.update", err)
	}
	return out, nil
}

// Delete removes a client; owned vehicles, personnel, and documents cascade.
func (r *ClientPostgres) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return translateErr("clients.delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return translateErr("clients.delete", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanClient(row *sql.Row) (*model.Client, error) {
	var c model.Client
	if err := row.Scan(
		&c.ID, &c.Name, &c.CUIT, &c.ContactName, &c.ContactEmail, &c.ContactPhone,
		&c.Status, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
