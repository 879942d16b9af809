package postgres

import (
	"context"
	"database/sql"
	"errors"

	"docuflota/internal/model"
	"docuflota/internal/repository"
)

// DocumentTypePostgres is a PostgreSQL implementation of
// repository.DocumentTypeRepository.
type DocumentTypePostgres struct {
	db *sql.DB
}

// NewDocumentTypePostgres creates a new DocumentTypePostgres repository.
func NewDocumentTypePostgres(db *sql.DB) *DocumentTypePostgres {
	return &DocumentTypePostgres{db: db}
}

var _ repository.DocumentTypeRepository = (*DocumentTypePostgres)(nil)

// FindByID fetches a single document type.
func (r *DocumentTypePostgres) FindByID(ctx context.Context, id string) (*model.DocumentType, error) {
	const q = `
		SELECT id, name, category, required, validity_days, created_at
		FROM document_types
		WHERE id = $1`
	var dt model.DocumentType
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&dt.ID, &dt.Name, &dt.Category, &dt.Required, &dt.ValidityDays, &dt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, translateErr("document_types.find", err)
	}
	return &dt, nil
}

// List returns document types ordered by name, optionally filtered by
// category.
func (r *DocumentTypePostgres) List(ctx context.Context, category model.Category) ([]model.DocumentType, error) {
	q := `SELECT id, name, category, required, validity_days, created_at FROM document_types`
	var args []any
	if category != "" {
		q += ` WHERE category = $1`
		args = append(args, category)
	}
	q += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, translateErr("document_types.list", err)
	}
	defer rows.Close()

	out := make([]model.DocumentType, 0)
	for rows.Next() {
		var dt model.DocumentType
		if err := rows.Scan(
			&dt.ID, &dt.Name, &dt.Category, &dt.Required, &dt.ValidityDays, &dt.CreatedAt,
		); err != nil {
			return nil, translateErr("document_types.list", err)
		}
		out = append(out, dt)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr("document_types.list", err)
	}
	return out, nil
}
