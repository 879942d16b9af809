package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"docuflota/internal/model"
	"docuflota/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of
// repository.DocumentRepository.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, name, type_id, category, file_url, file_name, file_size,
	expiration_date, status, vehicle_id, personnel_id, client_id, created_at, updated_at`

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (id, name, type_id, category, file_url, file_name, file_size,
			expiration_date, status, vehicle_id, personnel_id, client_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.Name,
		doc.TypeID,
		doc.Category,
		doc.FileURL,
		doc.FileName,
		doc.FileSize,
		doc.ExpirationDate,
		doc.Status,
		doc.VehicleID,
		doc.PersonnelID,
		doc.ClientID,
		doc.CreatedAt,
		doc.UpdatedAt,
	)
	out, err := scanDocument(row)
	if err != nil {
		return nil, translateErr("documents.create", err)
	}
	return out, nil
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	out, err := scanDocument(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, translateErr("documents.find", err)
	}
	return out, nil
}

// List returns documents matching the filter, with denormalized type, owner,
// and client names, ordered by expiration date ascending so the soonest
// expiring documents are listed first.
func (r *DocumentPostgres) List(ctx context.Context, f repository.DocumentFilter) ([]model.Document, error) {
	q := `
		SELECT d.id, d.name, d.type_id, d.category, d.file_url, d.file_name, d.file_size,
			d.expiration_date, d.status, d.vehicle_id, d.personnel_id, d.client_id,
			d.created_at, d.updated_at,
			dt.name AS type_name,
			v.plate AS vehicle_plate,
			v.name AS vehicle_name,
			p.name AS personnel_name,
			c.name AS client_name
		FROM documents d
		LEFT JOIN document_types dt ON d.type_id = dt.id
		LEFT JOIN vehicles v ON d.vehicle_id = v.id
		LEFT JOIN personnel p ON d.personnel_id = p.id
		LEFT JOIN clients c ON d.client_id = c.id
		WHERE 1=1`
	var args []any
	if f.Category != "" {
		args = append(args, f.Category)
		q += fmt.Sprintf(" AND d.category = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		q += fmt.Sprintf(" AND d.status = $%d", len(args))
	}
	if f.VehicleID != "" {
		args = append(args, f.VehicleID)
		q += fmt.Sprintf(" AND d.vehicle_id = $%d", len(args))
	}
	if f.PersonnelID != "" {
		args = append(args, f.PersonnelID)
		q += fmt.Sprintf(" AND d.personnel_id = $%d", len(args))
	}
	q += " ORDER BY d.expiration_date ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, translateErr("documents.list", err)
	}
	defer rows.Close()

	docs := make([]model.Document, 0)
	for rows.Next() {
		var d model.Document
		var typeName, vehiclePlate, vehicleName, personnelName, clientName sql.NullString
		if err := rows.Scan(
			&d.ID, &d.Name, &d.TypeID, &d.Category, &d.FileURL, &d.FileName, &d.FileSize,
			&d.ExpirationDate, &d.Status, &d.VehicleID, &d.PersonnelID, &d.ClientID,
			&d.CreatedAt, &d.UpdatedAt,
			&typeName, &vehiclePlate, &vehicleName, &personnelName, &clientName,
		); err != nil {
			return nil, translateErr("documents.list", err)
		}
		d.TypeName = typeName.String
		d.VehiclePlate = vehiclePlate.String
		d.VehicleName = vehicleName.String
		d.PersonnelName = personnelName.String
		d.ClientName = clientName.String
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr("documents.list", err)
	}
	return docs, nil
}

// Update persists the mutable document fields.
func (r *DocumentPostgres) Update(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		UPDATE documents
		SET name = $1, expiration_date = $2, status = $3, updated_at = $4
		WHERE id = $5
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.Name,
		doc.ExpirationDate,
		doc.Status,
		doc.UpdatedAt,
		doc.ID,
	)
	out, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, translateErr("documents.update", err)
	}
	return out, nil
}

// Delete removes a document by ID. Replacement records cascade away via the
// foreign key.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return translateErr("documents.delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return translateErr("documents.delete", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Replace inserts the history snapshot and swaps the document's active fields
// in one transaction, so a partial replacement can never persist.
func (r *DocumentPostgres) Replace(ctx context.Context, rec *model.ReplacementRecord, doc *model.Document) (*model.Document, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, translateErr("documents.replace", err)
	}
	defer tx.Rollback()

	const insertRec = `
		INSERT INTO document_replacements (id, document_id, previous_file_url,
			previous_file_name, previous_expiration_date, replaced_by, replaced_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := tx.ExecContext(ctx, insertRec,
		rec.ID,
		rec.DocumentID,
		rec.PreviousFileURL,
		rec.PreviousFileName,
		rec.PreviousExpirationDate,
		rec.ReplacedBy,
		rec.ReplacedAt,
	); err != nil {
		return nil, translateErr("documents.replace", err)
	}

	const updateDoc = `
		UPDATE documents
		SET name = $1, file_url = $2, file_name = $3, file_size = $4,
			expiration_date = $5, status = $6, updated_at = $7
		WHERE id = $8
		RETURNING ` + documentColumns
	row := tx.QueryRowContext(ctx, updateDoc,
		doc.Name,
		doc.FileURL,
		doc.FileName,
		doc.FileSize,
		doc.ExpirationDate,
		doc.Status,
		doc.UpdatedAt,
		doc.ID,
	)
	out, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, translateErr("documents.replace", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, translateErr("documents.replace", err)
	}
	return out, nil
}

// History lists a document's replacement records, newest first.
func (r *DocumentPostgres) History(ctx context.Context, documentID string) ([]model.ReplacementRecord, error) {
	const q = `
		SELECT id, document_id, previous_file_url, previous_file_name,
			previous_expiration_date, replaced_by, replaced_at
		FROM document_replacements
		WHERE document_id = $1
		ORDER BY replaced_at DESC`
	rows, err := r.db.QueryContext(ctx, q, documentID)
	if err != nil {
		return nil, translateErr("documents.history", err)
	}
	defer rows.Close()

	recs := make([]model.ReplacementRecord, 0)
	for rows.Next() {
		var rec model.ReplacementRecord
		if err := rows.Scan(
			&rec.ID, &rec.DocumentID, &rec.PreviousFileURL, &rec.PreviousFileName,
			&rec.PreviousExpirationDate, &rec.ReplacedBy, &rec.ReplacedAt,
		); err != nil {
			return nil, translateErr("documents.history", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr("documents.history", err)
	}
	return recs, nil
}

// MarkExpired is synchronizer pass one: documents whose expiration date has
// been reached move to expired.
func (r *DocumentPostgres) MarkExpired(ctx context.Context, now time.Time) (int64, error) {
	const q = `
		UPDATE documents
		SET status = 'expired', updated_at = $2
		WHERE expiration_date IS NOT NULL
			AND expiration_date <= $1::date
			AND status <> 'expired'`
	return r.markPass(ctx, "documents.mark_expired", q, now)
}

// MarkWarning is synchronizer pass two: valid documents inside the 30-day
// window move to warning. Only promotes forward from valid.
func (r *DocumentPostgres) MarkWarning(ctx context.Context, now time.Time) (int64, error) {
	const q = `
		UPDATE documents
		SET status = 'warning', updated_at = $2
		WHERE expiration_date > $1::date
			AND expiration_date <= $1::date + 30
			AND status = 'valid'`
	return r.markPass(ctx, "documents.mark_warning", q, now)
}

// MarkValid is synchronizer pass three: warning documents whose expiration
// moved back out of the window revert to valid. Rows with no expiration date
// are always valid, so any that drifted revert too.
func (r *DocumentPostgres) MarkValid(ctx context.Context, now time.Time) (int64, error) {
	const q = `
		UPDATE documents
		SET status = 'valid', updated_at = $2
		WHERE (expiration_date > $1::date + 30 AND status = 'warning')
			OR (expiration_date IS NULL AND status <> 'valid')`
	return r.markPass(ctx, "documents.mark_valid", q, now)
}

func (r *DocumentPostgres) markPass(ctx context.Context, op, q string, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, q, model.DateOf(now), now)
	if err != nil {
		return 0, translateErr(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, translateErr(op, err)
	}
	return n, nil
}

// scanDocument reads one document row from a RETURNING or single-row query.
func scanDocument(row *sql.Row) (*model.Document, error) {
	var d model.Document
	if err := row.Scan(
		&d.ID, &d.Name, &d.TypeID, &d.Category, &d.FileURL, &d.FileName, &d.FileSize,
		&d.ExpirationDate, &d.Status, &d.VehicleID, &d.PersonnelID, &d.ClientID,
		&d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}
