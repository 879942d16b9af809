package postgres

import (
	"context"
	"database/sql"
	"time"

	"docuflota/internal/model"
	"docuflota/internal/repository"
)

// ReportPostgres is a PostgreSQL implementation of
// repository.ReportRepository.
type ReportPostgres struct {
	db *sql.DB
}

// NewReportPostgres creates a new ReportPostgres repository.
func NewReportPostgres(db *sql.DB) *ReportPostgres {
	return &ReportPostgres{db: db}
}

var _ repository.ReportRepository = (*ReportPostgres)(nil)

const reportSelect = `
	SELECT d.id, d.name, d.category, d.expiration_date,
		dt.name AS type_name,
		v.name AS vehicle_name,
		p.name AS personnel_name,
		c.name AS client_name
	FROM documents d
	LEFT JOIN document_types dt ON d.type_id = dt.id
	LEFT JOIN vehicles v ON d.vehicle_id = v.id
	LEFT JOIN personnel p ON d.personnel_id = p.id
	LEFT JOIN clients c ON d.client_id = c.id`

// ExpiredRows returns documents whose expiration is strictly before today.
func (r *ReportPostgres) ExpiredRows(ctx context.Context, today time.Time) ([]model.ReportRow, error) {
	const q = reportSelect + `
	WHERE d.expiration_date < $1::date
	ORDER BY d.expiration_date ASC`
	return r.queryRows(ctx, "report.expired", q, model.DateOf(today))
}

// ExpiringRows returns documents expiring in the inclusive window [from, to].
func (r *ReportPostgres) ExpiringRows(ctx context.Context, from, to time.Time) ([]model.ReportRow, error) {
	const q = reportSelect + `
	WHERE d.expiration_date BETWEEN $1::date AND $2::date
	ORDER BY d.expiration_date ASC`
	return r.queryRows(ctx, "report.expiring", q, model.DateOf(from), model.DateOf(to))
}

// Statistics returns the aggregate expiration counts in one round trip.
func (r *ReportPostgres) Statistics(ctx context.Context, today time.Time) (*model.Statistics, error) {
	const q = `
		SELECT
			COUNT(*) FILTER (WHERE expiration_date < $1::date) AS expired_count,
			COUNT(*) FILTER (WHERE expiration_date BETWEEN $1::date AND $1::date + 7) AS expiring_7_days,
			COUNT(*) FILTER (WHERE expiration_date BETWEEN $1::date + 8 AND $1::date + 30) AS expiring_30_days,
			COUNT(*) AS total_documents
		FROM documents
		WHERE expiration_date IS NOT NULL`
	var s model.Statistics
	err := r.db.QueryRowContext(ctx, q, model.DateOf(today)).Scan(
		&s.ExpiredCount,
		&s.Expiring7Days,
		&s.Expiring30Days,
		&s.TotalDocuments,
	)
	if err != nil {
		return nil, translateErr("report.statistics", err)
	}
	return &s, nil
}

func (r *ReportPostgres) queryRows(ctx context.Context, op, q string, args ...any) ([]model.ReportRow, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, translateErr(op, err)
	}
	defer rows.Close()

	out := make([]model.ReportRow, 0)
	for rows.Next() {
		var row model.ReportRow
		var typeName, vehicleName, personnelName, clientName sql.NullString
		if err := rows.Scan(
			&row.DocumentID, &row.DocumentName, &row.Category, &row.ExpirationDate,
			&typeName, &vehicleName, &personnelName, &clientName,
		); err != nil {
			return nil, translateErr(op, err)
		}
		row.TypeName = typeName.String
		row.VehicleName = vehicleName.String
		row.PersonnelName = personnelName.String
		row.ClientName = clientName.String
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr(op, err)
	}
	return out, nil
}
