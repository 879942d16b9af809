package postgres

import (
	"context"
	"database/sql"

	"docuflota/internal/model"
	"docuflota/internal/repository"
)

// DashboardPostgres serves the dashboard aggregates from PostgreSQL.
type DashboardPostgres struct {
	db *sql.DB
}

func NewDashboardPostgres(db *sql.DB) *DashboardPostgres {
	return &DashboardPostgres{db: db}
}

var _ repository.DashboardRepository = (*DashboardPostgres)(nil)

// Stats collapses the entity counts and status breakdown into one round trip.
func (r *DashboardPostgres) Stats(ctx context.Context) (*model.DashboardStats, error) {
	const q = `
		SELECT
			(SELECT COUNT(*) FROM clients),
			(SELECT COUNT(*) FROM vehicles),
			(SELECT COUNT(*) FROM personnel),
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'valid'),
			COUNT(*) FILTER (WHERE status = 'warning'),
			COUNT(*) FILTER (WHERE status = 'expired')
		FROM documents`
	var st model.DashboardStats
	err := r.db.QueryRowContext(ctx, q).Scan(
		&st.TotalClients,
		&st.TotalVehicles,
		&st.TotalPersonnel,
		&st.TotalDocuments,
		&st.ValidDocuments,
		&st.WarningCount,
		&st.ExpiredCount,
	)
	if err != nil {
		return nil, translateErr("dashboard.stats", err)
	}
	return &st, nil
}

// RecentActivity interleaves document uploads and file replacements into one
// feed, newest first.
func (r *DashboardPostgres) RecentActivity(ctx context.Context, limit int) ([]model.ActivityEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	const q = `
		SELECT document_id, document_name, action, occurred_at FROM (
			SELECT id AS document_id, name AS document_name,
				'uploaded' AS action, created_at AS occurred_at
			FROM documents
			UNION ALL
			SELECT r.document_id, d.name, 'replaced', r.replaced_at
			FROM document_replacements r
			JOIN documents d ON d.id = r.document_id
		) activity
		ORDER BY occurred_at DESC
		LIMIT $1`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, translateErr("dashboard.activity", err)
	}
	defer rows.Close()

	entries := make([]model.ActivityEntry, 0, limit)
	for rows.Next() {
		var e model.ActivityEntry
		if err := rows.Scan(&e.DocumentID, &e.DocumentName, &e.Action, &e.OccurredAt); err != nil {
			return nil, translateErr("dashboard.activity", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr("dashboard.activity", err)
	}
	return entries, nil
}
