package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_clients",
		SQL: `CREATE TABLE IF NOT EXISTS clients (
  id            UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name          TEXT        NOT NULL,
  cuit          TEXT        NOT NULL UNIQUE,
  contact_name  TEXT        NOT NULL DEFAULT '',
  contact_email TEXT        NOT NULL DEFAULT '',
  contact_phone TEXT        NOT NULL DEFAULT '',
  status        TEXT        NOT NULL DEFAULT 'active',
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_vehicles",
		SQL: `CREATE TABLE IF NOT EXISTS vehicles (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  plate      TEXT        NOT NULL UNIQUE,
  name       TEXT        NOT NULL,
  type       TEXT        NOT NULL DEFAULT '',
  client_id  UUID        NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
  status     TEXT        NOT NULL DEFAULT 'active',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_personnel",
		SQL: `CREATE TABLE IF NOT EXISTS personnel (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name       TEXT        NOT NULL,
  role       TEXT        NOT NULL DEFAULT '',
  dni        TEXT        NOT NULL UNIQUE,
  client_id  UUID        NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
  status     TEXT        NOT NULL DEFAULT 'active',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_document_types",
		SQL: `CREATE TABLE IF NOT EXISTS document_types (
  id            UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name          TEXT        NOT NULL,
  category      TEXT        NOT NULL CHECK (category IN ('vehicle', 'personnel')),
  required      BOOLEAN     NOT NULL DEFAULT false,
  validity_days INTEGER,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE IF NOT EXISTS documents (
  id              UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name            TEXT        NOT NULL,
  type_id         UUID        NOT NULL REFERENCES document_types(id),
  category        TEXT        NOT NULL CHECK (category IN ('vehicle', 'personnel')),
  file_url        TEXT        NOT NULL,
  file_name       TEXT        NOT NULL,
  file_size       BIGINT      NOT NULL CHECK (file_size >= 0),
  expiration_date DATE,
  status          TEXT        NOT NULL DEFAULT 'valid' CHECK (status IN ('valid', 'warning', 'expired')),
  vehicle_id      UUID        REFERENCES vehicles(id) ON DELETE CASCADE,
  personnel_id    UUID        REFERENCES personnel(id) ON DELETE CASCADE,
  client_id       UUID        NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  CHECK (
    (category = 'vehicle' AND vehicle_id IS NOT NULL AND personnel_id IS NULL) OR
    (category = 'personnel' AND personnel_id IS NOT NULL AND vehicle_id IS NULL)
  )
);`,
	},
	{
		Name: "create_table_document_replacements",
		SQL: `CREATE TABLE IF NOT EXISTS document_replacements (
  id                       UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  document_id              UUID        NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
  previous_file_url        TEXT        NOT NULL,
  previous_file_name       TEXT        NOT NULL,
  previous_expiration_date DATE,
  replaced_by              TEXT        NOT NULL DEFAULT '',
  replaced_at              TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_documents_expiration",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_expiration ON documents (expiration_date) WHERE expiration_date IS NOT NULL;`,
	},
	{
		Name: "create_index_documents_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_status ON documents (status);`,
	},
	{
		Name: "create_index_documents_vehicle",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_vehicle ON documents (vehicle_id) WHERE vehicle_id IS NOT NULL;`,
	},
	{
		Name: "create_index_documents_personnel",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_personnel ON documents (personnel_id) WHERE personnel_id IS NOT NULL;`,
	},
	{
		Name: "create_index_replacements_document",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_replacements_document ON document_replacements (document_id, replaced_at DESC);`,
	},
}

// EnsureMigrated checks for the document_replacements table and runs the
// schema steps if it is missing. That table is the sentinel because it is the
// last one created, so an aborted earlier run re-runs from the top; every step
// is IF NOT EXISTS and safe to repeat.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger zerolog.Logger) error {
	log := logger.With().Str("component", "migration").Logger()
	start := time.Now()

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass('public.document_replacements') IS NOT NULL").Scan(&exists); err != nil {
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}
	if exists {
		log.Info().Msg("schema already exists, skipping migration")
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().
				Err(err).
				Str("step", step.Name).
				Msg("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		log.Debug().
			Str("step", step.Name).
			Dur("took", time.Since(stepStart)).
			Msg("migration step applied")
	}

	log.Info().
		Int("steps", len(steps)).
		Dur("took", time.Since(start)).
		Msg("schema migrated")
	return nil
}
