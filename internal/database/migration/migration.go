package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_extraction_requests",
		SQL: `CREATE TABLE IF NOT EXISTS extraction_requests (
  id              TEXT        PRIMARY KEY,
  request_id      TEXT        NOT NULL DEFAULT '',
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  user_email      TEXT        NOT NULL DEFAULT '',
  session_id      TEXT        NOT NULL DEFAULT '',
  selected_text   TEXT        NOT NULL,
  text_length     INTEGER     NOT NULL CHECK (text_length >= 0),
  text_words      INTEGER     NOT NULL CHECK (text_words >= 0),
  client_date     TEXT        NOT NULL DEFAULT '',
  user_timezone   TEXT        NOT NULL DEFAULT '',
  source_url      TEXT        NOT NULL DEFAULT '',
  source_ip       TEXT        NOT NULL DEFAULT '',
  user_agent      TEXT        NOT NULL DEFAULT '',
  status          TEXT        NOT NULL,
  prompt          TEXT        NOT NULL DEFAULT '',
  raw_response    TEXT        NOT NULL DEFAULT '',
  result_title    TEXT        NOT NULL DEFAULT '',
  result_location TEXT        NOT NULL DEFAULT '',
  result_start    TEXT        NOT NULL DEFAULT '',
  result_end      TEXT        NOT NULL DEFAULT '',
  result_missing  TEXT        NOT NULL DEFAULT '',
  error_message   TEXT        NOT NULL DEFAULT '',
  gemini_ms       BIGINT      NOT NULL DEFAULT 0,
  processing_ms   BIGINT      NOT NULL DEFAULT 0,
  completed_at    TIMESTAMPTZ
);`,
	},
	{
		Name: "create_index_extraction_requests_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_extraction_requests_created_at ON extraction_requests (created_at);`,
	},
	{
		Name: "create_index_extraction_requests_request_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_extraction_requests_request_id ON extraction_requests (request_id);`,
	},
	{
		Name: "create_index_extraction_requests_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_extraction_requests_status ON extraction_requests (status);`,
	},
	{
		Name: "create_index_extraction_requests_session_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_extraction_requests_session_id ON extraction_requests (session_id);`,
	},
}

// EnsureMigrated checks if the 'extraction_requests' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger logrus.FieldLogger, dbHost string) error {
	start := time.Now()
	log := logger.WithFields(logrus.Fields{
		"component": "database",
		"db_host":   dbHost,
	})

	log.WithField("event", "db_migration_check").Info("checking schema")

	var exists bool
	query := "SELECT to_regclass('public.extraction_requests') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.WithFields(logrus.Fields{
			"event":       "db_migration_failed",
			"error":       err.Error(),
			"duration_ms": time.Since(start).Milliseconds(),
		}).Error("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.WithFields(logrus.Fields{
			"event":       "db_migration_skip",
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("schema already exists, skipping migration")
		return nil
	}

	log.WithField("event", "db_migration_start").Info("applying schema")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.WithFields(logrus.Fields{
				"event":            "db_migration_failed",
				"migration_step":   step.Name,
				"error":            err.Error(),
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			}).Error("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.WithFields(logrus.Fields{
			"event":            "db_migration_step",
			"migration_step":   step.Name,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		}).Info("migration step applied")
	}

	log.WithFields(logrus.Fields{
		"event":       "db_migration_success",
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("schema migrated")

	return nil
}
