package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
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
		Name: "create_table_measurements",
		SQL: `CREATE TABLE IF NOT EXISTS measurements (
  id                        UUID             PRIMARY KEY DEFAULT uuid_generate_v4(),
  recorded_at               TIMESTAMPTZ      NOT NULL,
  age                       INT              NOT NULL CHECK (age BETWEEN 1 AND 150),
  gender                    TEXT             NOT NULL DEFAULT '',
  height_cm                 DOUBLE PRECISION NOT NULL DEFAULT 0,
  weight_kg                 DOUBLE PRECISION NOT NULL DEFAULT 0,
  bmi                       DOUBLE PRECISION NOT NULL,
  waist_cm                  DOUBLE PRECISION NOT NULL,
  systolic_bp               DOUBLE PRECISION NOT NULL,
  diastolic_bp              DOUBLE PRECISION NOT NULL,
  resting_heart_rate        DOUBLE PRECISION NOT NULL DEFAULT 0,
  glucose_fasting           DOUBLE PRECISION NOT NULL,
  hba1c                     DOUBLE PRECISION NOT NULL DEFAULT 0,
  total_cholesterol         DOUBLE PRECISION NOT NULL,
  hdl_cholesterol           DOUBLE PRECISION NOT NULL,
  ldl_cholesterol           DOUBLE PRECISION NOT NULL,
  triglycerides             DOUBLE PRECISION NOT NULL,
  exercise_minutes_per_week DOUBLE PRECISION NOT NULL,
  sleep_hours               DOUBLE PRECISION NOT NULL,
  stress_level              INT              NOT NULL CHECK (stress_level BETWEEN 1 AND 10),
  smoking_status            INT              NOT NULL DEFAULT 0,
  alcohol_consumption       INT              NOT NULL DEFAULT 0,
  created_at                TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_measurements_recorded_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_measurements_recorded_at ON measurements (recorded_at);`,
	},
	{
		Name: "create_table_goals",
		SQL: `CREATE TABLE IF NOT EXISTS goals (
  id               UUID             PRIMARY KEY DEFAULT uuid_generate_v4(),
  type             TEXT             NOT NULL,
  metric           TEXT             NOT NULL,
  start_value      DOUBLE PRECISION NOT NULL DEFAULT 0,
  target_value     DOUBLE PRECISION NOT NULL DEFAULT 0,
  target_systolic  DOUBLE PRECISION NOT NULL DEFAULT 0,
  target_diastolic DOUBLE PRECISION NOT NULL DEFAULT 0,
  target_date      TIMESTAMPTZ      NOT NULL,
  status           TEXT             NOT NULL DEFAULT 'active',
  created_at       TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_goals_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_goals_status ON goals (status);`,
	},
	{
		Name: "create_table_interventions",
		SQL: `CREATE TABLE IF NOT EXISTS interventions (
  id               UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  title            TEXT        NOT NULL,
  category         TEXT        NOT NULL,
  priority         TEXT        NOT NULL,
  duration         TEXT        NOT NULL DEFAULT 'Ongoing',
  start_date       TIMESTAMPTZ NOT NULL,
  status           TEXT        NOT NULL DEFAULT 'active',
  overall_progress INT         NOT NULL DEFAULT 0 CHECK (overall_progress BETWEEN 0 AND 100),
  notes            TEXT        NOT NULL DEFAULT '',
  weekly_goals     JSONB       NOT NULL DEFAULT '[]',
  updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_interventions_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_interventions_status ON interventions (status);`,
	},
}

// EnsureMigrated checks if the 'measurements' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.measurements') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
