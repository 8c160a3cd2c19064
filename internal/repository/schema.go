package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// The DDL below is valid for both PostgreSQL and SQLite. Times are stored as
// zero-padded HH:MM text so they compare correctly as strings.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS Classrooms (
    room_number VARCHAR(32) PRIMARY KEY,
    block VARCHAR(64) NOT NULL,
    available BOOLEAN NOT NULL DEFAULT TRUE
)`,
	`CREATE TABLE IF NOT EXISTS TimeSlots (
    day_of_week VARCHAR(16) NOT NULL,
    start_time VARCHAR(8) NOT NULL,
    end_time VARCHAR(8) NOT NULL,
    room_number VARCHAR(32) NULL
)`,
	`CREATE TABLE IF NOT EXISTS Users (
    username VARCHAR(64) NOT NULL,
    password VARCHAR(255) NOT NULL,
    role VARCHAR(32) NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_classrooms_block ON Classrooms (block)`,
	`CREATE INDEX IF NOT EXISTS idx_timeslots_day ON TimeSlots (day_of_week)`,
	`CREATE INDEX IF NOT EXISTS idx_users_username_role ON Users (username, role)`,
}

// EnsureSchema creates the tables queried by the service when missing.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
