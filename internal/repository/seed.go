package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/classroom-availability-api/internal/models"
)

// SeedData is a set of rows loaded into an empty database.
type SeedData struct {
	Classrooms []models.Classroom
	TimeSlots  []models.TimeSlot
	Users      []models.User
}

// Seed inserts the given rows inside a single transaction.
func Seed(ctx context.Context, db *sqlx.DB, data SeedData) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for i := range data.Classrooms {
		const query = `INSERT INTO Classrooms (room_number, block, available) VALUES (:room_number, :block, :available)`
		if _, err := tx.NamedExecContext(ctx, query, &data.Classrooms[i]); err != nil {
			return fmt.Errorf("seed classroom %s: %w", data.Classrooms[i].RoomNumber, err)
		}
	}
	for i := range data.TimeSlots {
		const query = `INSERT INTO TimeSlots (day_of_week, start_time, end_time, room_number) VALUES (:day_of_week, :start_time, :end_time, :room_number)`
		if _, err := tx.NamedExecContext(ctx, query, &data.TimeSlots[i]); err != nil {
			return fmt.Errorf("seed timeslot %s %s: %w", data.TimeSlots[i].DayOfWeek, data.TimeSlots[i].StartTime, err)
		}
	}
	for i := range data.Users {
		const query = `INSERT INTO Users (username, password, role) VALUES (:username, :password, :role)`
		if _, err := tx.NamedExecContext(ctx, query, &data.Users[i]); err != nil {
			return fmt.Errorf("seed user %s: %w", data.Users[i].Username, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}
	return nil
}
