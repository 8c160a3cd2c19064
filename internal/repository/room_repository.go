package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/classroom-availability-api/internal/models"
	"github.com/noah-isme/classroom-availability-api/pkg/config"
)

// Every classroom shares the timeslot table of the requested day.
const availableRoomsQuery = `SELECT DISTINCT c.room_number, c.block, c.available
FROM Classrooms c
JOIN TimeSlots ts ON ts.day_of_week IN (?, ?)
WHERE c.block = ?
  AND c.available = TRUE
  AND ts.start_time <= ?
  AND ts.end_time >= ?
ORDER BY c.room_number`

// Only timeslots attached to the classroom itself qualify.
const availableRoomsPerRoomQuery = `SELECT DISTINCT c.room_number, c.block, c.available
FROM Classrooms c
JOIN TimeSlots ts ON ts.day_of_week IN (?, ?) AND ts.room_number = c.room_number
WHERE c.block = ?
  AND c.available = TRUE
  AND ts.start_time <= ?
  AND ts.end_time >= ?
ORDER BY c.room_number`

// RoomRepository answers classroom availability queries.
type RoomRepository struct {
	db    *sqlx.DB
	query string
}

// NewRoomRepository builds a repository using the given match mode
// (config.MatchModeGlobal or config.MatchModePerRoom).
func NewRoomRepository(db *sqlx.DB, matchMode string) *RoomRepository {
	query := availableRoomsQuery
	if matchMode == config.MatchModePerRoom {
		query = availableRoomsPerRoomQuery
	}
	return &RoomRepository{db: db, query: db.Rebind(query)}
}

// FindAvailable returns the classrooms of a block that are flagged available
// and covered by a timeslot of the requested day. Stored days may be full
// names or 3-letter abbreviations. Every value is a bound parameter.
func (r *RoomRepository) FindAvailable(ctx context.Context, q models.AvailabilityQuery) ([]models.Classroom, error) {
	rooms := make([]models.Classroom, 0)
	if err := r.db.SelectContext(ctx, &rooms, r.query, q.DayOfWeek, models.WeekdayAbbreviation(q.DayOfWeek), q.Block, q.StartTime, q.EndTime); err != nil {
		return nil, fmt.Errorf("find available rooms: %w", err)
	}
	return rooms, nil
}

// Ping verifies the database is reachable.
func (r *RoomRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
