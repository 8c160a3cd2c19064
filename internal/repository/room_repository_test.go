package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/classroom-availability-api/internal/models"
	"github.com/noah-isme/classroom-availability-api/pkg/config"
)

func TestRoomRepositoryFindAvailable(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRoomRepository(db, config.MatchModeGlobal)

	rows := sqlmock.NewRows([]string{"room_number", "block", "available"}).
		AddRow("A101", "A", true).
		AddRow("A102", "A", true)
	mock.ExpectQuery(regexp.QuoteMeta("JOIN TimeSlots ts ON ts.day_of_week IN (?, ?)\nWHERE c.block = ?")).
		WithArgs("Monday", "Mon", "A", "09:00", "10:00").
		WillReturnRows(rows)

	rooms, err := repo.FindAvailable(context.Background(), models.AvailabilityQuery{
		DayOfWeek: "Monday", Block: "A", StartTime: "09:00", EndTime: "10:00",
	})
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "A101", rooms[0].RoomNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Hostile input must reach the driver as bound arguments, never as SQL text.
func TestRoomRepositoryBindsEveryParameter(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRoomRepository(db, config.MatchModeGlobal)

	injection := "A' OR '1'='1"
	mock.ExpectQuery(`c\.block = \?\s+AND c\.available = TRUE\s+AND ts\.start_time <= \?\s+AND ts\.end_time >= \?`).
		WithArgs("Monday", "Mon", injection, "09:00", "10:00").
		WillReturnRows(sqlmock.NewRows([]string{"room_number", "block", "available"}))

	rooms, err := repo.FindAvailable(context.Background(), models.AvailabilityQuery{
		DayOfWeek: "Monday", Block: injection, StartTime: "09:00", EndTime: "10:00",
	})
	require.NoError(t, err)
	assert.Empty(t, rooms)
	assert.NotNil(t, rooms)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepositoryPerRoomMode(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRoomRepository(db, config.MatchModePerRoom)

	mock.ExpectQuery(regexp.QuoteMeta("ts.room_number = c.room_number")).
		WithArgs("Friday", "Fri", "B", "13:00", "14:00").
		WillReturnRows(sqlmock.NewRows([]string{"room_number", "block", "available"}).AddRow("B201", "B", true))

	rooms, err := repo.FindAvailable(context.Background(), models.AvailabilityQuery{
		DayOfWeek: "Friday", Block: "B", StartTime: "13:00", EndTime: "14:00",
	})
	require.NoError(t, err)
	assert.Len(t, rooms, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepositoryQueryError(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRoomRepository(db, config.MatchModeGlobal)

	mock.ExpectQuery("SELECT DISTINCT c.room_number").WillReturnError(errors.New("connection reset"))

	_, err := repo.FindAvailable(context.Background(), models.AvailabilityQuery{DayOfWeek: "Monday", Block: "A", StartTime: "09:00", EndTime: "10:00"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "find available rooms")
}
