package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/classroom-availability-api/internal/dto"
	"github.com/noah-isme/classroom-availability-api/internal/models"
	appErrors "github.com/noah-isme/classroom-availability-api/pkg/errors"
)

type mockRoomRepo struct {
	rooms     []models.Classroom
	err       error
	lastQuery models.AvailabilityQuery
	called    bool
	deadline  bool
}

func (m *mockRoomRepo) FindAvailable(ctx context.Context, q models.AvailabilityQuery) ([]models.Classroom, error) {
	m.called = true
	m.lastQuery = q
	_, m.deadline = ctx.Deadline()
	if m.err != nil {
		return nil, m.err
	}
	return m.rooms, nil
}

func newRoomService(repo *mockRoomRepo) *RoomService {
	return NewRoomService(repo, validator.New(), zap.NewNop(), NewMetricsService(), RoomServiceConfig{QueryTimeout: time.Second})
}

func TestRoomServiceSearchFound(t *testing.T) {
	repo := &mockRoomRepo{rooms: []models.Classroom{{RoomNumber: "A101", Block: "A", Available: true}}}
	svc := newRoomService(repo)

	res, err := svc.Search(context.Background(), dto.RoomSearchRequest{DayOfWeek: "Monday", Block: "A", Timeslot: "09:00-10:00"})
	require.NoError(t, err)
	require.Len(t, res.Rooms, 1)
	assert.Equal(t, "A101", res.Rooms[0].RoomNumber)
	assert.Equal(t, models.AvailabilityQuery{DayOfWeek: "Monday", Block: "A", StartTime: "09:00", EndTime: "10:00"}, repo.lastQuery)
	assert.True(t, repo.deadline)
}

func TestRoomServiceSearchNormalisesInput(t *testing.T) {
	repo := &mockRoomRepo{}
	svc := newRoomService(repo)

	res, err := svc.Search(context.Background(), dto.RoomSearchRequest{DayOfWeek: "tue", Block: " B ", Timeslot: "9:00 - 10:30"})
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.Equal(t, "Tuesday", repo.lastQuery.DayOfWeek)
	assert.Equal(t, "B", repo.lastQuery.Block)
	assert.Equal(t, "09:00", repo.lastQuery.StartTime)
	assert.Equal(t, "10:30", repo.lastQuery.EndTime)
	assert.Equal(t, "9:00 - 10:30", res.Request.Timeslot)
}

func TestRoomServiceSearchRejectsMalformedInput(t *testing.T) {
	cases := map[string]dto.RoomSearchRequest{
		"missing timeslot":  {DayOfWeek: "Monday", Block: "A"},
		"no separator":      {DayOfWeek: "Monday", Block: "A", Timeslot: "0900"},
		"two separators":    {DayOfWeek: "Monday", Block: "A", Timeslot: "09:00-10:00-11:00"},
		"not a time":        {DayOfWeek: "Monday", Block: "A", Timeslot: "morning-noon"},
		"reversed interval": {DayOfWeek: "Monday", Block: "A", Timeslot: "11:00-10:00"},
		"unknown day":       {DayOfWeek: "Someday", Block: "A", Timeslot: "09:00-10:00"},
		"blank block":       {DayOfWeek: "Monday", Block: "   ", Timeslot: "09:00-10:00"},
		"missing day":       {Block: "A", Timeslot: "09:00-10:00"},
		"hour out of range": {DayOfWeek: "Monday", Block: "A", Timeslot: "09:00-25:00"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &mockRoomRepo{}
			svc := newRoomService(repo)

			_, err := svc.Search(context.Background(), req)
			require.Error(t, err)
			appErr := appErrors.FromError(err)
			assert.Equal(t, http.StatusBadRequest, appErr.Status)
			assert.False(t, repo.called)
		})
	}
}

func TestRoomServiceSearchRepositoryError(t *testing.T) {
	repo := &mockRoomRepo{err: errors.New("connection refused")}
	svc := newRoomService(repo)

	_, err := svc.Search(context.Background(), dto.RoomSearchRequest{DayOfWeek: "Monday", Block: "A", Timeslot: "09:00-10:00"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErr.Code)
	assert.NotContains(t, appErr.Message, "connection refused")
}

func TestParseTimeslot(t *testing.T) {
	start, end, err := ParseTimeslot("08:15:30-12:00:00")
	require.NoError(t, err)
	assert.Equal(t, "08:15:30", start)
	assert.Equal(t, "12:00", end)

	start, end, err = ParseTimeslot("10:00-10:00")
	require.NoError(t, err)
	assert.Equal(t, start, end)
}
