package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/classroom-availability-api/internal/dto"
	"github.com/noah-isme/classroom-availability-api/internal/models"
	appErrors "github.com/noah-isme/classroom-availability-api/pkg/errors"
)

type roomRepository interface {
	FindAvailable(ctx context.Context, q models.AvailabilityQuery) ([]models.Classroom, error)
}

// RoomServiceConfig tunes the availability search.
type RoomServiceConfig struct {
	QueryTimeout time.Duration
}

// RoomService answers classroom availability searches.
type RoomService struct {
	repo      roomRepository
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	config    RoomServiceConfig
}

// NewRoomService constructs a RoomService instance.
func NewRoomService(repo roomRepository, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService, config RoomServiceConfig) *RoomService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &RoomService{repo: repo, validator: validate, logger: logger, metrics: metrics, config: config}
}

// Search validates the request and returns the available classrooms. An
// empty result is not an error.
func (s *RoomService) Search(ctx context.Context, req dto.RoomSearchRequest) (*dto.RoomSearchResult, error) {
	query, err := s.buildQuery(req)
	if err != nil {
		s.metrics.RecordRoomSearch(OutcomeInvalid, 0)
		return nil, err
	}

	queryCtx, cancel := withQueryTimeout(ctx, s.config.QueryTimeout)
	defer cancel()

	start := time.Now()
	rooms, err := s.repo.FindAvailable(queryCtx, query)
	s.metrics.ObserveDBQuery("find_available_rooms", time.Since(start))
	if err != nil {
		s.logger.Error("error executing availability query",
			zap.String("day_of_week", query.DayOfWeek),
			zap.String("block", query.Block),
			zap.String("start_time", query.StartTime),
			zap.String("end_time", query.EndTime),
			zap.Error(err),
		)
		s.metrics.RecordRoomSearch(OutcomeError, 0)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to search classrooms")
	}

	outcome := OutcomeFound
	if len(rooms) == 0 {
		outcome = OutcomeEmpty
	}
	s.metrics.RecordRoomSearch(outcome, len(rooms))

	return &dto.RoomSearchResult{
		Request:   req,
		DayOfWeek: query.DayOfWeek,
		Block:     query.Block,
		StartTime: query.StartTime,
		EndTime:   query.EndTime,
		Rooms:     rooms,
	}, nil
}

func (s *RoomService) buildQuery(req dto.RoomSearchRequest) (models.AvailabilityQuery, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.AvailabilityQuery{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "dayofweek, block and timeslot are required")
	}

	day, ok := models.CanonicalWeekday(req.DayOfWeek)
	if !ok {
		return models.AvailabilityQuery{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown day of week %q", req.DayOfWeek))
	}

	block := strings.TrimSpace(req.Block)
	if block == "" {
		return models.AvailabilityQuery{}, appErrors.Clone(appErrors.ErrValidation, "block is required")
	}

	startTime, endTime, err := ParseTimeslot(req.Timeslot)
	if err != nil {
		return models.AvailabilityQuery{}, err
	}

	return models.AvailabilityQuery{DayOfWeek: day, Block: block, StartTime: startTime, EndTime: endTime}, nil
}

// ParseTimeslot splits "HH:MM-HH:MM" into normalised start and end times.
// Seconds are accepted and kept only when non-zero.
func ParseTimeslot(raw string) (string, string, error) {
	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return "", "", appErrors.Clone(appErrors.ErrValidation, "timeslot must look like HH:MM-HH:MM")
	}

	start, err := parseClock(parts[0])
	if err != nil {
		return "", "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "timeslot start is not a valid time")
	}
	end, err := parseClock(parts[1])
	if err != nil {
		return "", "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "timeslot end is not a valid time")
	}
	if start.After(end) {
		return "", "", appErrors.Clone(appErrors.ErrValidation, "timeslot start must not be after its end")
	}

	return formatClock(start), formatClock(end), nil
}

func parseClock(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	t, err := time.Parse("15:04", raw)
	if err == nil {
		return t, nil
	}
	return time.Parse("15:04:05", raw)
}

func formatClock(t time.Time) string {
	if t.Second() != 0 {
		return t.Format("15:04:05")
	}
	return t.Format("15:04")
}

func withQueryTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
