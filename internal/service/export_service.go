package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/classroom-availability-api/internal/dto"
	appErrors "github.com/noah-isme/classroom-availability-api/pkg/errors"
	"github.com/noah-isme/classroom-availability-api/pkg/export"
)

type roomSearcher interface {
	Search(ctx context.Context, req dto.RoomSearchRequest) (*dto.RoomSearchResult, error)
}

type documentRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
	ContentType() string
	Extension() string
}

var exportHeaders = []string{"Room", "Block", "Day", "Timeslot"}

// ExportService renders availability search results as downloadable sheets.
type ExportService struct {
	rooms     roomSearcher
	renderers map[dto.ExportFormat]documentRenderer
	logger    *zap.Logger
}

// NewExportService wires the CSV and PDF renderers. Nil renderers fall back to
// the defaults from pkg/export.
func NewExportService(rooms roomSearcher, logger *zap.Logger, csv documentRenderer, pdf documentRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		rooms: rooms,
		renderers: map[dto.ExportFormat]documentRenderer{
			dto.ExportFormatCSV: csv,
			dto.ExportFormatPDF: pdf,
		},
		logger: logger,
	}
}

// Export runs the search and renders it in the requested format.
func (s *ExportService) Export(ctx context.Context, req dto.RoomSearchRequest, format string) (*dto.ExportFile, error) {
	renderer, ok := s.renderers[dto.ExportFormat(strings.ToLower(strings.TrimSpace(format)))]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}

	result, err := s.rooms.Search(ctx, req)
	if err != nil {
		return nil, err
	}

	dataset := buildAvailabilityDataset(result)
	title := fmt.Sprintf("Available Classrooms - %s %s-%s, Block %s", result.DayOfWeek, result.StartTime, result.EndTime, result.Block)
	body, err := renderer.Render(dataset, title)
	if err != nil {
		s.logger.Error("failed to render availability export", zap.String("format", renderer.Extension()), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	return &dto.ExportFile{
		Filename:    exportFilename(result, renderer.Extension()),
		ContentType: renderer.ContentType(),
		Body:        body,
	}, nil
}

func buildAvailabilityDataset(result *dto.RoomSearchResult) export.Dataset {
	rows := make([]map[string]string, 0, len(result.Rooms))
	timeslot := result.StartTime + "-" + result.EndTime
	for _, room := range result.Rooms {
		rows = append(rows, map[string]string{
			"Room":     room.RoomNumber,
			"Block":    room.Block,
			"Day":      result.DayOfWeek,
			"Timeslot": timeslot,
		})
	}
	return export.Dataset{Headers: exportHeaders, Rows: rows}
}

func exportFilename(result *dto.RoomSearchResult, ext string) string {
	name := strings.Join([]string{"available-rooms", result.DayOfWeek, result.Block, result.StartTime, result.EndTime}, "-")
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return -1
		}
	}, name)
	return name + "." + ext
}
