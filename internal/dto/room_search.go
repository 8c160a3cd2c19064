package dto

import "github.com/noah-isme/classroom-availability-api/internal/models"

// RoomSearchRequest carries the raw availability search parameters. Values
// are kept verbatim so they can be echoed back to the user.
type RoomSearchRequest struct {
	DayOfWeek string `form:"dayofweek" json:"dayofweek" validate:"required"`
	Block     string `form:"block" json:"block" validate:"required,max=64"`
	Timeslot  string `form:"timeslot" json:"timeslot" validate:"required,max=32"`
}

// RoomSearchResult is the outcome of an availability search. Request keeps
// the raw parameters while the other fields hold the normalised values.
type RoomSearchResult struct {
	Request   RoomSearchRequest  `json:"request"`
	DayOfWeek string             `json:"dayofweek"`
	Block     string             `json:"block"`
	StartTime string             `json:"start_time"`
	EndTime   string             `json:"end_time"`
	Rooms     []models.Classroom `json:"rooms"`
}

// Empty reports whether no classroom matched.
func (r *RoomSearchResult) Empty() bool {
	return r == nil || len(r.Rooms) == 0
}

// ExportFormat names a downloadable rendering of a search result.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportFile is a rendered document ready to be streamed.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}
