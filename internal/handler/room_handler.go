package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/classroom-availability-api/internal/dto"
	"github.com/noah-isme/classroom-availability-api/internal/view"
	appErrors "github.com/noah-isme/classroom-availability-api/pkg/errors"
	"github.com/noah-isme/classroom-availability-api/pkg/response"
)

const searchFailedMessage = "An error occurred while searching for classrooms."

type roomSearcher interface {
	Search(ctx context.Context, req dto.RoomSearchRequest) (*dto.RoomSearchResult, error)
}

type roomExporter interface {
	Export(ctx context.Context, req dto.RoomSearchRequest, format string) (*dto.ExportFile, error)
}

// RoomHandler exposes the classroom availability search.
type RoomHandler struct {
	rooms   roomSearcher
	exports roomExporter
}

// NewRoomHandler creates a new handler. exports may be nil when downloads are
// not offered.
func NewRoomHandler(rooms roomSearcher, exports roomExporter) *RoomHandler {
	return &RoomHandler{rooms: rooms, exports: exports}
}

// SearchPage renders the availability search as an HTML page.
func (h *RoomHandler) SearchPage(c *gin.Context) {
	req := bindSearchQuery(c)

	result, err := h.rooms.Search(c.Request.Context(), req)
	if err != nil {
		appErr := appErrors.FromError(err)
		if appErr.Status == http.StatusBadRequest {
			c.HTML(http.StatusBadRequest, view.PageBadRequest, view.MessagePage{
				Title:   "Invalid Search",
				Heading: "Invalid Search",
				Message: appErr.Message,
			})
			return
		}
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, searchFailedMessage)
		return
	}

	if result.Empty() {
		c.HTML(http.StatusOK, view.PageSearchEmpty, view.SearchPage{Title: "No Classrooms Available", Result: result})
		return
	}
	c.HTML(http.StatusOK, view.PageSearchResults, view.SearchPage{Title: "Classroom Search Results", Result: result})
}

// Available godoc
// @Summary Search available classrooms
// @Description Lists classrooms in a block that are free for the whole timeslot on a weekday
// @Tags Rooms
// @Produce json
// @Param dayofweek query string true "Day of week (Monday or Mon)"
// @Param block query string true "Block name"
// @Param timeslot query string true "Interval as HH:MM-HH:MM"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /rooms/available [get]
func (h *RoomHandler) Available(c *gin.Context) {
	req := bindSearchQuery(c)

	result, err := h.rooms.Search(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result, map[string]interface{}{"count": len(result.Rooms)})
}

// Export godoc
// @Summary Download available classrooms
// @Description Renders the availability search as a CSV or PDF sheet
// @Tags Rooms
// @Produce text/csv
// @Produce application/pdf
// @Param dayofweek query string true "Day of week"
// @Param block query string true "Block name"
// @Param timeslot query string true "Interval as HH:MM-HH:MM"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Router /rooms/available/export [get]
func (h *RoomHandler) Export(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.ErrNotFound)
		return
	}
	req := bindSearchQuery(c)

	file, err := h.exports.Export(c.Request.Context(), req, c.DefaultQuery("format", string(dto.ExportFormatCSV)))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Attachment(c, file.Filename, file.ContentType, file.Body)
}

// bindSearchQuery reads the raw parameters. Validation happens in the service
// so both surfaces report the same errors.
func bindSearchQuery(c *gin.Context) dto.RoomSearchRequest {
	return dto.RoomSearchRequest{
		DayOfWeek: c.Query("dayofweek"),
		Block:     c.Query("block"),
		Timeslot:  c.Query("timeslot"),
	}
}
