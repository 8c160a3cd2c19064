package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/classroom-availability-api/internal/dto"
	"github.com/noah-isme/classroom-availability-api/internal/models"
)

func render(t *testing.T, name string, data interface{}) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, MustTemplates().ExecuteTemplate(&buf, name, data))
	return buf.String()
}

func TestSearchResultsRendersOneCardPerRoom(t *testing.T) {
	out := render(t, PageSearchResults, SearchPage{
		Title: "Classroom Search Results",
		Result: &dto.RoomSearchResult{
			DayOfWeek: "Monday", Block: "A", StartTime: "09:00", EndTime: "10:00",
			Rooms: []models.Classroom{{RoomNumber: "A101"}, {RoomNumber: "A103"}},
		},
	})

	assert.Contains(t, out, "Classroom A101")
	assert.Contains(t, out, "Classroom A103")
	assert.Equal(t, 2, bytes.Count([]byte(out), []byte(`class="classroom-card"`)))
}

func TestSearchEmptyEscapesEcho(t *testing.T) {
	out := render(t, PageSearchEmpty, SearchPage{
		Title: "No Classrooms Available",
		Result: &dto.RoomSearchResult{Request: dto.RoomSearchRequest{
			DayOfWeek: "Monday", Block: "<script>alert(1)</script>", Timeslot: "09:00-10:00",
		}},
	})

	assert.Contains(t, out, "No available classrooms for Monday during 09:00-10:00 in ")
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, "classroom-card\"")
}

func TestMessagePages(t *testing.T) {
	for _, name := range []string{PageBadRequest, PageLoginSuccess, PageLoginFailure} {
		out := render(t, name, MessagePage{Title: "t", Heading: "Heading", Message: "Body"})
		assert.Contains(t, out, "<h1")
		assert.Contains(t, out, "Body")
	}
}
