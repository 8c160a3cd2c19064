package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalWeekday(t *testing.T) {
	cases := map[string]string{
		"Monday":   "Monday",
		"monday":   "Monday",
		" WED ":    "Wednesday",
		"sun":      "Sunday",
		"Saturday": "Saturday",
		"thu":      "Thursday",
	}
	for in, want := range cases {
		got, ok := CanonicalWeekday(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "Mo", "Funday", "1"} {
		_, ok := CanonicalWeekday(bad)
		assert.False(t, ok, bad)
	}
}

func TestWeekdayAbbreviation(t *testing.T) {
	assert.Equal(t, "Mon", WeekdayAbbreviation("Monday"))
	assert.Equal(t, "Sat", WeekdayAbbreviation("Saturday"))
	assert.Equal(t, "Wed", WeekdayAbbreviation("Wed"))
	assert.Equal(t, "", WeekdayAbbreviation(""))
}
