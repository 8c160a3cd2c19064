package models

// Classroom is a bookable room. Available is a static flag maintained by
// facilities and is not derived from timeslots.
type Classroom struct {
	RoomNumber string `db:"room_number" json:"room_number"`
	Block      string `db:"block" json:"block"`
	Available  bool   `db:"available" json:"available"`
}

// TimeSlot is a period on a weekday during which rooms can be used.
// RoomNumber is only consulted when rooms are matched to their own slots.
type TimeSlot struct {
	DayOfWeek  string  `db:"day_of_week" json:"day_of_week"`
	StartTime  string  `db:"start_time" json:"start_time"`
	EndTime    string  `db:"end_time" json:"end_time"`
	RoomNumber *string `db:"room_number" json:"room_number,omitempty"`
}

// AvailabilityQuery is a normalised availability search.
type AvailabilityQuery struct {
	DayOfWeek string
	Block     string
	StartTime string
	EndTime   string
}
