package model

import (
	"fmt"
	"strings"
	"time"

	"aula/shared/constant"
	"aula/shared/model"
)

const (
	TableName  = "room_schedules"
	EntityName = "schedule"

	FieldID        = "id"
	FieldCourseID  = "course_id"
	FieldRoomID    = "room_id"
	FieldDayOfWeek = "day_of_week"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
	FieldRecurring = "recurring"
)

// RoomSchedule is one recurring weekly booking of a room for a course.
// StartTime and EndTime are zero-padded 24-hour "HH:MM" wall-clock strings,
// so lexicographic order matches chronological order.
type RoomSchedule struct {
	ID        string `db:"id"`
	CourseID  string `db:"course_id"`
	RoomID    string `db:"room_id"`
	DayOfWeek string `db:"day_of_week"`
	StartTime string `db:"start_time"`
	EndTime   string `db:"end_time"`
	Recurring bool   `db:"recurring"`
	model.Metadata
}

const (
	DayMonday    = "monday"
	DayTuesday   = "tuesday"
	DayWednesday = "wednesday"
	DayThursday  = "thursday"
	DayFriday    = "friday"
	DaySaturday  = "saturday"
	DaySunday    = "sunday"
)

var dayOrder = map[string]int{
	DayMonday:    0,
	DayTuesday:   1,
	DayWednesday: 2,
	DayThursday:  3,
	DayFriday:    4,
	DaySaturday:  5,
	DaySunday:    6,
}

// DayIndex returns the display position of a day token, monday first.
// Unknown tokens sort last.
func DayIndex(day string) int {
	if idx, ok := dayOrder[strings.ToLower(day)]; ok {
		return idx
	}

	return len(dayOrder)
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching boundaries do not overlap, so
// back-to-back bookings are allowed.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}

// Slot is one candidate (start, end) pair from the timetable catalog.
// Slots are not persisted.
type Slot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// DefaultSlots returns the historical catalog of five 90-minute daily
// slots, in the order the allocator tries them.
func DefaultSlots() []Slot {
	return []Slot{
		{StartTime: "09:00", EndTime: "10:30"},
		{StartTime: "10:45", EndTime: "12:15"},
		{StartTime: "13:00", EndTime: "14:30"},
		{StartTime: "14:45", EndTime: "16:15"},
		{StartTime: "16:30", EndTime: "18:00"},
	}
}

// ParseSlots reads a configured catalog of "HH:MM-HH:MM" pairs,
// preserving their order.
func ParseSlots(raw []string) ([]Slot, error) {
	slots := make([]Slot, 0, len(raw))

	for _, entry := range raw {
		start, end, ok := strings.Cut(strings.TrimSpace(entry), "-")
		if !ok {
			return nil, fmt.Errorf("invalid slot %q: expected HH:MM-HH:MM", entry)
		}

		if len(start) != 5 || len(end) != 5 || start >= end {
			return nil, fmt.Errorf("invalid slot %q: expected zero-padded HH:MM-HH:MM with start before end", entry)
		}

		for _, bound := range []string{start, end} {
			if _, err := time.Parse(constant.TimeFormat, bound); err != nil {
				return nil, fmt.Errorf("invalid slot %q: %w", entry, err)
			}
		}

		slots = append(slots, Slot{StartTime: start, EndTime: end})
	}

	return slots, nil
}
