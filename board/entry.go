package board

import (
	"time"

	"github.com/google/uuid"

	"github.com/philtim/clockboard/tzdir"
)

// Entry is a single clock on the board.
//
// Time is the shared instant projected into the entry's timezone and is the
// single source of truth. DisplayHour and DisplayMinute are raw text buffers
// bound to the on-screen inputs; while the user is mid-edit they may hold
// text that does not parse, in which case the matching validity flag is false
// and the buffer is disconnected from Time until corrected or blurred.
type Entry struct {
	ID            string
	Timezone      tzdir.Info
	Time          time.Time
	DisplayHour   string
	DisplayMinute string
	HourValid     bool
	MinuteValid   bool
}

// newEntry creates an entry showing instant in tz's civil calendar.
func newEntry(tz tzdir.Info, instant time.Time, use24Hour bool) Entry {
	t := instant.In(tz.Location)
	return Entry{
		ID:            uuid.NewString(),
		Timezone:      tz,
		Time:          t,
		DisplayHour:   formatHour(t, use24Hour),
		DisplayMinute: formatMinute(t),
		HourValid:     true,
		MinuteValid:   true,
	}
}

// IsPM reports whether the entry's instant falls in the second half of its
// civil day.
func (e Entry) IsPM() bool {
	return e.Time.Hour() >= 12
}

// Meridiem returns "AM" or "PM" for the entry's instant.
func (e Entry) Meridiem() string {
	return e.Time.Format("PM")
}

// DisplayDate returns the civil date of the instant as yyyy-MM-dd.
func (e Entry) DisplayDate() string {
	return e.Time.Format("2006-01-02")
}

// reformat rebuilds both display buffers from the instant and marks them
// valid, discarding any in-progress edit text.
func (e Entry) reformat(use24Hour bool) Entry {
	e.DisplayHour = formatHour(e.Time, use24Hour)
	e.DisplayMinute = formatMinute(e.Time)
	e.HourValid = true
	e.MinuteValid = true
	return e
}

// formatHour formats the hour of t per the hour format: "15" in 24-hour
// mode, "03" in 12-hour mode.
func formatHour(t time.Time, use24Hour bool) string {
	if use24Hour {
		return t.Format("15")
	}
	return t.Format("03")
}

// formatMinute formats the minute of t, zero-padded.
func formatMinute(t time.Time) string {
	return t.Format("04")
}
