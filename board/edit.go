package board

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Field identifies an editable time component that carries a validity flag.
type Field int

const (
	FieldHour Field = iota
	FieldMinute
)

// Edit is one user-level change to a single clock. Each edit kind carries its
// own typed payload; Board.Apply folds it into the collection.
type Edit interface {
	isEdit()
}

// HourEdit replaces the hour text buffer with what the user typed.
type HourEdit struct {
	Text string
}

// MinuteEdit replaces the minute text buffer with what the user typed.
type MinuteEdit struct {
	Text string
}

// DateEdit sets the civil date of the entry's timezone. Construct it via
// ParseDate so a malformed date can never reach the shared instant.
type DateEdit struct {
	Year  int
	Month int
	Day   int
}

// MeridiemEdit switches the clock between AM and PM, reinterpreting the
// current hour buffer as a 12-hour value.
type MeridiemEdit struct {
	PM bool
}

func (HourEdit) isEdit()     {}
func (MinuteEdit) isEdit()   {}
func (DateEdit) isEdit()     {}
func (MeridiemEdit) isEdit() {}

// ParseDate parses yyyy-MM-dd input into a DateEdit. Anything that does not
// split into three in-range numeric parts is rejected.
func ParseDate(raw string) (DateEdit, error) {
	parts := strings.Split(strings.TrimSpace(raw), "-")
	if len(parts) != 3 {
		return DateEdit{}, fmt.Errorf("date %q is not yyyy-MM-dd", raw)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return DateEdit{}, fmt.Errorf("date %q is not yyyy-MM-dd", raw)
		}
		nums[i] = n
	}
	d := DateEdit{Year: nums[0], Month: nums[1], Day: nums[2]}
	if d.Year < 1 || d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > daysIn(d.Year, d.Month) {
		return DateEdit{}, fmt.Errorf("date %q is out of range", raw)
	}
	return d, nil
}

// daysIn returns the number of days in the given month.
func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
