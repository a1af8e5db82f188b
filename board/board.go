// Package board implements the clock board: an ordered collection of clocks
// that all display the same instant, each in its own timezone, while any one
// clock may hold an in-progress keyboard edit that has not yet parsed to a
// valid value.
//
// Every mutating method is a value method returning a new Board. Callers
// replace their copy wholesale, so an observer never sees a collection with
// some entries updated and others not.
package board

import (
	"strconv"
	"strings"
	"time"

	"github.com/philtim/clockboard/tzdir"
)

// Board is the ordered clock collection plus the active hour format. Order is
// insertion order and doubles as display order. Two clocks may share a
// timezone; IDs are unique.
type Board struct {
	Entries   []Entry
	Use24Hour bool
}

// New returns an empty board using the given hour format.
func New(use24Hour bool) Board {
	return Board{Use24Hour: use24Hour}
}

// Add appends a clock for tz. The first clock is seeded from now; every later
// clock anchors to the first clock's instant, so the whole board keeps
// denoting a single point in time.
func (b Board) Add(tz tzdir.Info, now time.Time) Board {
	instant := now
	if len(b.Entries) > 0 {
		instant = b.Entries[0].Time
	}
	out := b.clone()
	out.Entries = append(out.Entries, newEntry(tz, instant, b.Use24Hour))
	return out
}

// Remove drops the entry with the given id. Unknown ids are a no-op.
func (b Board) Remove(id string) Board {
	idx := b.index(id)
	if idx < 0 {
		return b
	}
	out := Board{Use24Hour: b.Use24Hour, Entries: make([]Entry, 0, len(b.Entries)-1)}
	out.Entries = append(out.Entries, b.Entries[:idx]...)
	out.Entries = append(out.Entries, b.Entries[idx+1:]...)
	return out
}

// Get returns the entry with the given id.
func (b Board) Get(id string) (Entry, bool) {
	idx := b.index(id)
	if idx < 0 {
		return Entry{}, false
	}
	return b.Entries[idx], true
}

// Apply folds one edit into the entry with the given id. A date edit, or a
// time edit that leaves both fields valid, moves the shared instant and
// propagates it to every other clock. Invalid text only updates the edited
// entry's buffer and validity flag; the instant and all other clocks stay
// untouched. Unknown ids are a no-op.
func (b Board) Apply(id string, edit Edit) Board {
	idx := b.index(id)
	if idx < 0 {
		return b
	}
	e := b.Entries[idx]

	switch ed := edit.(type) {
	case HourEdit:
		e.DisplayHour = ed.Text
		e.HourValid = ValidInput(FieldHour, ed.Text, b.Use24Hour)
		if e.HourValid {
			h, _ := strconv.Atoi(ed.Text)
			if !b.Use24Hour {
				// A bare "5" keeps whichever meridiem the clock
				// currently shows.
				h %= 12
				if e.Time.Hour() >= 12 {
					h += 12
				}
			}
			e.Time = withClock(e.Time, h, e.Time.Minute())
		}

	case MinuteEdit:
		e.DisplayMinute = ed.Text
		e.MinuteValid = ValidInput(FieldMinute, ed.Text, b.Use24Hour)
		if e.MinuteValid {
			m, _ := strconv.Atoi(ed.Text)
			e.Time = withClock(e.Time, e.Time.Hour(), m)
		}

	case DateEdit:
		e.Time = withDate(e.Time, ed.Year, ed.Month, ed.Day)

	case MeridiemEdit:
		h, err := strconv.Atoi(strings.TrimSpace(e.DisplayHour))
		if err != nil {
			// The hour buffer holds non-numeric text; there is no
			// 12-hour value to reinterpret.
			return b
		}
		h %= 12
		if ed.PM {
			h += 12
		}
		e.Time = withClock(e.Time, h, e.Time.Minute())
		e.DisplayHour = formatHour(e.Time, b.Use24Hour)
	}

	if _, dated := edit.(DateEdit); dated || (e.HourValid && e.MinuteValid) {
		return b.propagate(e)
	}
	out := b.clone()
	out.Entries[idx] = e
	return out
}

// Blur recovers from an abandoned invalid edit: if the named field is
// currently invalid, its buffer is reformatted from the entry's own instant
// and marked valid again. Blurring a valid field changes nothing.
func (b Board) Blur(id string, field Field) Board {
	idx := b.index(id)
	if idx < 0 {
		return b
	}
	e := b.Entries[idx]
	switch field {
	case FieldHour:
		if e.HourValid {
			return b
		}
		e.DisplayHour = formatHour(e.Time, b.Use24Hour)
		e.HourValid = true
	case FieldMinute:
		if e.MinuteValid {
			return b
		}
		e.DisplayMinute = formatMinute(e.Time)
		e.MinuteValid = true
	}
	out := b.clone()
	out.Entries[idx] = e
	return out
}

// Sync re-seeds the whole board from now, each clock staying in its own
// timezone. The live tick uses this until the user's first edit freezes the
// board.
func (b Board) Sync(now time.Time) Board {
	if len(b.Entries) == 0 {
		return b
	}
	first := b.Entries[0]
	first.Time = now.In(first.Timezone.Location)
	first = first.reformat(b.Use24Hour)
	return b.propagate(first)
}

// SetUse24Hour switches the hour format, reformatting every display buffer
// from its instant and discarding any in-progress edit state.
func (b Board) SetUse24Hour(use24Hour bool) Board {
	out := Board{Use24Hour: use24Hour, Entries: make([]Entry, len(b.Entries))}
	for i, e := range b.Entries {
		out.Entries[i] = e.reformat(use24Hour)
	}
	return out
}

// propagate rewrites every entry from updated's instant. The edited entry is
// kept as-is, raw buffers included; every other entry gets the instant
// reprojected into its own timezone, freshly formatted buffers, and validity
// forced true. Propagation is authoritative: stale invalid-edit state on
// non-edited clocks is discarded.
func (b Board) propagate(updated Entry) Board {
	out := Board{Use24Hour: b.Use24Hour, Entries: make([]Entry, len(b.Entries))}
	for i, e := range b.Entries {
		if e.ID == updated.ID {
			out.Entries[i] = updated
			continue
		}
		e.Time = updated.Time.In(e.Timezone.Location)
		out.Entries[i] = e.reformat(b.Use24Hour)
	}
	return out
}

func (b Board) index(id string) int {
	for i, e := range b.Entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (b Board) clone() Board {
	out := Board{Use24Hour: b.Use24Hour, Entries: make([]Entry, len(b.Entries))}
	copy(out.Entries, b.Entries)
	return out
}

// withClock returns t with the wall clock set to hour:minute, keeping the
// civil date, seconds and location.
func withClock(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, t.Second(), t.Nanosecond(), t.Location())
}

// withDate returns t with the civil date replaced, keeping the wall clock
// and location.
func withDate(t time.Time, year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
