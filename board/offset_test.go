package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fixedEntry builds an entry pinned to a synthetic zone with the given
// offset, for deterministic label tests.
func fixedEntry(id string, offsetMinutes int) Entry {
	loc := time.FixedZone("fixed", offsetMinutes*60)
	return Entry{
		ID:   id,
		Time: time.Date(2025, 1, 15, 12, 0, 0, 0, loc),
	}
}

func TestUTCOffsetLabel(t *testing.T) {
	cases := []struct {
		offsetMinutes int
		expect        string
	}{
		{330, "GMT+05:30"},
		{-180, "GMT-03:00"},
		{0, "GMT+00:00"},
		{60, "GMT+01:00"},
		{-210, "GMT-03:30"},
		{765, "GMT+12:45"},
	}

	for _, c := range cases {
		e := fixedEntry("x", c.offsetMinutes)
		assert.Equal(t, c.expect, UTCOffsetLabel(e.Time))
	}
}

func TestUTCOffsetLabelFollowsSeasonalOffset(t *testing.T) {
	loc, err := time.LoadLocation("Europe/London")
	assert.NoError(t, err)

	winter := time.Date(2025, 1, 15, 12, 0, 0, 0, loc)
	summer := time.Date(2025, 7, 15, 12, 0, 0, 0, loc)

	assert.Equal(t, "GMT+00:00", UTCOffsetLabel(winter))
	assert.Equal(t, "GMT+01:00", UTCOffsetLabel(summer))
}

func TestRelativeOffsetLabel(t *testing.T) {
	kolkata := fixedEntry("a", 330) // UTC+5:30
	saoPaulo := fixedEntry("b", -180)
	tokyo := fixedEntry("c", 540)
	paris := fixedEntry("d", 60)
	berlin := fixedEntry("e", 60)
	kathmandu := fixedEntry("f", 345)

	// other.offset - reference.offset
	assert.Equal(t, "-8h 30m", RelativeOffsetLabel(kolkata, saoPaulo))
	assert.Equal(t, "+8h 30m", RelativeOffsetLabel(saoPaulo, kolkata))
	assert.Equal(t, "+8h", RelativeOffsetLabel(paris, tokyo))
	assert.Equal(t, "+15m", RelativeOffsetLabel(kolkata, kathmandu))
	assert.Equal(t, "+0h", RelativeOffsetLabel(paris, berlin))
}

func TestRelativeOffsetLabelSameEntry(t *testing.T) {
	e := fixedEntry("a", 120)
	assert.Equal(t, "", RelativeOffsetLabel(e, e))
}
