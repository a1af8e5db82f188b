package board

import (
	"fmt"
	"time"
)

// UTCOffsetLabel formats the UTC offset in effect at t as GMT±HH:MM, e.g.
// "GMT+05:30". Seasonal offset changes are reflected because the offset is
// taken from the instant itself.
func UTCOffsetLabel(t time.Time) string {
	_, off := t.Zone()
	sign := "+"
	if off < 0 {
		sign = "-"
		off = -off
	}
	return fmt.Sprintf("GMT%s%02d:%02d", sign, off/3600, (off%3600)/60)
}

// RelativeOffsetLabel describes other's current UTC offset relative to
// reference, e.g. "+5h 30m" or "-8h". Zero-valued terms are omitted; two
// clocks at the same offset yield "+0h". The reference entry itself gets no
// label.
func RelativeOffsetLabel(reference, other Entry) string {
	if reference.ID == other.ID {
		return ""
	}
	_, refOff := reference.Time.Zone()
	_, otherOff := other.Time.Zone()
	diff := (otherOff - refOff) / 60

	sign := "+"
	if diff < 0 {
		sign = "-"
		diff = -diff
	}
	hours, minutes := diff/60, diff%60
	switch {
	case hours == 0 && minutes == 0:
		return sign + "0h"
	case minutes == 0:
		return fmt.Sprintf("%s%dh", sign, hours)
	case hours == 0:
		return fmt.Sprintf("%s%dm", sign, minutes)
	default:
		return fmt.Sprintf("%s%dh %dm", sign, hours, minutes)
	}
}
