package board

import (
	"regexp"
	"strconv"
)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// ValidInput reports whether raw text is an acceptable value for a time
// field. Only bare decimal digits are accepted: no sign, no decimal point,
// no surrounding whitespace, no empty string. The hour range depends on the
// active hour format (0-23 in 24-hour mode, 1-12 in 12-hour mode); minutes
// are 0-59 regardless.
func ValidInput(field Field, text string, use24Hour bool) bool {
	if !digitsOnly.MatchString(text) {
		return false
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		// A digit string too long for int is out of range anyway.
		return false
	}
	switch field {
	case FieldHour:
		if use24Hour {
			return n <= 23
		}
		return n >= 1 && n <= 12
	case FieldMinute:
		return n <= 59
	}
	return false
}
