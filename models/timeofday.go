package models

import (
	"fmt"
	"time"
)

// FormatTimeOfDay renders t as a zero-padded "HH:MM" string, the format
// reminder matching compares against.
func FormatTimeOfDay(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// ValidTimeOfDay reports whether s is a well-formed zero-padded "HH:MM"
// string. Malformed values are not errors anywhere in the system; they
// simply never match the clock.
func ValidTimeOfDay(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return hh >= 0 && hh <= 23 && mm >= 0 && mm <= 59
}
