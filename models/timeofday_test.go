package models

import (
	"testing"
	"time"
)

func TestFormatTimeOfDay(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         string
	}{
		{0, 0, "00:00"},
		{6, 0, "06:00"},
		{9, 5, "09:05"},
		{12, 30, "12:30"},
		{23, 59, "23:59"},
	}

	for _, tt := range tests {
		in := time.Date(2026, 1, 15, tt.hour, tt.minute, 42, 0, time.Local)
		if got := FormatTimeOfDay(in); got != tt.want {
			t.Errorf("FormatTimeOfDay(%02d:%02d) = %q, want %q", tt.hour, tt.minute, got, tt.want)
		}
	}
}

func TestValidTimeOfDay(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"00:00", true},
		{"06:15", true},
		{"23:59", true},
		{"", false},
		{"9:00", false}, // missing zero padding
		{"09:0", false},
		{"24:00", false},
		{"12:60", false},
		{"12-30", false},
		{"ab:cd", false},
		{"1230", false},
		{" 9:00", false},
	}

	for _, tt := range tests {
		if got := ValidTimeOfDay(tt.in); got != tt.valid {
			t.Errorf("ValidTimeOfDay(%q) = %v, want %v", tt.in, got, tt.valid)
		}
	}
}
