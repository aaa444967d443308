package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetLevelGatesExistingLoggers(t *testing.T) {
	defer SetLevel("info")

	// A module logger captured before the level switch
	var buf bytes.Buffer
	lg := GetLogger("gate").Output(&buf)

	SetLevel("error")
	lg.Info().Msg("suppressed")
	if buf.Len() != 0 {
		t.Errorf("info line emitted at error level: %q", buf.String())
	}

	SetLevel("debug")
	lg.Debug().Msg("emitted")
	if !strings.Contains(buf.String(), "emitted") {
		t.Errorf("debug line missing at debug level: %q", buf.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.in); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
