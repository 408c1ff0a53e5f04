package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf)

	if logger.Level() != LevelInfo {
		t.Errorf("expected default level info, got %v", logger.Level())
	}

	if logger.format != FormatJSON {
		t.Errorf("expected default format json, got %v", logger.format)
	}

	if logger.caller {
		t.Error("expected caller disabled by default")
	}
}

func TestLogger_WithLevel_FiltersMessages(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelError))

	logger.Debug("debug message")
	logger.Log(t.Context(), LevelWarn, "warn message")

	if buf.Len() > 0 {
		t.Errorf("message logged below error level: %s", buf.String())
	}

	logger.Error("error message")

	if !strings.Contains(buf.String(), "error message") {
		t.Error("error message not logged at error level")
	}
}

func TestLogger_Trace_RendersLevelName(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelTrace), WithTimeLayout("none"))

	logger.Trace("attempt", slog.Int("offset", 3))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid JSON output %q: %v", buf.String(), err)
	}

	if rec["level"] != "TRACE" {
		t.Errorf("expected level TRACE, got %v", rec["level"])
	}

	if _, ok := rec["time"]; ok {
		t.Error("expected no time field with layout none")
	}

	if rec["offset"] != float64(3) {
		t.Errorf("expected offset 3, got %v", rec["offset"])
	}
}

func TestLogger_Enabled(t *testing.T) {
	logger := Make(nil, WithLevel(LevelDebug))

	if logger.Enabled(t.Context(), LevelTrace) {
		t.Error("trace enabled at debug level")
	}

	if !logger.Enabled(t.Context(), LevelDebug) {
		t.Error("debug disabled at debug level")
	}

	var zero Logger
	if zero.Enabled(t.Context(), LevelError) {
		t.Error("zero logger reports enabled")
	}
}

func TestLogger_Pretty_TextOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithFormat(FormatText),
		WithPretty(true),
		WithTimeLayout("none"),
	).With(slog.String("parser", "literal"))

	logger.Log(t.Context(), LevelWarn, "miss", slog.Bool("ok", false), slog.Int64("start", 7))

	out := buf.String()
	for _, want := range []string{"WARN", "miss", "parser=", "literal", "ok=", "false", "start=", "7"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got: %s", want, out)
		}
	}
}

func TestLogger_Wrap_OverridesBase(t *testing.T) {
	var first, second bytes.Buffer

	base := Make(&first, WithLevel(LevelWarn))
	wrapped := base.Wrap(WithOutput(&second), WithLevel(LevelDebug))

	wrapped.Debug("wrapped")
	base.Debug("base")

	if first.Len() != 0 {
		t.Errorf("base logger wrote below its level: %s", first.String())
	}

	if !strings.Contains(second.String(), "wrapped") {
		t.Errorf("wrapped logger did not write: %s", second.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if got := ParseFormat(" Text "); got != FormatText {
		t.Errorf("expected text, got %v", got)
	}

	if got := ParseFormat("xml"); got != DefaultFormat {
		t.Errorf("expected default format, got %v", got)
	}
}

func TestLogger_Caller_ReportsCallSite(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithCaller(true))

	logger.Debug("hidden")
	logger.Error("visible")
	logger.Log(t.Context(), LevelError, "direct")

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if !strings.Contains(line, "log_test.go") {
			t.Errorf("expected caller in log_test.go, got: %s", line)
		}
	}
}
