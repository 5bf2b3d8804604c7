package log

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestToLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
	}
	for _, tt := range tests {
		if got := ToLogLevel(tt.input); got != tt.want {
			t.Errorf("ToLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	t.Run("unknown level panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("ToLogLevel with unknown level should panic")
			}
		}()
		ToLogLevel("verbose")
	})
}

func TestTestLogger_CapturesEntries(t *testing.T) {
	logger, buffer := NewTestLogger(LevelDebug)

	logger.Info("Training started", SamplesKey, 100, FeaturesKey, 3)

	var entry map[string]interface{}
	if err := json.Unmarshal(buffer.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", entry["level"])
	}
	if entry["message"] != "Training started" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry[SamplesKey] != float64(100) {
		t.Errorf("%s = %v, want 100", SamplesKey, entry[SamplesKey])
	}
}

func TestTestLogger_LevelFiltering(t *testing.T) {
	logger, buffer := NewTestLogger(LevelWarn)

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")
	logger.Error("kept")

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("captured %d entries, want 2: %q", len(lines), buffer.String())
	}
	if !strings.Contains(lines[0], "WARN") || !strings.Contains(lines[1], "ERROR") {
		t.Errorf("unexpected entries: %q", buffer.String())
	}
}

func TestTestLogger_WithFields(t *testing.T) {
	logger, buffer := NewTestLogger(LevelInfo)

	scoped := logger.With(ModelNameKey, "RidgeRegression")
	scoped.Info("Training completed", IterationsKey, 42)

	var entry map[string]interface{}
	if err := json.Unmarshal(buffer.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry[ModelNameKey] != "RidgeRegression" {
		t.Errorf("%s = %v, want RidgeRegression", ModelNameKey, entry[ModelNameKey])
	}
	if entry[IterationsKey] != float64(42) {
		t.Errorf("%s = %v, want 42", IterationsKey, entry[IterationsKey])
	}
}

func TestSetDefaultLogger(t *testing.T) {
	original := GetLogger()
	defer SetDefaultLogger(original)

	logger, buffer := NewTestLogger(LevelDebug)
	SetDefaultLogger(logger)

	GetLoggerWithName("linear").Info("hello")

	if !strings.Contains(buffer.String(), `"logger":"linear"`) {
		t.Errorf("named logger output missing name field: %q", buffer.String())
	}
}
