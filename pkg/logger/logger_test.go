package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		logFunc func(Logger, string)
		want    bool
	}{
		{"debug logged at debug level", LevelDebug, func(l Logger, m string) { l.Debug(m) }, true},
		{"debug suppressed at info level", LevelInfo, func(l Logger, m string) { l.Debug(m) }, false},
		{"info logged at info level", LevelInfo, func(l Logger, m string) { l.Info(m) }, true},
		{"warn suppressed at error level", LevelError, func(l Logger, m string) { l.Warn(m) }, false},
		{"error logged at error level", LevelError, func(l Logger, m string) { l.Error(m) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := NewLogger(tt.level, buf)

			tt.logFunc(log, "test message")

			if got := strings.Contains(buf.String(), "test message"); got != tt.want {
				t.Errorf("message in output = %v, want %v (output: %s)", got, tt.want, buf.String())
			}
		})
	}
}

func TestLogger_Fields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewLogger(LevelInfo, buf)

	log.Info("analyzing", F("path", "/tmp/project"), F("files", 12))

	output := buf.String()
	if !strings.Contains(output, "path=/tmp/project") {
		t.Errorf("expected path field in output, got: %s", output)
	}
	if !strings.Contains(output, "files=12") {
		t.Errorf("expected files field in output, got: %s", output)
	}
}

func TestLogger_WithFields(t *testing.T) {
	buf := &bytes.Buffer{}
	base := NewLogger(LevelInfo, buf)

	child := base.WithFields(F("stage", "deps"))
	child.Info("done", F("count", 3))

	output := buf.String()
	for _, field := range []string{"stage=deps", "count=3"} {
		if !strings.Contains(output, field) {
			t.Errorf("expected %s in output, got: %s", field, output)
		}
	}
}

func TestLogger_SilentMode(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewLogger(LevelSilent, buf)

	log.Debug("d")
	log.Info("i")
	log.Warn("w")
	log.Error("e")

	if buf.Len() > 0 {
		t.Errorf("expected no output in silent mode, got: %s", buf.String())
	}
}

func TestLogger_SetLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewLogger(LevelError, buf)

	log.Info("quiet")
	if buf.Len() > 0 {
		t.Errorf("expected no output at error level for info, got: %s", buf.String())
	}

	log.SetLevel(LevelInfo)
	log.Info("loud")
	if buf.Len() == 0 {
		t.Error("expected output after lowering the level")
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelSilent, "SILENT"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level.String() = %v, want %v", got, tt.want)
		}
	}
}

func TestSetDefault(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	buf := &bytes.Buffer{}
	SetDefault(NewLogger(LevelInfo, buf))

	Info("via package function")
	if !strings.Contains(buf.String(), "via package function") {
		t.Errorf("package-level Info did not reach the default logger: %s", buf.String())
	}
}
