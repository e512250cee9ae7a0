package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Run("creates logger with console writer", func(t *testing.T) {
		cfg := Config{
			Level:   "info",
			NoColor: true,
		}

		logger := NewLogger(cfg)
		assert.NotNil(t, logger)
	})

	t.Run("creates logger with file writer", func(t *testing.T) {
		tmpDir := t.TempDir()
		logFile := filepath.Join(tmpDir, "launcher.log")

		var out, errOut bytes.Buffer
		logger := NewLoggerTo(Config{
			Level:   "info",
			LogFile: logFile,
			NoColor: true,
		}, &out, &errOut)

		logger.Info().Msg("test")

		// Verify file was created
		_, err := os.Stat(logFile)
		assert.NoError(t, err)
	})
}

func TestStreamRouting(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewLoggerTo(Config{Level: "info", NoColor: true}, &out, &errOut)

	logger.Info().Msg("starting up")
	logger.Warn().Msg("legacy binary name in use")
	logger.Error().Msg("no binary found")

	assert.Contains(t, out.String(), "starting up")
	assert.NotContains(t, out.String(), "legacy binary name")
	assert.NotContains(t, out.String(), "no binary found")

	assert.Contains(t, errOut.String(), "legacy binary name in use")
	assert.Contains(t, errOut.String(), "no binary found")
	assert.NotContains(t, errOut.String(), "starting up")
}

func TestConsoleLineFormat(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewLoggerTo(Config{Level: "info", NoColor: true}, &out, &errOut)

	logger.Info().Msg("hello")
	logger.Warn().Msg("careful")

	// "YYYY-MM-DD HH:MM:SS [LEVEL] message"
	infoLine := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \[INFO\] hello`)
	assert.Regexp(t, infoLine, out.String())
	assert.Contains(t, errOut.String(), "[WARN] careful")
}

func TestColorDisabledForBuffers(t *testing.T) {
	// A bytes.Buffer is not a terminal, so lines must carry no ANSI codes
	// even when NoColor is false.
	var out, errOut bytes.Buffer
	logger := NewLoggerTo(Config{Level: "info"}, &out, &errOut)

	logger.Error().Msg("plain")

	assert.NotContains(t, errOut.String(), "\x1b[")
}

func TestLevelFiltering(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewLoggerTo(Config{Level: "warn", NoColor: true}, &out, &errOut)

	logger.Info().Msg("suppressed")
	logger.Warn().Msg("visible")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "visible")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debug", "debug"},
		{"info", "info"},
		{"warn", "warn"},
		{"error", "error"},
		{"invalid", "info"}, // defaults to info
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level := parseLevel(tt.input)
			if level.String() != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, level, tt.want)
			}
		})
	}
}

func TestLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTestLogger(&buf)

	logger.Info().Str("path", "/tmp/x/whatsappbot").Msg("resolved")

	output := buf.String()
	if !strings.Contains(output, "resolved") {
		t.Errorf("expected log output to contain 'resolved', got: %s", output)
	}
	if !strings.Contains(output, "/tmp/x/whatsappbot") {
		t.Errorf("expected log output to contain path field, got: %s", output)
	}
}
