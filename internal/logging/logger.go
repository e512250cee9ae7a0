package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// TimeFormat is the timestamp layout used on console lines.
const TimeFormat = "2006-01-02 15:04:05"

// Config holds logger configuration
type Config struct {
	Level   string
	LogFile string
	NoColor bool
}

// levelRouter sends INFO and below to stdout and WARN and above to stderr,
// so diagnostics never pollute the stream the bot may be piped through.
type levelRouter struct {
	stdout io.Writer
	stderr io.Writer
}

func (r *levelRouter) Write(p []byte) (n int, err error) {
	return r.stderr.Write(p)
}

func (r *levelRouter) WriteLevel(level zerolog.Level, p []byte) (n int, err error) {
	if level <= zerolog.InfoLevel {
		return r.stdout.Write(p)
	}
	return r.stderr.Write(p)
}

// NewLogger creates the launcher's zerolog logger: colored console lines
// routed by level, plus an optional rotating file sink.
func NewLogger(cfg Config) *zerolog.Logger {
	return NewLoggerTo(cfg, os.Stdout, os.Stderr)
}

// NewLoggerTo is NewLogger with explicit console streams (useful for tests).
func NewLoggerTo(cfg Config, stdout, stderr io.Writer) *zerolog.Logger {
	level := parseLevel(cfg.Level)

	router := &levelRouter{
		stdout: consoleWriter(stdout, cfg.NoColor || noColorFor(stdout)),
		stderr: consoleWriter(stderr, cfg.NoColor || noColorFor(stderr)),
	}

	var out zerolog.LevelWriter = zerolog.MultiLevelWriter(router)

	// File logger if path provided
	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0755); err == nil {
			fileWriter := &lumberjack.Logger{
				Filename:   cfg.LogFile,
				MaxSize:    10, // MB
				MaxBackups: 3,
				MaxAge:     28, // days
				Compress:   true,
			}
			out = zerolog.MultiLevelWriter(router, fileWriter)
		}
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &logger
}

// consoleWriter builds a zerolog console writer with the launcher's line
// format: "YYYY-MM-DD HH:MM:SS [LEVEL] message".
func consoleWriter(w io.Writer, noColor bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:         w,
		TimeFormat:  TimeFormat,
		NoColor:     noColor,
		FormatLevel: formatLevel(noColor),
	}
}

// formatLevel renders the full upper-case level tag instead of zerolog's
// three-letter abbreviation.
func formatLevel(noColor bool) zerolog.Formatter {
	return func(i interface{}) string {
		name, _ := i.(string)
		tag := strings.ToUpper(name)
		if tag == "" {
			tag = "???"
		}
		return colorize("["+tag+"]", levelColor(name), noColor)
	}
}

// ANSI foreground codes per level, mirroring zerolog's console palette.
func levelColor(level string) int {
	switch level {
	case "trace", "debug":
		return 35 // magenta
	case "info":
		return 32 // green
	case "warn", "warning":
		return 33 // yellow
	case "error", "fatal", "panic":
		return 31 // red
	default:
		return 0
	}
}

func colorize(s string, c int, noColor bool) string {
	if noColor || c == 0 {
		return s
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", c, s)
}

// noColorFor disables color when the destination is not a terminal or the
// environment opts out.
func noColorFor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return true
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}

// parseLevel converts string level to zerolog.Level
func parseLevel(level string) zerolog.Level {
	switch level {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewTestLogger creates a logger for testing that writes structured events
// to a buffer.
func NewTestLogger(w io.Writer) *zerolog.Logger {
	logger := zerolog.New(w).With().Timestamp().Logger()
	return &logger
}
