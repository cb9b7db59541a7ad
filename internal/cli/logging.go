package cli

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Environment overrides for the diagnostic logger.
const (
	EnvLogLevel   = "MUFMT_LOG_LEVEL"
	EnvLogNoColor = "MUFMT_LOG_NOCOLOR"
)

// newLogger returns a console logger on w. The level comes from level
// unless EnvLogLevel holds a valid one.
func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, ok := parseLevel(level)
	if !ok {
		lvl = zerolog.WarnLevel
	}
	if env, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
		lvl = env
	}
	noColor := false
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		noColor = v
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Str("app", "mufmt").Logger()
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.WarnLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.WarnLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
