package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
	// Disabled turns logging off entirely. It is the default.
	Disabled
)

var (
	output io.Writer = os.Stderr
	level            = Disabled
	logger           = zerolog.Nop()
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	case Disabled:
		return "DISABLED"
	default:
		return "TRACE"
	}
}

func toZerologLevel(level int) zerolog.Level {
	switch level {
	case TraceLevel:
		return zerolog.TraceLevel
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	case FatalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.Disabled
	}
}

// SetLevel sets the minimum level of messages emitted by the package logger
func SetLevel(l int) {
	level = l
	rebuild()
}

// SetOutput redirects the package logger. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	output = w
	rebuild()
}

// Level returns the current minimum level of the package logger
func Level() int {
	return level
}

// Logger returns the package logger
func Logger() *zerolog.Logger {
	return &logger
}

func rebuild() {
	if level == Disabled {
		logger = zerolog.Nop()
		return
	}
	logger = zerolog.New(output).Level(toZerologLevel(level)).With().Timestamp().Logger()
}
