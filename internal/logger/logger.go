package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger wraps zerolog to provide a simplified API for the framework. All
// methods are nil-safe so components can carry an optional logger without
// guarding every call site.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	base := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{base: base}, nil
}

// Discard returns a logger that drops every entry, useful in tests.
func Discard() *Logger {
	return &Logger{base: zerolog.New(io.Discard).Level(zerolog.Disabled)}
}

// WithControl returns a derived logger that always writes the control id.
func (l *Logger) WithControl(id string) *Logger {
	if l == nil {
		return nil
	}
	derived := Logger{base: l.base.With().Str("control", id).Logger()}
	return &derived
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}

	derived := Logger{base: builder.Logger()}
	return &derived
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// DuplicateCreate records the re-creation of an existing control id. The
// operation itself is a no-op, never an error.
func (l *Logger) DuplicateCreate(controlType, id string) {
	if l == nil {
		return
	}
	l.base.Warn().
		Str("type", controlType).
		Str("control", id).
		Msg("control already exists, create ignored")
}

// MissingAnchor records a control whose trigger had no valid anchor to attach
// to. The control stays registered but inert.
func (l *Logger) MissingAnchor(controlType, id string) {
	if l == nil {
		return
	}
	l.base.Warn().
		Str("type", controlType).
		Str("control", id).
		Msg("missing anchor, control is inert")
}

// Error writes an error log entry including the supplied error context.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
