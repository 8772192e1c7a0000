package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Field is a single structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// String returns a string-valued field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int returns an int-valued field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 returns a uint64-valued field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 returns a float64-valued field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Duration returns a duration-valued field.
func Duration(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// Stringer returns a field rendered through its String method when the entry
// is written. Values such as large integers are therefore only formatted if
// the entry's level is enabled.
func Stringer(key string, value fmt.Stringer) Field { return Field{Key: key, Value: value} }

// Err returns a field holding err under the "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the logging interface consumed by bigcalc components.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Printf(format string, args ...any)
	Println(args ...any)
}

// ZerologAdapter implements Logger on top of a zerolog.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewDefaultLogger returns a JSON logger writing to stderr at info level.
func NewDefaultLogger() *ZerologAdapter {
	return NewZerologAdapter(zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel))
}

// NewLogger returns a JSON logger writing to w, tagging every entry with the
// given component name.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	return NewZerologAdapter(zerolog.New(w).With().Timestamp().Str("component", component).Logger())
}

// NewConsoleLogger returns a human-readable logger for interactive use.
// Debug entries are only emitted when verbose is set; quiet raises the level
// to errors only.
func NewConsoleLogger(w io.Writer, component string, verbose, quiet bool) *ZerologAdapter {
	level := zerolog.InfoLevel
	switch {
	case quiet:
		level = zerolog.ErrorLevel
	case verbose:
		level = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	return NewZerologAdapter(zerolog.New(cw).With().Timestamp().Str("component", component).Logger().Level(level))
}

// Nop returns a Logger that discards everything.
func Nop() *ZerologAdapter {
	return NewZerologAdapter(zerolog.Nop())
}

// With returns a child logger carrying the given fields on every entry.
func (l *ZerologAdapter) With(fields ...Field) *ZerologAdapter {
	ctx := l.logger.With()
	for _, f := range fields {
		ctx = ctx.Interface(f.Key, f.Value)
	}
	return &ZerologAdapter{logger: ctx.Logger()}
}

// Debug logs at debug level.
func (l *ZerologAdapter) Debug(msg string, fields ...Field) {
	applyFields(l.logger.Debug(), fields).Msg(msg)
}

// Info logs at info level.
func (l *ZerologAdapter) Info(msg string, fields ...Field) {
	applyFields(l.logger.Info(), fields).Msg(msg)
}

// Warn logs at warn level.
func (l *ZerologAdapter) Warn(msg string, fields ...Field) {
	applyFields(l.logger.Warn(), fields).Msg(msg)
}

// Error logs at error level with err attached.
func (l *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	applyFields(l.logger.Error().Err(err), fields).Msg(msg)
}

// Printf logs a formatted message at info level.
func (l *ZerologAdapter) Printf(format string, args ...any) {
	l.logger.Info().Msgf(format, args...)
}

// Println logs its arguments separated by spaces at info level.
func (l *ZerologAdapter) Println(args ...any) {
	l.logger.Info().Msg(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

func applyFields(e *zerolog.Event, fields []Field) *zerolog.Event {
	if e == nil {
		return e
	}
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			e = e.Str(f.Key, v)
		case int:
			e = e.Int(f.Key, v)
		case int64:
			e = e.Int64(f.Key, v)
		case uint64:
			e = e.Uint64(f.Key, v)
		case float64:
			e = e.Float64(f.Key, v)
		case bool:
			e = e.Bool(f.Key, v)
		case time.Duration:
			e = e.Dur(f.Key, v)
		case error:
			e = e.AnErr(f.Key, v)
		case fmt.Stringer:
			e = e.Stringer(f.Key, v)
		default:
			e = e.Interface(f.Key, v)
		}
	}
	return e
}

// StdLoggerAdapter implements Logger on a standard library *log.Logger,
// rendering fields as key=value pairs after a level tag.
type StdLoggerAdapter struct {
	logger *log.Logger
}

// NewStdLoggerAdapter wraps logger.
func NewStdLoggerAdapter(logger *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: logger}
}

func (l *StdLoggerAdapter) Debug(msg string, fields ...Field) { l.write("DEBUG", msg, fields) }
func (l *StdLoggerAdapter) Info(msg string, fields ...Field)  { l.write("INFO", msg, fields) }
func (l *StdLoggerAdapter) Warn(msg string, fields ...Field)  { l.write("WARN", msg, fields) }

func (l *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	l.write("ERROR", msg, append([]Field{Err(err)}, fields...))
}

func (l *StdLoggerAdapter) Printf(format string, args ...any) { l.logger.Printf(format, args...) }
func (l *StdLoggerAdapter) Println(args ...any)               { l.logger.Println(args...) }

func (l *StdLoggerAdapter) write(level, msg string, fields []Field) {
	var sb strings.Builder
	sb.WriteString("[" + level + "] " + msg)
	for _, f := range fields {
		fmt.Fprintf(&sb, " %s=%v", f.Key, f.Value)
	}
	l.logger.Println(sb.String())
}
