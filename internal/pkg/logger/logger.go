//go:generate mockgen -destination=mock_logger.go -package=${GOPACKAGE} -source=logger.go
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const consoleTimeFormat = "2006-01-02T15:04:05.000Z07:00"

type LoggerInterface interface {
	AddFuncName(name string)
	With(key string, value any) LoggerInterface
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

type Logger struct {
	zl zerolog.Logger
}

func New(level, serviceName, env string, console bool) *Logger {
	zerolog.TimeFieldFormat = consoleTimeFormat
	zerolog.ErrorFieldName = "err"

	var out io.Writer = os.Stdout
	if console {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: consoleTimeFormat}
	}

	zl := zerolog.New(out).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("env", env).
		Logger()

	return &Logger{zl: zl}
}

func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// FromContext returns the logger stored under key. A *Logger is copied, so
// callers may annotate it freely. A missing logger yields a no-op one.
func FromContext(ctx context.Context, key any) LoggerInterface {
	switch l := ctx.Value(key).(type) {
	case *Logger:
		if l != nil {
			cp := *l
			return &cp
		}
	case LoggerInterface:
		return l
	}
	return Nop()
}

func (l *Logger) AddFuncName(name string) {
	l.zl = l.zl.With().Str("func", name).Logger()
}

func (l *Logger) With(key string, value any) LoggerInterface {
	return &Logger{zl: l.zl.With().Interface(key, value).Logger()}
}

func (l *Logger) Debug(msg string) { l.zl.Debug().Msg(msg) }
func (l *Logger) Info(msg string)  { l.zl.Info().Msg(msg) }
func (l *Logger) Warn(msg string)  { l.zl.Warn().Msg(msg) }
func (l *Logger) Error(msg string) { l.zl.Error().Msg(msg) }

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Since is a convenience for latency fields.
func Since(start time.Time) string {
	return time.Since(start).Round(time.Millisecond).String()
}
