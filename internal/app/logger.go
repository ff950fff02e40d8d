package app

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// ConsoleLogger writes human-readable lines through zerolog.
type ConsoleLogger struct{ log zerolog.Logger }

// NewConsoleLogger logs to w. Without debug, per-frame render chatter
// (component "render") is dropped.
func NewConsoleLogger(w io.Writer, debug bool) ConsoleLogger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: true}
	return ConsoleLogger{log: zerolog.New(out).Level(level).With().Timestamp().Logger()}
}

func (l ConsoleLogger) Infof(component string, format string, args ...interface{}) {
	ev := l.log.Info()
	if component == "render" {
		ev = l.log.Debug()
	}
	ev.Str("component", component).Msg(fmt.Sprintf(format, args...))
}

func (l ConsoleLogger) Errorf(component string, format string, args ...interface{}) {
	l.log.Error().Str("component", component).Msg(fmt.Sprintf(format, args...))
}
