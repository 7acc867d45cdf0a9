package triangle

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'trigon'
func tracer() tracing.Trace {
	return tracing.Select("trigon")
}

// Level is the severity of a message sent to a Sink.
type Level int

// Severity levels, from chatty to alarming.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Sink receives observations from the solver. Logging is fire-and-forget:
// a sink cannot influence the outcome of a solve.
type Sink interface {
	Log(level Level, msg string)
}

// SinkFunc adapts a function to the Sink interface. A nil SinkFunc drops
// all messages.
type SinkFunc func(level Level, msg string)

// Log calls f(level, msg), if f is not nil.
func (f SinkFunc) Log(level Level, msg string) {
	if f != nil {
		f(level, msg)
	}
}

// Discard is a sink which drops all messages.
var Discard Sink = SinkFunc(nil)

// traceSink forwards messages to the package tracer.
type traceSink struct{}

func (traceSink) Log(level Level, msg string) {
	switch level {
	case LevelTrace, LevelDebug:
		tracer().Debugf("%s", msg)
	case LevelInfo:
		tracer().Infof("%s", msg)
	case LevelWarn:
		tracer().P("level", "warn").Infof("%s", msg)
	default:
		tracer().Errorf("%s", msg)
	}
}

func logf(sink Sink, level Level, format string, args ...interface{}) {
	sink.Log(level, fmt.Sprintf(format, args...))
}
