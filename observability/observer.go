// Package observability carries structured events out of the shell and the
// module loader. Level values follow the OpenTelemetry SeverityNumber ranges
// so events can be forwarded to a collector unchanged.
package observability

import (
	"context"
	"log/slog"
	"time"
)

// Level is event severity in OTel SeverityNumber units.
type Level int

const (
	LevelDebug   Level = 5  // OTel DEBUG (5-8)
	LevelInfo    Level = 9  // OTel INFO (9-12)
	LevelWarning Level = 13 // OTel WARN (13-16)
	LevelError   Level = 17 // OTel ERROR (17-20)
)

// String returns the OTel severity text for the level.
func (l Level) String() string {
	switch {
	case l <= 4:
		return "TRACE"
	case l <= 8:
		return "DEBUG"
	case l <= 12:
		return "INFO"
	case l <= 16:
		return "WARN"
	case l <= 20:
		return "ERROR"
	default:
		return "FATAL"
	}
}

// SlogLevel maps l onto the slog level used when the event is logged.
func (l Level) SlogLevel() slog.Level {
	switch {
	case l <= 8:
		return slog.LevelDebug
	case l <= 12:
		return slog.LevelInfo
	case l <= 16:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// EventType names an event. Packages declare their own constants
// ("shell.dispatch", "module.invoked").
type EventType string

// Event is one observable occurrence. Source identifies the emitting
// function; Data holds flat attributes.
type Event struct {
	Type      EventType
	Level     Level
	Timestamp time.Time
	Source    string
	Data      map[string]any
}

// NewEvent stamps an event with the current time.
func NewEvent(typ EventType, level Level, source string, data map[string]any) Event {
	return Event{
		Type:      typ,
		Level:     level,
		Timestamp: time.Now(),
		Source:    source,
		Data:      data,
	}
}

// Observer receives events.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}
