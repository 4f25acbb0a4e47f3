package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/tailored-agentic-units/ritualmesh/observability"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		name  string
		level observability.Level
		want  string
	}{
		{name: "trace range", level: 1, want: "TRACE"},
		{name: "debug", level: observability.LevelDebug, want: "DEBUG"},
		{name: "info", level: observability.LevelInfo, want: "INFO"},
		{name: "warning", level: observability.LevelWarning, want: "WARN"},
		{name: "error", level: observability.LevelError, want: "ERROR"},
		{name: "fatal range", level: 21, want: "FATAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
			}
		})
	}
}

func TestLevel_SlogLevel(t *testing.T) {
	tests := []struct {
		level observability.Level
		want  slog.Level
	}{
		{level: observability.LevelDebug, want: slog.LevelDebug},
		{level: observability.LevelInfo, want: slog.LevelInfo},
		{level: observability.LevelWarning, want: slog.LevelWarn},
		{level: observability.LevelError, want: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := tt.level.SlogLevel(); got != tt.want {
				t.Errorf("Level(%d).SlogLevel() = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestNewEvent_StampsTime(t *testing.T) {
	before := time.Now()
	e := observability.NewEvent("shell.dispatch", observability.LevelInfo, "test", nil)

	if e.Timestamp.Before(before) {
		t.Errorf("timestamp %v is before %v", e.Timestamp, before)
	}
	if e.Type != "shell.dispatch" {
		t.Errorf("got type %q, want %q", e.Type, "shell.dispatch")
	}
}

func TestNoOpObserver(t *testing.T) {
	observability.NoOpObserver{}.OnEvent(context.Background(), observability.Event{Type: "test.event"})
}

func TestMultiObserver_FanOut(t *testing.T) {
	var first, second captureObserver

	multi := observability.NewMultiObserver(&first, nil, &second)
	multi.OnEvent(context.Background(), observability.Event{Type: "module.invoked"})

	if len(first.events) != 1 || len(second.events) != 1 {
		t.Fatalf("got %d and %d events, want 1 each", len(first.events), len(second.events))
	}
	if first.events[0].Type != "module.invoked" {
		t.Errorf("got type %q, want %q", first.events[0].Type, "module.invoked")
	}
}

func TestSlogObserver_LevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		level     observability.Level
		minLevel  slog.Level
		expectLog bool
	}{
		{name: "debug at debug handler", level: observability.LevelDebug, minLevel: slog.LevelDebug, expectLog: true},
		{name: "debug at info handler", level: observability.LevelDebug, minLevel: slog.LevelInfo, expectLog: false},
		{name: "info at info handler", level: observability.LevelInfo, minLevel: slog.LevelInfo, expectLog: true},
		{name: "warning at error handler", level: observability.LevelWarning, minLevel: slog.LevelError, expectLog: false},
		{name: "error at error handler", level: observability.LevelError, minLevel: slog.LevelError, expectLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: tt.minLevel}))

			observability.NewSlogObserver(logger).OnEvent(context.Background(), observability.Event{
				Type:  "test.event",
				Level: tt.level,
			})

			if got := buf.Len() > 0; got != tt.expectLog {
				t.Errorf("logged = %v, want %v (buf: %q)", got, tt.expectLog, buf.String())
			}
		})
	}
}

func TestSlogObserver_Attributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	observability.NewSlogObserver(logger).OnEvent(context.Background(), observability.Event{
		Type:   "module.failed",
		Level:  observability.LevelWarning,
		Source: "module.Loader",
		Data:   map[string]any{"name": "Fire", "error": "boom"},
	})

	out := buf.String()
	for _, want := range []string{"module.failed", "source=module.Loader", "name=Fire", "error=boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
	if strings.Index(out, "error=boom") > strings.Index(out, "name=Fire") {
		t.Errorf("data attributes not sorted: %q", out)
	}
}

func TestRegistry_GetObserver(t *testing.T) {
	tests := []struct {
		key     string
		wantErr bool
	}{
		{key: "noop"},
		{key: "slog"},
		{key: "nonexistent", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			obs, err := observability.GetObserver(tt.key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetObserver(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
			if !tt.wantErr && obs == nil {
				t.Errorf("GetObserver(%q) returned nil", tt.key)
			}
		})
	}
}

func TestRegistry_RegisterAndList(t *testing.T) {
	custom := &captureObserver{}
	observability.RegisterObserver("test-capture", custom)

	obs, err := observability.GetObserver("test-capture")
	if err != nil {
		t.Fatalf("GetObserver failed: %v", err)
	}
	obs.OnEvent(context.Background(), observability.Event{Type: "test.event"})

	if len(custom.events) != 1 {
		t.Errorf("got %d events, want 1", len(custom.events))
	}

	found := false
	for _, name := range observability.ObserverNames() {
		if name == "test-capture" {
			found = true
		}
	}
	if !found {
		t.Errorf("ObserverNames() = %v, missing test-capture", observability.ObserverNames())
	}
}

type captureObserver struct {
	events []observability.Event
}

func (c *captureObserver) OnEvent(_ context.Context, event observability.Event) {
	c.events = append(c.events, event)
}
