package observability

import (
	"context"
	"log/slog"
	"sort"
)

// SlogObserver writes events to a slog.Logger. The event type is the log
// message; Source and the Data keys become attributes, Data keys in sorted
// order so output is stable.
type SlogObserver struct {
	logger *slog.Logger
}

// NewSlogObserver returns an observer that logs to logger.
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	return &SlogObserver{logger: logger}
}

func (o *SlogObserver) OnEvent(ctx context.Context, event Event) {
	keys := make([]string, 0, len(event.Data))
	for k := range event.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys)+1)
	attrs = append(attrs, slog.String("source", event.Source))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, event.Data[k]))
	}

	o.logger.LogAttrs(ctx, event.Level.SlogLevel(), string(event.Type), attrs...)
}
