package module

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/tailored-agentic-units/ritualmesh/observability"
	"github.com/tailored-agentic-units/ritualmesh/session"
)

const eventSource = "module.Loader"

// Option configures a Loader after config-driven initialization.
type Option func(*Loader)

// WithFs replaces the OS filesystem used for discovery.
func WithFs(fs afero.Fs) Option {
	return func(l *Loader) { l.source = NewSource(fs, l.ext) }
}

// WithObserver overrides the default SlogObserver.
func WithObserver(o observability.Observer) Option {
	return func(l *Loader) { l.observer = o }
}

// Loader discovers modules and runs each one's lifecycle call. Instances
// are created per pass and discarded after Summon returns.
type Loader struct {
	catalog  *Catalog
	source   Source
	observer observability.Observer
	ext      string
}

// NewLoader creates a Loader resolving names against catalog. Discovery
// reads the OS filesystem unless overridden by WithFs.
func NewLoader(cfg *Config, catalog *Catalog, opts ...Option) *Loader {
	ext := cfg.Extension
	if ext == "" {
		ext = defaultExtension
	}

	l := &Loader{
		catalog:  catalog,
		source:   NewSource(afero.NewOsFs(), ext),
		observer: observability.NewSlogObserver(slog.Default()),
		ext:      ext,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// DiscoverAndInvoke lists the modules in dir and, for each, resolves its
// factory, constructs it with s and calls Summon. Every module yields one
// Outcome; a missing or failing module never stops the pass. The returned
// error is non-nil only when dir itself cannot be enumerated.
func (l *Loader) DiscoverAndInvoke(ctx context.Context, dir string, s session.Session) ([]Outcome, error) {
	descriptors, err := l.source.List(ctx, dir)
	if err != nil {
		return nil, err
	}

	l.observer.OnEvent(ctx, observability.NewEvent(
		EventDiscover, observability.LevelDebug, eventSource,
		map[string]any{"dir": dir, "count": len(descriptors)},
	))

	outcomes := make([]Outcome, 0, len(descriptors))
	for _, d := range descriptors {
		outcome := l.invoke(ctx, d, s)
		l.observe(ctx, outcome)
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

func (l *Loader) invoke(ctx context.Context, d Descriptor, s session.Session) Outcome {
	outcome := Outcome{Name: d.Name, SourcePath: d.SourcePath}

	factory, ok := l.catalog.Lookup(d.Name)
	if !ok {
		outcome.Kind = NotFound
		return outcome
	}

	if err := summon(ctx, factory, s); err != nil {
		outcome.Kind = Failed
		outcome.Err = err
		return outcome
	}

	outcome.Kind = Invoked
	return outcome
}

func summon(ctx context.Context, factory Factory, s session.Session) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()

	m, err := factory(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConstruct, err)
	}
	if m == nil {
		return fmt.Errorf("%w: factory returned nil", ErrConstruct)
	}

	if err := m.Summon(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrSummon, err)
	}
	return nil
}

func (l *Loader) observe(ctx context.Context, o Outcome) {
	data := map[string]any{
		"name": o.Name,
		"path": o.SourcePath,
	}

	switch o.Kind {
	case Invoked:
		l.observer.OnEvent(ctx, observability.NewEvent(EventInvoked, observability.LevelDebug, eventSource, data))
	case NotFound:
		l.observer.OnEvent(ctx, observability.NewEvent(EventNotFound, observability.LevelDebug, eventSource, data))
	case Failed:
		data["error"] = o.Err.Error()
		l.observer.OnEvent(ctx, observability.NewEvent(EventFailed, observability.LevelWarning, eventSource, data))
	}
}
