package module_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/spf13/afero"
	"github.com/tailored-agentic-units/ritualmesh/module"
	"github.com/tailored-agentic-units/ritualmesh/observability"
	"github.com/tailored-agentic-units/ritualmesh/session"
)

const modulesDir = "/mesh/modules"

type recordingSession struct {
	lines []string
}

func (s *recordingSession) ID() string     { return "mesh-test" }
func (s *recordingSession) Log(msg string) { s.lines = append(s.lines, msg) }

type funcModule func(ctx context.Context) error

func (f funcModule) Summon(ctx context.Context) error { return f(ctx) }

// logging returns a factory whose module logs line through the session.
func logging(line string) module.Factory {
	return func(s session.Session) (module.Summonable, error) {
		return funcModule(func(context.Context) error {
			s.Log(line)
			return nil
		}), nil
	}
}

func failing(err error) module.Factory {
	return func(session.Session) (module.Summonable, error) {
		return funcModule(func(context.Context) error { return err }), nil
	}
}

func unconstructable(err error) module.Factory {
	return func(session.Session) (module.Summonable, error) {
		return nil, err
	}
}

func panicking(v any) module.Factory {
	return func(session.Session) (module.Summonable, error) {
		return funcModule(func(context.Context) error { panic(v) }), nil
	}
}

var errBoom = errors.New("boom")

func newFs(t *testing.T, files ...string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll(modulesDir, 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	for _, name := range files {
		if err := afero.WriteFile(fs, modulesDir+"/"+name, []byte("package modules\n"), 0o644); err != nil {
			t.Fatalf("WriteFile(%s) failed: %v", name, err)
		}
	}
	return fs
}

func newCatalog(t *testing.T, factories map[string]module.Factory) *module.Catalog {
	t.Helper()

	c := module.NewCatalog()
	for name, f := range factories {
		if err := c.Register(name, f); err != nil {
			t.Fatalf("Register(%s) failed: %v", name, err)
		}
	}
	return c
}

// byName indexes outcomes since enumeration order is not part of the contract.
func byName(outcomes []module.Outcome) map[string]module.Outcome {
	m := make(map[string]module.Outcome, len(outcomes))
	for _, o := range outcomes {
		m[o.Name] = o
	}
	return m
}

func names(outcomes []module.Outcome) []string {
	out := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		out = append(out, o.Name)
	}
	sort.Strings(out)
	return out
}

type captureObserver struct {
	events []observability.Event
}

func (c *captureObserver) OnEvent(_ context.Context, e observability.Event) {
	c.events = append(c.events, e)
}
