// Package shell implements the interactive read-eval loop: it owns the
// session, activates it once, then reads one line at a time and dispatches
// it to the command registry until "exit" or end of input.
//
//	sh, err := shell.New(&cfg, catalog)
//	err = sh.Run(ctx)
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/tailored-agentic-units/ritualmesh/commands"
	"github.com/tailored-agentic-units/ritualmesh/module"
	"github.com/tailored-agentic-units/ritualmesh/observability"
	"github.com/tailored-agentic-units/ritualmesh/session"
)

// ExitCommand terminates the loop without being dispatched.
const ExitCommand = "exit"

const eventSource = "shell.Run"

// Option configures a Shell. Options run before subsystems are created, so
// an injected session, loader or registry replaces the config-created one.
type Option func(*Shell)

// WithSession overrides the config-created session.
func WithSession(s session.Session) Option {
	return func(sh *Shell) { sh.session = s }
}

// WithLogger sets the logger backing the config-created session.
func WithLogger(l *slog.Logger) Option {
	return func(sh *Shell) { sh.logger = l }
}

// WithCommands overrides the built-in command registry.
func WithCommands(r *commands.Registry) Option {
	return func(sh *Shell) { sh.commands = r }
}

// WithLoader overrides the config-created module loader.
func WithLoader(l *module.Loader) Option {
	return func(sh *Shell) { sh.loader = l }
}

// WithObserver adds an observer that receives events alongside the one
// named in the config.
func WithObserver(o observability.Observer) Option {
	return func(sh *Shell) { sh.observer = o }
}

// WithIO replaces stdin and stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(sh *Shell) {
		sh.in = in
		sh.out = out
	}
}

// Shell is the read-eval loop. All commands and modules run inline on the
// caller's goroutine.
type Shell struct {
	session    session.Session
	logger     *slog.Logger
	commands   *commands.Registry
	loader     *module.Loader
	observer   observability.Observer
	in         io.Reader
	out        io.Writer
	prompt     string
	promptInk  *color.Color
	modulesDir string
}

// New creates a Shell from configuration. catalog lists the modules summon
// can resolve. A duplicate built-in command is a configuration error.
func New(cfg *Config, catalog *module.Catalog, opts ...Option) (*Shell, error) {
	sh := &Shell{
		logger:     slog.Default(),
		in:         os.Stdin,
		out:        os.Stdout,
		prompt:     cfg.Prompt,
		promptInk:  color.New(color.FgMagenta, color.Bold),
		modulesDir: cfg.Modules.Dir,
	}

	for _, opt := range opts {
		opt(sh)
	}

	configured, err := observability.GetObserver(cfg.Observer)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w (available: %s)",
			err, strings.Join(observability.ObserverNames(), ", "))
	}
	sh.observer = observability.NewMultiObserver(configured, sh.observer)

	if sh.session == nil {
		sesh, err := session.New(&cfg.Session, sh.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create session: %w", err)
		}
		sh.session = sesh
	}

	if sh.loader == nil {
		if catalog == nil {
			catalog = module.NewCatalog()
		}
		sh.loader = module.NewLoader(&cfg.Modules, catalog, module.WithObserver(sh.observer))
	}

	if sh.commands == nil {
		reg, err := commands.NewRegistry(sh.builtins()...)
		if err != nil {
			return nil, fmt.Errorf("failed to build command registry: %w", err)
		}
		sh.commands = reg
	}

	sh.session.Log("Ritual Mesh initialized. ID: " + sh.session.ID())

	return sh, nil
}

// Session returns the shell's session.
func (sh *Shell) Session() session.Session {
	return sh.session
}

// Run activates the session and loops until the exit command, end of input,
// or ctx cancellation, each of which returns nil. Only a read failure other
// than end of input is returned as an error.
func (sh *Shell) Run(ctx context.Context) error {
	sh.observer.OnEvent(ctx, observability.NewEvent(
		EventStart, observability.LevelDebug, eventSource,
		map[string]any{"session": sh.session.ID(), "commands": sh.commands.Names()},
	))

	fp := session.Activate(sh.session)
	sh.observer.OnEvent(ctx, observability.NewEvent(
		EventActivate, observability.LevelDebug, eventSource,
		map[string]any{"fingerprint": fp},
	))

	reader := bufio.NewReader(sh.in)
	for {
		if ctx.Err() != nil {
			sh.terminate(ctx, "cancelled")
			return nil
		}

		sh.promptInk.Fprint(sh.out, sh.prompt)

		raw, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read input: %w", err)
		}
		eof := err != nil

		line := strings.TrimSpace(raw)
		if line == ExitCommand {
			sh.terminate(ctx, ExitCommand)
			return nil
		}
		if line != "" {
			sh.dispatch(ctx, line)
		}

		// A final line without a newline is dispatched before terminating.
		if eof {
			sh.terminate(ctx, "eof")
			return nil
		}
	}
}

func (sh *Shell) dispatch(ctx context.Context, name string) {
	res, err := sh.commands.Dispatch(ctx, name)
	if err != nil {
		sh.session.Log(err.Error())
		sh.observer.OnEvent(ctx, observability.NewEvent(
			EventCommandError, observability.LevelWarning, eventSource,
			map[string]any{"command": name, "error": err.Error()},
		))
		return
	}

	if res.Status == commands.Unrecognized {
		sh.session.Log("Unknown invocation: " + name)
		sh.observer.OnEvent(ctx, observability.NewEvent(
			EventUnrecognized, observability.LevelDebug, eventSource,
			map[string]any{"command": name},
		))
		return
	}

	sh.observer.OnEvent(ctx, observability.NewEvent(
		EventDispatch, observability.LevelDebug, eventSource,
		map[string]any{"command": name},
	))
}

func (sh *Shell) terminate(ctx context.Context, reason string) {
	sh.observer.OnEvent(ctx, observability.NewEvent(
		EventTerminate, observability.LevelDebug, eventSource,
		map[string]any{"reason": reason},
	))
}
