package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/tailored-agentic-units/ritualmesh/observability"
	"github.com/tailored-agentic-units/ritualmesh/shell"
)

func main() {
	env, err := shell.ParseEnv()
	if err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}

	cfg, err := env.ResolveConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if env.NoColor {
		color.NoColor = true
	}

	level := slog.LevelInfo
	if env.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	observability.RegisterObserver("slog", observability.NewSlogObserver(logger))

	catalog := builtinModules()

	sh, err := shell.New(cfg, catalog, shell.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create shell: %v", err)
	}

	if err := sh.Run(context.Background()); err != nil {
		log.Fatalf("Shell failed: %v", err)
	}
}
