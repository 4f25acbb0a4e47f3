// Package module discovers module source files in a directory, resolves
// each against a catalog of compiled-in factories, and runs the module's
// single lifecycle call.
//
//	catalog := module.NewCatalog()
//	catalog.Register("Fire", modules.NewFire)
//	loader := module.NewLoader(&cfg, catalog)
//	outcomes, err := loader.DiscoverAndInvoke(ctx, cfg.Dir, sess)
package module

import (
	"context"

	"github.com/tailored-agentic-units/ritualmesh/session"
)

// Summonable is the lifecycle capability every module implements. Summon
// is called exactly once per instance.
type Summonable interface {
	Summon(ctx context.Context) error
}

// Factory constructs a module bound to the shared session.
type Factory func(s session.Session) (Summonable, error)

// Descriptor identifies a discovered module source file. Name is derived
// from the file name by DeriveName.
type Descriptor struct {
	SourcePath string
	Name       string
}
