package main

import (
	"fmt"

	"github.com/tailored-agentic-units/ritualmesh/module"
	"github.com/tailored-agentic-units/ritualmesh/modules"
)

// builtinModules lists every module summon can resolve. A module file in
// the modules directory without an entry here is reported as not found.
func builtinModules() *module.Catalog {
	catalog := module.NewCatalog()
	must(catalog.Register("Fire", modules.NewFire))
	return catalog
}

func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("failed to register module: %v", err))
	}
}
