// Package modules holds the built-in ritual modules. The directory doubles
// as the default summon target: each file here is one module, and its name
// with the first letter upper-cased is the module's catalog name.
package modules

import (
	"context"

	"github.com/tailored-agentic-units/ritualmesh/module"
	"github.com/tailored-agentic-units/ritualmesh/session"
)

// Fire binds the element of fire to the mesh.
type Fire struct {
	session session.Session
}

// NewFire is the catalog factory for Fire.
func NewFire(s session.Session) (module.Summonable, error) {
	return &Fire{session: s}, nil
}

func (f *Fire) Summon(context.Context) error {
	f.session.Log("🔥 Element of Fire bound to Ritual Mesh.")
	return nil
}
