// Package commands maps command names typed at the shell prompt to their
// actions.
package commands

import (
	"context"
	"fmt"
	"sort"
)

// Action is the behavior bound to a command name. Commands take no user
// arguments; ctx carries cancellation only.
type Action func(ctx context.Context) error

// Status reports how Dispatch handled a name.
type Status int

const (
	Unrecognized Status = iota
	Executed
)

func (s Status) String() string {
	switch s {
	case Executed:
		return "executed"
	default:
		return "unrecognized"
	}
}

// Result is the outcome of Dispatch. Name echoes the dispatched name.
type Result struct {
	Status Status
	Name   string
}

// Entry pairs a command name with its action for NewRegistry.
type Entry struct {
	Name   string
	Action Action
}

// Registry is a fixed name -> action table. Names are registered while the
// registry is being built; after Seal the table never changes, so Dispatch
// needs no locking.
type Registry struct {
	actions map[string]Action
	sealed  bool
}

// NewRegistry builds a sealed registry from entries. A duplicate or invalid
// entry is a configuration error and is returned as such.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{actions: make(map[string]Action, len(entries))}
	for _, e := range entries {
		if err := r.Register(e.Name, e.Action); err != nil {
			return nil, err
		}
	}
	r.Seal()
	return r, nil
}

// Register binds name to action. Returns ErrAlreadyExists if name is taken
// and ErrSealed once the registry has been sealed.
func (r *Registry) Register(name string, action Action) error {
	if r.sealed {
		return fmt.Errorf("%w: %s", ErrSealed, name)
	}
	if name == "" {
		return ErrEmptyName
	}
	if action == nil {
		return fmt.Errorf("%w: %s", ErrNilAction, name)
	}
	if r.actions == nil {
		r.actions = make(map[string]Action)
	}
	if _, exists := r.actions[name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, name)
	}

	r.actions[name] = action
	return nil
}

// Seal freezes the registry.
func (r *Registry) Seal() {
	r.sealed = true
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the action bound to name. Matching is exact and
// case-sensitive. An unknown name yields Unrecognized without side effects.
// Action errors are wrapped with the command name; the status is still
// Executed.
func (r *Registry) Dispatch(ctx context.Context, name string) (Result, error) {
	action, exists := r.actions[name]
	if !exists {
		return Result{Status: Unrecognized, Name: name}, nil
	}

	if err := action(ctx); err != nil {
		return Result{Status: Executed, Name: name}, fmt.Errorf("command %s failed: %w", name, err)
	}
	return Result{Status: Executed, Name: name}, nil
}
