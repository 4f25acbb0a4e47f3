package module

import "errors"

// Sentinel errors for catalog registration, discovery and invocation.
var (
	ErrAlreadyExists = errors.New("module already registered")
	ErrEmptyName     = errors.New("module name is empty")
	ErrNilFactory    = errors.New("module factory is nil")
	ErrDiscovery     = errors.New("module discovery failed")
	ErrConstruct     = errors.New("module construction failed")
	ErrSummon        = errors.New("module summon failed")
	ErrPanic         = errors.New("module panicked")
)
