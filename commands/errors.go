package commands

import "errors"

// Sentinel errors for the command registry.
var (
	ErrAlreadyExists = errors.New("command already registered")
	ErrEmptyName     = errors.New("command name is empty")
	ErrNilAction     = errors.New("command action is nil")
	ErrSealed        = errors.New("command registry is sealed")
)
