package session

import "errors"

// ErrInvalidID is returned by New when a configured identity is not a UUID.
var ErrInvalidID = errors.New("invalid session id")
