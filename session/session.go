// Package session holds the shared context handed to every command and
// module: an immutable identity and a log capability.
package session

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Session is read-only after construction. Commands and modules may read
// the identity and write log lines; nothing can change the identity.
type Session interface {
	// ID returns the process-unique session identifier.
	ID() string
	// Log delivers a preformatted line to the logging sink, which adds the
	// timestamp.
	Log(msg string)
}

type slogSession struct {
	id     string
	logger *slog.Logger
}

// New creates a Session from configuration. An empty cfg.ID generates a
// UUIDv7; a non-empty one must parse as a UUID. A nil logger uses
// slog.Default.
func New(cfg *Config, logger *slog.Logger) (Session, error) {
	if cfg.ID == "" {
		return NewWithID(uuid.Must(uuid.NewV7()).String(), logger), nil
	}

	id, err := uuid.Parse(cfg.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidID, cfg.ID, err)
	}
	return NewWithID(id.String(), logger), nil
}

// NewWithID creates a Session with a caller-supplied identity. The id is
// treated as opaque.
func NewWithID(id string, logger *slog.Logger) Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogSession{id: id, logger: logger}
}

func (s *slogSession) ID() string {
	return s.id
}

func (s *slogSession) Log(msg string) {
	s.logger.Info(msg)
}
