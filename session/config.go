package session

// Config holds session initialization parameters.
type Config struct {
	ID string `yaml:"id,omitempty"` // Fixed identity; empty generates a fresh UUIDv7.
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.ID != "" {
		c.ID = source.ID
	}
}
