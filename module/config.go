package module

const (
	defaultDir       = "modules"
	defaultExtension = ".go"
)

// Config holds module discovery parameters.
type Config struct {
	Dir       string `yaml:"dir,omitempty"`       // Directory scanned by summon.
	Extension string `yaml:"extension,omitempty"` // Source file extension, including the dot.
}

// DefaultConfig scans ./modules for .go files.
func DefaultConfig() Config {
	return Config{
		Dir:       defaultDir,
		Extension: defaultExtension,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Dir != "" {
		c.Dir = source.Dir
	}
	if source.Extension != "" {
		c.Extension = source.Extension
	}
}
