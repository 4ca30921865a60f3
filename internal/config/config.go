// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers a YAML file and environment variables over the defaults.
// - Validation failures wrap ErrInvalidConfig.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MaxSnapshots bounds the number of event snapshots held in memory.
	MaxSnapshots int `koanf:"max_snapshots"`

	// DefaultSort is the result order used when a request names none.
	DefaultSort string `koanf:"default_sort"`

	// DefaultProgram is used by GET /events/{id}/eligibility without ?program.
	DefaultProgram string `koanf:"default_program"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		LogFormat:      "text",
		Addr:           ":9080",
		MaxSnapshots:   1_000,
		DefaultSort:    "default",
		DefaultProgram: "V5RC",
	}
}
