package am

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// LAD file defaults
	v.SetDefault("lad.version", "")
	v.SetDefault("lad.description", "")
	v.SetDefault("lad.sorted", true)
	v.SetDefault("lad.exclude_unregistered", false)
	v.SetDefault("lad.output", "")
	v.SetDefault("lad.format", "")

	// Source defaults
	v.SetDefault("source.docs", []string{})

	// Log defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
}

// DefaultConfig returns the configuration SetDefaults describes
func DefaultConfig() *Config {
	return &Config{
		LAD: LADConfig{
			Sorted: true,
		},
		Source: SourceConfig{
			Docs: []string{},
		},
	}
}
