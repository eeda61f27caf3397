// Package am is the configuration of ladgen.
//
// Settings come from, lowest precedence first: built-in defaults, the
// user file ~/.lad/lad.toml, the nearest lad.toml found walking up from the
// working directory, and LAD_* environment variables.
package am

// Config represents the ladgen configuration
type Config struct {
	LAD    LADConfig    `mapstructure:"lad" toml:"lad"`
	Source SourceConfig `mapstructure:"source" toml:"source"`
	Log    LogConfig    `mapstructure:"log" toml:"log"`
}

// LADConfig configures the generated LAD file
type LADConfig struct {
	Version             string `mapstructure:"version" toml:"version"`                           // Version stamp (empty = ladgen's own version)
	Description         string `mapstructure:"description" toml:"description"`                   // Free-text description of the file
	Sorted              bool   `mapstructure:"sorted" toml:"sorted"`                             // Deterministic ordering of types, functions, primitives
	ExcludeUnregistered bool   `mapstructure:"exclude_unregistered" toml:"exclude_unregistered"` // Drop types reaching unregistered types
	Output              string `mapstructure:"output" toml:"output"`                             // Output path (empty = stdout)
	Format              string `mapstructure:"format" toml:"format"`                             // json or yaml (empty = from output extension, else json)
}

// SourceConfig configures where documentation is read from
type SourceConfig struct {
	Docs []string `mapstructure:"docs" toml:"docs"` // Go package patterns whose doc comments fill in missing docs
}

// LogConfig configures logging
type LogConfig struct {
	JSON      bool `mapstructure:"json" toml:"json"`           // JSON logs on stderr
	Verbosity int  `mapstructure:"verbosity" toml:"verbosity"` // 0 = warnings, 1 = info, 2+ = debug
}

// ConfigFileName is the project config file searched for from the working directory
const ConfigFileName = "lad.toml"

// EnvPrefix prefixes environment overrides (LAD_LAD_SORTED, LAD_LOG_JSON, ...)
const EnvPrefix = "LAD"

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
