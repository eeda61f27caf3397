package am

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/teranos/lad/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Format: empty means "pick from the output extension"
	switch strings.ToLower(c.LAD.Format) {
	case "", "json", "yaml", "yml":
	default:
		return errors.NewUnknownFormatError("lad.format must be json or yaml, got %q", c.LAD.Format)
	}

	// Version: empty means ladgen's own version, otherwise it must be semver
	if c.LAD.Version != "" {
		if _, err := semver.NewVersion(c.LAD.Version); err != nil {
			return errors.WithHint(
				errors.NewInvalidVersionError("lad.version %q: %v", c.LAD.Version, err),
				"use a semantic version such as 1.2.0")
		}
	}

	if c.Log.Verbosity < 0 {
		return errors.Newf("log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}

	for _, pattern := range c.Source.Docs {
		if strings.TrimSpace(pattern) == "" {
			return errors.New("source.docs cannot contain empty patterns")
		}
	}

	return nil
}
