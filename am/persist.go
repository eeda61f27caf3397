package am

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/lad/errors"
)

const defaultHeader = `# ladgen configuration
#
# Every setting can be overridden with an environment variable:
# LAD_<SECTION>_<KEY>, e.g. LAD_LAD_SORTED=false or LAD_LOG_VERBOSITY=2.

`

// WriteDefault writes the default configuration to path as TOML.
// An existing file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	return Write(path, DefaultConfig(), force)
}

// Write saves config to path as TOML.
// An existing file is only replaced when force is set.
func Write(path string, config *Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.WithHint(
				errors.Newf("config file %s already exists", path),
				"pass --force to overwrite it")
		}
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
			return errors.Wrapf(err, "failed to create directory %s", dir)
		}
	}

	content := append([]byte(defaultHeader), data...)
	if err := os.WriteFile(path, content, DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", path)
	}
	return nil
}
