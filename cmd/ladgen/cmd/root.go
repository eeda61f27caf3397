package cmd

import (
	"github.com/spf13/cobra"

	"github.com/teranos/lad/am"
	"github.com/teranos/lad/errors"
	"github.com/teranos/lad/logger"
)

var (
	configPath string
	verbose    int
	logJSON    bool

	// cfg is the configuration every command runs with, loaded before it runs
	cfg *am.Config
)

// RootCmd is the ladgen command
var RootCmd = &cobra.Command{
	Use:   "ladgen",
	Short: "Generate Language Agnostic Declaration (LAD) files",
	Long: `ladgen describes the scripting surface of the host (its types,
functions, primitives and globals) as a Language Agnostic Declaration file.
Binding generators and documentation tools read the LAD file instead of the
Go source.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (LAD_* prefix)
3. Project config (nearest lad.toml walking up from the working directory)
4. User config (~/.lad/lad.toml)
5. Default values

Examples:
  ladgen build --output bindings.lad.json   # Write the LAD file
  ladgen check bindings.lad.json            # Fail when it is out of date
  ladgen inspect bindings.lad.json          # Browse it as tables
  ladgen convert bindings.lad.json bindings.lad.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: nearest lad.toml)")
	RootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	RootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write logs as JSON")

	RootCmd.AddCommand(BuildCmd)
	RootCmd.AddCommand(CheckCmd)
	RootCmd.AddCommand(InspectCmd)
	RootCmd.AddCommand(ConvertCmd)
	RootCmd.AddCommand(ConfigCmd)
	RootCmd.AddCommand(VersionCmd)
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// setup loads configuration and initializes the global logger before any
// command runs. version and config init work without a valid config.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := loadConfig()
	if err != nil {
		if cmd.Name() == "version" || cmd.Name() == "init" {
			loaded = am.DefaultConfig()
		} else {
			return err
		}
	}

	if err := logger.Initialize(logJSON || loaded.Log.JSON, max(verbose, loaded.Log.Verbosity)); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	cfg = loaded
	return nil
}

// loadConfig reads --config when given, the usual config cascade otherwise
func loadConfig() (*am.Config, error) {
	var (
		loaded *am.Config
		err    error
	)
	if configPath != "" {
		loaded, err = am.LoadFromFile(configPath)
	} else {
		am.Reset()
		loaded, err = am.Load()
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	if err := loaded.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return loaded, nil
}
