package cmd

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/lad/am"
	"github.com/teranos/lad/errors"
)

var configForce bool

// ConfigCmd manages the ladgen configuration
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ladgen configuration",
	Long: `Manage ladgen configuration.

Examples:
  ladgen config init              # Write a starter lad.toml
  ladgen config show              # Show the effective configuration`,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter lad.toml",
	Long:  "Write the default configuration to path (default: ./lad.toml)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  "Display the configuration after merging defaults, config files and environment variables",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")

	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := am.ConfigFileName
	if len(args) == 1 {
		path = args[0]
	}

	if err := am.WriteDefault(path, configForce); err != nil {
		return err
	}
	pterm.Success.Printf("Wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config to TOML")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# ladgen configuration\n%s", data)
	return nil
}
