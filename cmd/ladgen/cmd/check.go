package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/lad/errors"
	"github.com/teranos/lad/ladfile"
)

var checkFormat string

// CheckCmd checks if a LAD file is up to date
var CheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check if a LAD file is up to date",
	Long: `Check if a LAD file matches what ladgen build would produce now.

The file is regenerated in memory with the current configuration and
compared entry by entry, ignoring the version stamp.

Exit codes:
  0 - LAD file is up to date
  1 - LAD file is out of date (differences shown)
  2 - Error during check

Examples:
  ladgen check bindings.lad.json
  ladgen check bindings.lad --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	CheckCmd.Flags().StringVarP(&checkFormat, "format", "f", "", "Format of the file (default: from extension)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	existing, err := readLAD(path, checkFormat)
	if err != nil {
		return err
	}

	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return err
	}
	fresh, _, err := generate(opts)
	if err != nil {
		return err
	}

	diffs := ladfile.Diff(existing, fresh)
	if len(diffs) == 0 {
		pterm.Success.Printf("%s is up to date\n", path)
		return nil
	}

	pterm.Warning.Printf("%s is out of date:\n", path)
	out := cmd.OutOrStdout()
	for _, d := range diffs {
		fmt.Fprintf(out, "  - %s\n", d)
	}
	return errors.WithHintf(errors.Wrapf(errors.ErrOutOfDate, "%s", path),
		"run 'ladgen build --output %s' to regenerate it", path)
}
