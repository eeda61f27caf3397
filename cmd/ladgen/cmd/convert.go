package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	convertFrom string
	convertTo   string
)

// ConvertCmd converts a LAD file between JSON and YAML
var ConvertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert a LAD file between JSON and YAML",
	Long: `Convert a LAD file between JSON and YAML. Formats follow the file
extensions unless --from or --to are given. Entry order is preserved.

Examples:
  ladgen convert bindings.lad.json bindings.lad.yaml
  ladgen convert bindings.lad - --from yaml --to json   # "-" writes to stdout`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	ConvertCmd.Flags().StringVar(&convertFrom, "from", "", "Input format (default: from extension)")
	ConvertCmd.Flags().StringVar(&convertTo, "to", "", "Output format (default: from extension)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	file, err := readLAD(input, convertFrom)
	if err != nil {
		return err
	}

	if output == "-" {
		output = ""
	}
	format, err := resolveFormat(convertTo, output)
	if err != nil {
		return err
	}

	if err := writeLAD(cmd.OutOrStdout(), file, output, format); err != nil {
		return err
	}
	if output != "" {
		pterm.Success.Printf("Converted %s to %s (%s)\n", input, output, format)
	}
	return nil
}
