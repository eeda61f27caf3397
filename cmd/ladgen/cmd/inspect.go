package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/lad/errors"
	"github.com/teranos/lad/ladfile"
)

var (
	inspectFormat  string
	inspectSection string
)

var inspectSections = []string{"types", "functions", "primitives", "globals"}

// InspectCmd shows the contents of a LAD file
var InspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show the contents of a LAD file as tables",
	Long: `Show the types, functions, primitives and globals of a LAD file as tables.

Examples:
  ladgen inspect bindings.lad.json
  ladgen inspect bindings.lad.yaml --section functions`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	InspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "", "Format of the file (default: from extension)")
	InspectCmd.Flags().StringVarP(&inspectSection, "section", "s", "all", "Section to show: types, functions, primitives, globals, all")
}

func runInspect(cmd *cobra.Command, args []string) error {
	sections, err := selectSections(inspectSection)
	if err != nil {
		return err
	}

	file, err := readLAD(args[0], inspectFormat)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", pterm.Bold.Sprint("LAD"), file.Version)
	if file.Description != "" {
		fmt.Fprintln(out, file.Description)
	}

	for _, section := range sections {
		var data pterm.TableData
		switch section {
		case "types":
			data = typeTable(file)
		case "functions":
			data = functionTable(file)
		case "primitives":
			data = primitiveTable(file)
		case "globals":
			data = globalTable(file)
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, pterm.LightCyan(fmt.Sprintf("%s (%d)", strings.ToUpper(section[:1])+section[1:], len(data)-1)))
		if len(data) == 1 {
			continue
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return errors.Wrapf(err, "failed to render %s", section)
		}
		fmt.Fprintln(out, table)
	}
	return nil
}

// selectSections expands the --section flag
func selectSections(section string) ([]string, error) {
	section = strings.ToLower(strings.TrimSpace(section))
	if section == "" || section == "all" {
		return inspectSections, nil
	}
	for _, s := range inspectSections {
		if s == section {
			return []string{s}, nil
		}
	}
	return nil, errors.Newf("unknown section %q (supported: %s, all)", section, strings.Join(inspectSections, ", "))
}

func typeTable(file *ladfile.File) pterm.TableData {
	data := pterm.TableData{{"Type", "Layout", "Generics", "Functions", "Insignificance", "Generated"}}
	for pair := file.Types.Oldest(); pair != nil; pair = pair.Next() {
		t := pair.Value
		generics := make([]string, len(t.Generics))
		for i, g := range t.Generics {
			generics[i] = g.Name + "=" + string(g.TypeID)
		}
		data = append(data, []string{
			string(pair.Key),
			t.Layout.Kind.String(),
			strings.Join(generics, ", "),
			strconv.Itoa(len(t.AssociatedFunctions)),
			strconv.Itoa(t.Insignificance),
			yesNo(t.Generated),
		})
	}
	return data
}

func functionTable(file *ladfile.File) pterm.TableData {
	data := pterm.TableData{{"Function", "Namespace", "Signature", "Documentation"}}
	for pair := file.Functions.Oldest(); pair != nil; pair = pair.Next() {
		fn := pair.Value
		data = append(data, []string{
			string(pair.Key),
			fn.Namespace.String(),
			signature(fn),
			firstLine(fn.Documentation),
		})
	}
	return data
}

func primitiveTable(file *ladfile.File) pterm.TableData {
	data := pterm.TableData{{"Primitive", "Documentation"}}
	for pair := file.Primitives.Oldest(); pair != nil; pair = pair.Next() {
		data = append(data, []string{string(pair.Key), firstLine(pair.Value.Documentation)})
	}
	return data
}

func globalTable(file *ladfile.File) pterm.TableData {
	data := pterm.TableData{{"Global", "Kind", "Static"}}
	for pair := file.Globals.Oldest(); pair != nil; pair = pair.Next() {
		data = append(data, []string{pair.Key, kindString(pair.Value.Kind), yesNo(pair.Value.IsStatic)})
	}
	return data
}

// signature renders a function as "name(arg: Kind, ...) -> Kind"
func signature(fn ladfile.Function) string {
	args := make([]string, len(fn.Arguments))
	for i, a := range fn.Arguments {
		if a.Name != "" {
			args[i] = a.Name + ": " + kindString(a.Kind)
		} else {
			args[i] = kindString(a.Kind)
		}
	}
	return fn.Identifier + "(" + strings.Join(args, ", ") + ") -> " + kindString(fn.Return.Kind)
}

func kindString(k ladfile.TypeKind) string {
	if k == nil {
		return "()"
	}
	return k.String()
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
