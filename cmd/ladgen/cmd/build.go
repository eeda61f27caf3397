package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/lad/am"
	"github.com/teranos/lad/builder"
	"github.com/teranos/lad/errors"
	"github.com/teranos/lad/ladfile"
	"github.com/teranos/lad/logger"
	"github.com/teranos/lad/prelude"
	"github.com/teranos/lad/registry"
)

var (
	buildOutput              string
	buildFormat              string
	buildVersion             string
	buildDescription         string
	buildSorted              bool
	buildExcludeUnregistered bool
	buildSourceDocs          []string
	buildWatch               bool
)

// BuildCmd generates the LAD file
var BuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the LAD file",
	Long: `Generate the LAD file describing the host's scripting surface.

Without --output the file is written to stdout. The format follows --format,
then the output extension (.json, .yaml, .yml), then defaults to JSON.

Go doc comments fill in missing documentation when --source-docs names the
packages that declare the registered types.

Examples:
  ladgen build                                   # JSON to stdout
  ladgen build -o bindings.lad.yaml              # YAML file
  ladgen build --exclude-unregistered            # Drop types reaching unknown types
  ladgen build --source-docs ./prelude/...       # Pull docs from Go comments
  ladgen build -o bindings.lad.json --watch      # Rebuild when config or sources change`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	BuildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Output file (default: stdout)")
	BuildCmd.Flags().StringVarP(&buildFormat, "format", "f", "", "Output format: json, yaml")
	BuildCmd.Flags().StringVar(&buildVersion, "lad-version", "", "Version stamped into the file (default: ladgen version)")
	BuildCmd.Flags().StringVar(&buildDescription, "description", "", "Description of the file")
	BuildCmd.Flags().BoolVar(&buildSorted, "sorted", true, "Sort types, functions and primitives")
	BuildCmd.Flags().BoolVar(&buildExcludeUnregistered, "exclude-unregistered", false, "Drop types that reach unregistered types")
	BuildCmd.Flags().StringSliceVar(&buildSourceDocs, "source-docs", nil, "Go package patterns to read doc comments from")
	BuildCmd.Flags().BoolVarP(&buildWatch, "watch", "w", false, "Rebuild when the config or source packages change")
}

// buildOptions is everything one LAD generation needs
type buildOptions struct {
	Output              string
	Format              ladfile.Format
	Version             string
	Description         string
	Sorted              bool
	ExcludeUnregistered bool
	SourceDocs          []string
}

// optionsFromConfig derives build options from configuration alone
func optionsFromConfig(c *am.Config) (buildOptions, error) {
	opts := buildOptions{
		Output:              c.LAD.Output,
		Version:             c.LAD.Version,
		Description:         c.LAD.Description,
		Sorted:              c.LAD.Sorted,
		ExcludeUnregistered: c.LAD.ExcludeUnregistered,
		SourceDocs:          c.Source.Docs,
	}
	format, err := resolveFormat(c.LAD.Format, opts.Output)
	if err != nil {
		return buildOptions{}, err
	}
	opts.Format = format
	return opts, nil
}

// resolveOptions layers the flags the user set on top of configuration
func resolveOptions(cmd *cobra.Command, c *am.Config) (buildOptions, error) {
	opts, err := optionsFromConfig(c)
	if err != nil {
		return buildOptions{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		opts.Output = buildOutput
	}
	if flags.Changed("lad-version") {
		opts.Version = buildVersion
	}
	if flags.Changed("description") {
		opts.Description = buildDescription
	}
	if flags.Changed("sorted") {
		opts.Sorted = buildSorted
	}
	if flags.Changed("exclude-unregistered") {
		opts.ExcludeUnregistered = buildExcludeUnregistered
	}
	if flags.Changed("source-docs") {
		opts.SourceDocs = buildSourceDocs
	}

	format := c.LAD.Format
	if flags.Changed("format") {
		format = buildFormat
	} else if flags.Changed("output") {
		// A new output path picks its own format unless one was asked for
		format = ""
	}
	if opts.Format, err = resolveFormat(format, opts.Output); err != nil {
		return buildOptions{}, err
	}
	return opts, nil
}

// resolveFormat picks the explicit format, else the output extension, else JSON
func resolveFormat(format, output string) (ladfile.Format, error) {
	if format != "" {
		return ladfile.ParseFormat(format)
	}
	if output != "" {
		return ladfile.FormatFromPath(output)
	}
	return ladfile.FormatJSON, nil
}

// generate builds the LAD file of the prelude
func generate(opts buildOptions) (*ladfile.File, []builder.Warning, error) {
	reg, err := prelude.NewRegistry()
	if err != nil {
		return nil, nil, err
	}

	if len(opts.SourceDocs) > 0 {
		docs, err := registry.LoadDocs(opts.SourceDocs...)
		if err != nil {
			return nil, nil, errors.WithHint(
				errors.Wrap(err, "failed to load source documentation"),
				"source.docs takes Go package patterns such as ./prelude/...")
		}
		applied := reg.ApplyDocs(docs)
		logger.Infow("Applied source documentation",
			logger.FieldCount, applied,
			"patterns", strings.Join(opts.SourceDocs, ","))
	}

	b := builder.New(reg,
		builder.WithSorted(opts.Sorted),
		builder.WithExcludeUnregistered(opts.ExcludeUnregistered),
		builder.WithDescription(opts.Description),
		builder.WithVersion(opts.Version),
	)
	file, warnings := prelude.Populate(b, reg).Build()
	return file, warnings, nil
}

// writeLAD serializes file to path, or to w when path is empty
func writeLAD(w io.Writer, file *ladfile.File, path string, format ladfile.Format) error {
	data, err := ladfile.Serialize(file, format)
	if err != nil {
		return err
	}

	if path == "" {
		_, err := w.Write(data)
		return errors.Wrap(err, "failed to write LAD file")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, am.DefaultDirPermissions); err != nil {
			return errors.Wrapf(err, "failed to create directory %s", dir)
		}
	}
	if err := os.WriteFile(path, data, am.DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	logger.Infow("Wrote LAD file",
		logger.FieldFile, path,
		logger.FieldFormat, string(format))
	return nil
}

// readLAD reads a LAD file, picking the format from its extension unless
// format is set
func readLAD(path, format string) (*ladfile.File, error) {
	f, err := resolveFormat(format, path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	file, err := ladfile.Deserialize(data, f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}
	return file, nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(cmd, cfg)
	if err != nil {
		return err
	}

	if err := buildOnce(cmd.OutOrStdout(), opts); err != nil {
		return err
	}
	if !buildWatch {
		return nil
	}
	if opts.Output == "" {
		return errors.WithHint(errors.New("--watch needs an output file"), "add --output <file>")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watch(ctx, cmd, opts)
}

// buildOnce generates and writes the LAD file. Warnings go to stderr so
// they never mix with a LAD file written to stdout.
func buildOnce(w io.Writer, opts buildOptions) error {
	file, warnings, err := generate(opts)
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		pterm.Warning.WithWriter(os.Stderr).Println(warning.String())
	}
	return writeLAD(w, file, opts.Output, opts.Format)
}

// watch rebuilds whenever the config file or a local source package changes
func watch(ctx context.Context, cmd *cobra.Command, opts buildOptions) error {
	config := configPath
	if config == "" {
		config = am.FindProjectConfig()
	}
	paths := watchPaths(config, opts.SourceDocs)
	if len(paths) == 0 {
		return errors.WithHint(errors.New("nothing to watch"),
			"create a lad.toml or pass local --source-docs patterns such as ./prelude/...")
	}

	watcher, err := am.NewWatcher(func(changed string) {
		logger.Infow("Rebuilding LAD file", logger.FieldFile, changed)

		loaded, err := loadConfig()
		if err != nil {
			logger.Errorw("Rebuild skipped", logger.FieldError, err)
			return
		}
		next, err := resolveOptions(cmd, loaded)
		if err != nil {
			logger.Errorw("Rebuild skipped", logger.FieldError, err)
			return
		}
		if err := buildOnce(cmd.OutOrStdout(), next); err != nil {
			logger.Errorw("Rebuild failed", logger.FieldError, err)
		}
	}, paths...)
	if err != nil {
		return err
	}

	pterm.Info.Printf("Watching %s (Ctrl+C to stop)\n", strings.Join(paths, ", "))
	return watcher.Run(ctx)
}

// watchPaths lists the directories to watch: the one holding the config file
// and those named by local package patterns ("./pkg/..." watches ./pkg).
// Patterns naming module import paths are skipped.
func watchPaths(config string, patterns []string) []string {
	var paths []string
	seen := make(map[string]bool)
	add := func(dir string) {
		dir = filepath.Clean(dir)
		if seen[dir] {
			return
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return
		}
		seen[dir] = true
		paths = append(paths, dir)
	}

	if config != "" {
		add(filepath.Dir(config))
	}
	for _, pattern := range patterns {
		if !strings.HasPrefix(pattern, ".") && !filepath.IsAbs(pattern) {
			continue
		}
		add(strings.TrimSuffix(strings.TrimSuffix(pattern, "..."), "/"))
	}
	return paths
}
