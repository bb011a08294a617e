// Package cli — import.go implements the "iconset import" command.
//
// The import command is the primary user-facing operation. It turns a
// flat directory of PNG icons into imageset containers inside an Xcode
// asset catalog.
//
// Orchestration steps:
//  1. Load the optional config file and merge flags over it
//  2. Resolve source directory, destination root, exclusions, scale mode
//  3. Run the importer (scan → filter → copy/render → write descriptors)
//  4. Output results (text or JSON)
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adamore/iconset/internal/config"
	"github.com/adamore/iconset/internal/importer"
	"github.com/adamore/iconset/internal/model"
)

// importFlags holds the flag values for the import command.
// These are bound to cobra flags in NewImportCommand.
type importFlags struct {
	configPath string   // --config: explicit config file path
	exclude    []string // --exclude: base names to skip
	scaleMode  string   // --scale-mode: descriptor layout
	dryRun     bool     // --dry-run: report without writing
}

// NewImportCommand creates the "import" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewImportCommand() *cobra.Command {
	flags := &importFlags{}

	cmd := &cobra.Command{
		Use:   "import [source-dir] [dest-root]",
		Short: "Import a directory of PNG icons into an asset catalog",
		Long: `Import every .png file from the source directory into the destination
catalog root, creating one <name>.imageset container per icon with the
copied file and a generated Contents.json descriptor.

Source and destination may come from positional arguments or from an
iconset.yaml config file; arguments win. Base names on the exclusion
list are skipped (default: gaming).

Scale modes:
  single        the file fills the universal 1x slot (default)
  universal     the file is declared density-independent (no scale)
  placeholders  1x entry plus empty 2x/3x slots
  render        source is the 3x master; 2x and 1x variants are rendered

Examples:
  iconset import icons/realistic Assets.xcassets/ActivityIcons
  iconset import icons/ catalog/ --exclude gaming --exclude draft
  iconset import icons/ catalog/ --scale-mode render
  iconset import --config team-iconset.yaml
  iconset import icons/ catalog/ --dry-run`,

		// Source and destination can both come from the config file, so
		// zero to two positional arguments are accepted.
		Args: cobra.MaximumNArgs(2),

		// RunE is used instead of Run so we can return errors. Cobra will
		// pass them to the Execute error handler in root.go.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(args, flags)
		},
	}

	// Register command-specific flags.
	cmd.Flags().StringVar(&flags.configPath, "config", "", "Config file path (default: ./"+config.DefaultFileName+")")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "Base name to skip (repeatable; overrides config)")
	cmd.Flags().StringVar(&flags.scaleMode, "scale-mode", "", "Descriptor layout: single, universal, placeholders, render")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Report what would be imported without writing")

	return cmd
}

// runImport is the main orchestration function for the import command.
func runImport(args []string, flags *importFlags) error {
	// Step 1: Load configuration. An explicit --config path must exist;
	// the default working-directory lookup may be absent.
	cfgPath := flags.configPath
	explicit := cfgPath != ""
	if !explicit {
		cfgPath = config.DefaultFileName
	}
	cfg, err := config.Load(cfgPath, explicit)
	if err != nil {
		return err
	}
	VerboseLog("Config loaded (file: %s)", cfgPath)

	// Step 2: Resolve inputs with flags > config > defaults precedence.
	source := cfg.Source
	dest := cfg.Destination
	if len(args) >= 1 {
		source = args[0]
	}
	if len(args) >= 2 {
		dest = args[1]
	}
	if source == "" {
		return model.NewCLIError(model.ExitGeneralError,
			"no source directory: pass it as the first argument or set \"source\" in "+config.DefaultFileName)
	}
	if dest == "" {
		return model.NewCLIError(model.ExitGeneralError,
			"no destination root: pass it as the second argument or set \"destination\" in "+config.DefaultFileName)
	}

	exclude := cfg.Exclude
	if flags.exclude != nil {
		exclude = flags.exclude
	}

	modeStr := cfg.ScaleMode
	if flags.scaleMode != "" {
		modeStr = flags.scaleMode
	}
	mode, err := model.ParseScaleMode(modeStr)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "invalid --scale-mode", err)
	}

	VerboseLog("Source:      %s", source)
	VerboseLog("Destination: %s", dest)
	VerboseLog("Exclusions:  %s", strings.Join(exclude, ", "))
	VerboseLog("Scale mode:  %s", mode)

	// Step 3: Run the import.
	result, err := importer.NewManager().Run(importer.Options{
		SourceDir: source,
		DestRoot:  dest,
		Exclude:   exclude,
		Mode:      mode,
		DryRun:    flags.dryRun,
	})
	if err != nil {
		return err
	}

	// Step 4: Output results.
	printImportResult(result)
	return nil
}

// printImportResult outputs the import results in text or JSON format.
func printImportResult(result *importer.Result) {
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}

	verb := "Imported"
	if result.DryRun {
		verb = "Would import"
	}

	for _, set := range result.Imported {
		fmt.Printf("  %-20s → %s\n", set.Name, set.Dir)
	}

	summary := fmt.Sprintf("%s %d icon(s) into %s", verb, len(result.Imported), result.DestRoot)
	if len(result.Skipped) > 0 {
		summary += fmt.Sprintf(" (skipped %d excluded: %s)",
			len(result.Skipped), strings.Join(result.Skipped, ", "))
	}
	fmt.Println(summary)
}
