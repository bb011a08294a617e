// Package cli — list.go implements the "iconset list" command.
//
// The list command displays the imagesets under a catalog root by
// scanning for *.imageset directories and loading their descriptors.
// Results are presented as a text table or JSON array, depending on the
// --json flag. An optional --scale flag filters to imagesets that fill
// a specific density slot.
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adamore/iconset/internal/catalog"
	"github.com/adamore/iconset/internal/model"
)

// listFlags holds the flag values for the list command.
// These are bound to cobra flags in NewListCommand.
type listFlags struct {
	// scale filters imagesets to those declaring the given density.
	// Valid values: "1x", "2x", "3x", "all" (default).
	scale string
}

// NewListCommand creates the "list" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list <catalog-root>",
		Short: "List the imagesets in an asset catalog",
		Long: `List the imagesets under a catalog root directory.

Each imageset is shown with its name, the number of physical files it
references, and the density slots its descriptor fills.

Examples:
  iconset list Assets.xcassets/ActivityIcons
  iconset list Assets.xcassets/ActivityIcons --scale 2x
  iconset list Assets.xcassets/ActivityIcons --json`,

		// Exactly one positional argument (catalog root) is required.
		Args: cobra.ExactArgs(1),

		// RunE returns an error to the root command's error handler.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args[0], flags)
		},
	}

	// Register the --scale flag with a default value of "all".
	cmd.Flags().StringVar(&flags.scale, "scale", "all",
		"Filter by declared scale: 1x, 2x, 3x, all (default: all)")

	return cmd
}

// runList is the main logic function for the list command.
// It scans the catalog root, applies the scale filter, and outputs
// results in the appropriate format.
func runList(root string, flags *listFlags) error {
	// Step 1: Validate the --scale flag value.
	var scaleFilter model.Scale
	if flags.scale != "all" {
		parsed, err := model.ParseScale(flags.scale)
		if err != nil || parsed == model.ScaleNone {
			return model.NewCLIError(model.ExitGeneralError,
				fmt.Sprintf("invalid scale filter %q: valid values are 1x, 2x, 3x, all", flags.scale))
		}
		scaleFilter = parsed
	}

	// Step 2: Scan the catalog root. Broken imagesets come back as stub
	// entries so they can be shown instead of silently vanishing.
	sets, loadErrs, err := catalog.Scan(root)
	if err != nil {
		return err
	}
	VerboseLog("Found %d imageset(s) under %s", len(sets), root)

	// Step 3: Apply the scale filter.
	if scaleFilter != model.ScaleNone {
		filtered := sets[:0]
		for _, set := range sets {
			for _, s := range set.Scales() {
				if s == scaleFilter {
					filtered = append(filtered, set)
					break
				}
			}
		}
		sets = filtered
	}

	// Step 4: Output.
	if IsJSONOutput() {
		return printListJSON(sets, loadErrs)
	}
	printListText(sets, loadErrs)
	return nil
}

// printListJSON outputs the imagesets as a structured JSON array.
func printListJSON(sets []*model.ImageSet, loadErrs map[string]error) error {
	type setJSON struct {
		Name   string   `json:"name"`
		Dir    string   `json:"dir"`
		Files  []string `json:"files"`
		Scales []string `json:"scales"`
		Error  string   `json:"error,omitempty"`
	}

	out := make([]setJSON, 0, len(sets))
	for _, set := range sets {
		entry := setJSON{Name: set.Name, Dir: set.Dir, Files: []string{}, Scales: []string{}}
		for _, v := range set.Variants {
			if !v.IsPlaceholder() {
				entry.Files = append(entry.Files, v.Filename)
			}
		}
		for _, s := range set.Scales() {
			entry.Scales = append(entry.Scales, s.String())
		}
		if loadErr, ok := loadErrs[set.Name]; ok {
			entry.Error = loadErr.Error()
		}
		out = append(out, entry)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize list output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// printListText outputs the imagesets as a human-readable table.
func printListText(sets []*model.ImageSet, loadErrs map[string]error) {
	if len(sets) == 0 {
		fmt.Println("No imagesets found.")
		return
	}

	fmt.Printf("%-24s %-6s %s\n", "NAME", "FILES", "SCALES")
	for _, set := range sets {
		if loadErr, ok := loadErrs[set.Name]; ok {
			fmt.Printf("%-24s %-6s (unreadable: %v)\n", set.Name, "-", loadErr)
			continue
		}

		files := 0
		for _, v := range set.Variants {
			if !v.IsPlaceholder() {
				files++
			}
		}

		scales := make([]string, 0, 3)
		for _, s := range set.Scales() {
			scales = append(scales, s.String())
		}
		scaleDesc := strings.Join(scales, ",")
		if scaleDesc == "" {
			scaleDesc = "universal"
		}

		fmt.Printf("%-24s %-6d %s\n", set.Name, files, scaleDesc)
	}
	fmt.Printf("\n%d imageset(s)\n", len(sets))
}
