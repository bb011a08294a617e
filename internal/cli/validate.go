// Package cli — validate.go implements the "iconset validate" command.
//
// The validate command checks every imageset under a catalog root against
// the descriptor contract Xcode enforces at build time: parsable
// Contents.json, correct info block, referenced files present and
// decodable as PNG, no duplicate density slots, no orphan files.
//
// Error-level findings set exit code 5 so CI can gate on catalog health;
// warnings alone exit 0.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adamore/iconset/internal/catalog"
	"github.com/adamore/iconset/internal/model"
)

// validateFlags holds the flag values for the validate command.
type validateFlags struct {
	// strict treats warnings as errors for exit-code purposes.
	strict bool
}

// NewValidateCommand creates the "validate" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewValidateCommand() *cobra.Command {
	flags := &validateFlags{}

	cmd := &cobra.Command{
		Use:   "validate <catalog-root>",
		Short: "Validate the imagesets in an asset catalog",
		Long: `Validate every imageset under a catalog root.

Findings are reported per imageset at error or warning severity.
The command exits non-zero when any error-level finding exists
(or any finding at all with --strict).

Examples:
  iconset validate Assets.xcassets/ActivityIcons
  iconset validate Assets.xcassets/ActivityIcons --strict
  iconset validate Assets.xcassets/ActivityIcons --json`,

		// Exactly one positional argument (catalog root) is required.
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Treat warnings as errors")

	return cmd
}

// runValidate is the main logic function for the validate command.
func runValidate(root string, flags *validateFlags) error {
	findings, err := catalog.ValidateCatalog(root)
	if err != nil {
		return err
	}
	VerboseLog("Collected %d finding(s)", len(findings))

	if IsJSONOutput() {
		// Marshal an empty array (not null) when the catalog is clean.
		out := findings
		if out == nil {
			out = []catalog.Finding{}
		}
		data, marshalErr := json.MarshalIndent(out, "", "  ")
		if marshalErr != nil {
			return fmt.Errorf("failed to serialize findings: %w", marshalErr)
		}
		fmt.Println(string(data))
	} else {
		for _, f := range findings {
			fmt.Println(f.String())
		}
		if len(findings) == 0 {
			fmt.Println("Catalog is valid.")
		}
	}

	failed := catalog.HasErrors(findings) || (flags.strict && len(findings) > 0)
	if failed {
		return model.NewCLIError(model.ExitValidationFailed,
			fmt.Sprintf("validation failed with %d finding(s)", len(findings)))
	}
	return nil
}
