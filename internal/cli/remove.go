// Package cli — remove.go implements the "iconset remove" command.
//
// The remove command deletes one imageset container — the directory, its
// physical files, and its descriptor — from a catalog root.
//
// By default, the command prompts for confirmation before proceeding.
// The --force flag skips the confirmation prompt.
package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adamore/iconset/internal/catalog"
	"github.com/adamore/iconset/internal/model"
)

// removeFlags holds the flag values for the remove command.
type removeFlags struct {
	// catalogRoot is the catalog directory the imageset lives under.
	catalogRoot string

	// force skips the interactive confirmation prompt when true.
	force bool
}

// NewRemoveCommand creates the "remove" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewRemoveCommand() *cobra.Command {
	flags := &removeFlags{}

	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove an imageset from an asset catalog",
		Long: `Remove the named imageset container from the catalog root, including
its image files and Contents.json descriptor.

Unless --force is specified, the command prompts for confirmation.

Examples:
  iconset remove gaming --catalog Assets.xcassets/ActivityIcons
  iconset remove gaming --catalog Assets.xcassets/ActivityIcons --force`,

		// Exactly one positional argument (imageset name) is required.
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args[0], flags)
		},
	}

	// Register command-specific flags.
	cmd.Flags().StringVar(&flags.catalogRoot, "catalog", "", "Catalog root directory (required)")
	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Remove without confirmation")
	_ = cmd.MarkFlagRequired("catalog")

	return cmd
}

// runRemove is the main logic function for the remove command.
// It locates the imageset, optionally prompts for confirmation, and
// deletes the container directory.
func runRemove(name string, flags *removeFlags) error {
	// The positional argument is the logical asset name; tolerate the
	// full directory name too, since tab completion produces it.
	name = strings.TrimSuffix(name, catalog.ContainerSuffix)

	dir := filepath.Join(flags.catalogRoot, name+catalog.ContainerSuffix)
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewCLIError(model.ExitImageSetNotFound,
				fmt.Sprintf("imageset %q not found in %s", name, flags.catalogRoot))
		}
		return model.WrapCLIError(model.ExitCatalogError,
			fmt.Sprintf("failed to stat %s", dir), err)
	}
	if !info.IsDir() {
		return model.NewCLIError(model.ExitImageSetNotFound,
			fmt.Sprintf("%s exists but is not an imageset directory", dir))
	}

	// Confirmation prompt, unless --force.
	if !flags.force {
		fmt.Printf("Remove imageset %q and all its files? [y/N]: ", name)
		reader := bufio.NewReader(os.Stdin)
		answer, readErr := reader.ReadString('\n')
		if readErr != nil {
			return model.WrapCLIError(model.ExitUserCancelled, "failed to read confirmation", readErr)
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			return model.NewCLIError(model.ExitUserCancelled, "removal cancelled")
		}
	}

	VerboseLog("Removing %s", dir)
	if err := os.RemoveAll(dir); err != nil {
		return model.WrapCLIError(model.ExitCatalogError,
			fmt.Sprintf("failed to remove %s", dir), err)
	}

	printRemoveResult(name, dir)
	return nil
}

// printRemoveResult outputs the remove result in text or JSON format.
func printRemoveResult(name, dir string) {
	if IsJSONOutput() {
		result := map[string]string{
			"removed": name,
			"dir":     dir,
		}
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}
	fmt.Printf("Removed imageset %q (%s)\n", name, dir)
}
