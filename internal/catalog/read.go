// read.go handles loading descriptors and discovering imagesets in an
// existing asset catalog.
//
// Descriptor files written by this tool are strict JSON, but catalogs get
// hand-edited: comments and trailing commas creep in and Xcode tolerates
// them poorly while humans add them anyway. Loading therefore goes through
// github.com/tidwall/jsonc to strip JSONC constructs before parsing with
// the standard encoding/json library. Generation always emits strict JSON.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adamore/iconset/internal/model"
	"github.com/tidwall/jsonc"
)

// LoadDescriptor reads a Contents.json file, strips JSONC comments, and
// parses it into a Descriptor struct.
//
// Returns a CLIError with ExitCatalogError if the file does not exist or
// cannot be parsed.
func LoadDescriptor(path string) (*Descriptor, error) {
	// os.ReadFile is preferred over os.Open+io.ReadAll because it handles
	// the open-read-close lifecycle in a single call.
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitCatalogError,
				fmt.Sprintf("descriptor not found: %s", path),
				err,
			)
		}
		return nil, model.WrapCLIError(model.ExitCatalogError,
			fmt.Sprintf("failed to read descriptor %s", path), err)
	}

	// Strip comments (// and /* */) and trailing commas before parsing.
	cleanJSON := jsonc.ToJSON(data)

	// encoding/json silently ignores fields not defined in the struct,
	// which is the desired behavior: Xcode writes many descriptor fields
	// (template-rendering-intent, preserves-vector-representation, ...)
	// that this tool does not interpret.
	var d Descriptor
	if err := json.Unmarshal(cleanJSON, &d); err != nil {
		return nil, model.WrapCLIError(model.ExitCatalogError,
			fmt.Sprintf("failed to parse descriptor %s", path), err)
	}

	return &d, nil
}

// LoadImageSet reads the imageset at the given directory: its name is
// derived from the directory, its variants from the descriptor.
func LoadImageSet(dir string) (*model.ImageSet, error) {
	d, err := LoadDescriptor(filepath.Join(dir, DescriptorFileName))
	if err != nil {
		return nil, err
	}

	return &model.ImageSet{
		Name:     strings.TrimSuffix(filepath.Base(dir), ContainerSuffix),
		Dir:      dir,
		Variants: d.Images,
	}, nil
}

// Scan discovers all imagesets directly under the given catalog root.
//
// Only directories whose name ends in ".imageset" are considered; other
// entries (Contents.json of the root group, nested groups, loose files)
// are ignored. Results are sorted by name for deterministic output.
//
// Imagesets are returned even when their descriptor is broken — Variants
// is nil in that case — so that callers can report them instead of
// silently skipping them. The returned loadErrs map carries the
// per-imageset load failure keyed by imageset name.
func Scan(root string) (sets []*model.ImageSet, loadErrs map[string]error, err error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, model.WrapCLIError(model.ExitCatalogError,
				fmt.Sprintf("catalog root not found: %s", root), err)
		}
		return nil, nil, model.WrapCLIError(model.ExitCatalogError,
			fmt.Sprintf("failed to read catalog root %s", root), err)
	}

	loadErrs = make(map[string]error)

	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasSuffix(entry.Name(), ContainerSuffix) {
			continue
		}

		dir := filepath.Join(root, entry.Name())
		set, loadErr := LoadImageSet(dir)
		if loadErr != nil {
			// Keep a stub entry so callers can still report the imageset.
			name := strings.TrimSuffix(entry.Name(), ContainerSuffix)
			sets = append(sets, &model.ImageSet{Name: name, Dir: dir})
			loadErrs[name] = loadErr
			continue
		}
		sets = append(sets, set)
	}

	sort.Slice(sets, func(i, j int) bool {
		return sets[i].Name < sets[j].Name
	})

	return sets, loadErrs, nil
}
