// Package importer implements the icon import operation: turning a flat
// directory of PNG files into imageset containers inside an Xcode asset
// catalog.
//
// The operation is deliberately synchronous and single-pass. Filesystem
// failures abort the run with the partial output left in place — there
// is no rollback, and overwriting an existing container silently
// replaces its contents. Re-running on an unchanged source directory
// produces byte-identical descriptors.
package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adamore/iconset/internal/catalog"
	"github.com/adamore/iconset/internal/imaging"
	"github.com/adamore/iconset/internal/model"
)

// Options configures a single import run.
type Options struct {
	// SourceDir is the directory holding the candidate PNG files.
	SourceDir string

	// DestRoot is the catalog directory the imageset containers are
	// created under. Created (recursively) if absent.
	DestRoot string

	// Exclude lists base names (extension stripped) that are skipped.
	Exclude []string

	// Mode selects the descriptor layout (and, for render mode, the
	// generation of downscaled variants).
	Mode model.ScaleMode

	// DryRun reports what would be imported without touching the
	// filesystem.
	DryRun bool
}

// ImportedSet describes one imageset produced by the run.
type ImportedSet struct {
	// Name is the logical asset name (source base name).
	Name string `json:"name"`

	// Dir is the imageset directory path.
	Dir string `json:"dir"`

	// Files lists the physical file names written into the container,
	// descriptor excluded.
	Files []string `json:"files"`
}

// Result summarizes an import run.
//
// The original importer this tool replaces reported the pre-exclusion
// candidate count, which overcounts when an excluded file is present.
// Result carries both numbers so neither is lost: Imported is what was
// actually processed, Skipped is what the exclusion list filtered out.
type Result struct {
	// Imported lists the produced imagesets in source-name order.
	Imported []ImportedSet `json:"imported"`

	// Skipped lists the source file names the exclusion list removed.
	Skipped []string `json:"skipped,omitempty"`

	// DestRoot echoes the destination root the run targeted.
	DestRoot string `json:"destRoot"`

	// DryRun records whether the filesystem was actually mutated.
	DryRun bool `json:"dryRun,omitempty"`
}

// Manager performs import runs.
//
// It is currently stateless — all inputs arrive via Options. The struct
// exists as a receiver to support future extensions such as an injected
// clock or progress callback without breaking callers.
type Manager struct{}

// NewManager creates a new import Manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// Run executes the import described by opts.
//
// Steps:
//  1. Validate options and stat the source directory. A missing source
//     aborts before the destination root is created.
//  2. List source entries, keep regular files with a .png extension
//     (case-insensitive), sorted by name for deterministic order.
//  3. Partition out candidates whose base name is excluded.
//  4. Ensure the destination root exists.
//  5. Per candidate: create the container, copy (or render) the files,
//     write the descriptor.
//
// The returned Result is valid only when err is nil.
func (m *Manager) Run(opts Options) (*Result, error) {
	if opts.SourceDir == "" {
		return nil, model.NewCLIError(model.ExitGeneralError, "source directory must not be empty")
	}
	if opts.DestRoot == "" {
		return nil, model.NewCLIError(model.ExitGeneralError, "destination root must not be empty")
	}
	if !opts.Mode.IsValid() {
		return nil, model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("invalid scale mode %q", opts.Mode))
	}

	// The source is checked before any destination mutation so that a
	// typo'd source path cannot leave an empty catalog root behind.
	info, err := os.Stat(opts.SourceDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(model.ExitSourceNotFound,
				fmt.Sprintf("source directory not found: %s", opts.SourceDir), err)
		}
		return nil, model.WrapCLIError(model.ExitSourceNotFound,
			fmt.Sprintf("failed to stat source directory %s", opts.SourceDir), err)
	}
	if !info.IsDir() {
		return nil, model.NewCLIError(model.ExitSourceNotFound,
			fmt.Sprintf("source path is not a directory: %s", opts.SourceDir))
	}

	candidates, skipped, err := m.scanSource(opts.SourceDir, opts.Exclude)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Skipped:  skipped,
		DestRoot: opts.DestRoot,
		DryRun:   opts.DryRun,
	}

	if opts.DryRun {
		// Report the would-be imagesets without creating anything.
		for _, name := range candidates {
			base := strings.TrimSuffix(name, filepath.Ext(name))
			result.Imported = append(result.Imported, ImportedSet{
				Name: base,
				Dir:  filepath.Join(opts.DestRoot, base+catalog.ContainerSuffix),
			})
		}
		return result, nil
	}

	if err := os.MkdirAll(opts.DestRoot, 0o755); err != nil {
		return nil, model.WrapCLIError(model.ExitCatalogError,
			fmt.Sprintf("failed to create destination root %s", opts.DestRoot), err)
	}

	for _, name := range candidates {
		set, err := m.importOne(opts, name)
		if err != nil {
			return nil, err
		}
		result.Imported = append(result.Imported, set)
	}

	return result, nil
}

// scanSource lists the source directory and splits the .png entries into
// import candidates and excluded names. Both slices hold source file
// names (with extension), sorted.
func (m *Manager) scanSource(sourceDir string, exclude []string) (candidates, skipped []string, err error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, nil, model.WrapCLIError(model.ExitSourceNotFound,
			fmt.Sprintf("failed to read source directory %s", sourceDir), err)
	}

	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".png") {
			continue
		}

		base := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if excluded[base] {
			skipped = append(skipped, entry.Name())
			continue
		}
		candidates = append(candidates, entry.Name())
	}

	// ReadDir returns entries sorted already, but sort explicitly so the
	// deterministic-order contract does not depend on that detail.
	sort.Strings(candidates)
	sort.Strings(skipped)
	return candidates, skipped, nil
}

// importOne creates the container for one source file, copies or renders
// its physical files, and writes the descriptor.
func (m *Manager) importOne(opts Options, filename string) (ImportedSet, error) {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	dir := filepath.Join(opts.DestRoot, base+catalog.ContainerSuffix)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ImportedSet{}, model.WrapCLIError(model.ExitCatalogError,
			fmt.Sprintf("failed to create imageset directory %s", dir), err)
	}

	srcPath := filepath.Join(opts.SourceDir, filename)

	var (
		descriptor *catalog.Descriptor
		files      []string
		err        error
	)

	if opts.Mode == model.ModeRender {
		files, descriptor, err = m.renderVariants(srcPath, dir, base)
	} else {
		// Copy the candidate's bytes into the container, preserving the
		// original filename.
		if copyErr := copyFile(srcPath, filepath.Join(dir, filename)); copyErr != nil {
			return ImportedSet{}, model.WrapCLIError(model.ExitCatalogError,
				fmt.Sprintf("failed to copy %s into %s", filename, dir), copyErr)
		}
		files = []string{filename}
		descriptor, err = catalog.NewDescriptor(filename, opts.Mode)
	}
	if err != nil {
		return ImportedSet{}, model.WrapCLIError(model.ExitCatalogError,
			fmt.Sprintf("failed to import %s", filename), err)
	}

	if err := catalog.WriteDescriptor(dir, descriptor); err != nil {
		return ImportedSet{}, model.WrapCLIError(model.ExitCatalogError,
			fmt.Sprintf("failed to write descriptor for %s", base), err)
	}

	return ImportedSet{Name: base, Dir: dir, Files: files}, nil
}

// renderVariants implements render mode for one candidate: the source is
// the 3x master, copied in under an @3x suffix, with 2x and 1x variants
// rendered from it.
func (m *Manager) renderVariants(srcPath, dir, base string) ([]string, *catalog.Descriptor, error) {
	filenames := map[model.Scale]string{
		model.Scale1x: base + ".png",
		model.Scale2x: base + "@2x.png",
		model.Scale3x: base + "@3x.png",
	}

	if err := copyFile(srcPath, filepath.Join(dir, filenames[model.Scale3x])); err != nil {
		return nil, nil, err
	}
	for _, scale := range []model.Scale{model.Scale2x, model.Scale1x} {
		dst := filepath.Join(dir, filenames[scale])
		if err := imaging.RenderScaled(srcPath, dst, scale.Factor()); err != nil {
			return nil, nil, err
		}
	}

	descriptor, err := catalog.NewRenderedDescriptor(filenames)
	if err != nil {
		return nil, nil, err
	}

	files := []string{
		filenames[model.Scale1x],
		filenames[model.Scale2x],
		filenames[model.Scale3x],
	}
	return files, descriptor, nil
}

// copyFile streams the bytes of src into dst, creating or truncating dst
// with 0644 permissions. io.Copy avoids loading the whole file into
// memory.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", src, err)
	}
	defer func() { _ = srcFile.Close() }()

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dst, err)
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = dstFile.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	return dstFile.Close()
}
