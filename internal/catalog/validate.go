// validate.go provides validation of imagesets against the descriptor
// contract Xcode enforces at build time.
//
// Catching problems here — a descriptor referencing a file that was
// renamed, a PNG that is actually a JPEG with the wrong extension, two
// entries fighting over the same density slot — is much cheaper than
// discovering them as asset-catalog compile errors inside Xcode.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adamore/iconset/internal/imaging"
	"github.com/adamore/iconset/internal/model"
)

// Severity classifies a validation finding.
type Severity string

const (
	// SeverityError marks findings that will break the Xcode build or
	// silently drop the asset.
	SeverityError Severity = "error"

	// SeverityWarning marks findings that Xcode tolerates but that
	// usually indicate a mistake (e.g., an orphan PNG nobody references).
	SeverityWarning Severity = "warning"
)

// Finding represents a single validation result for an imageset.
type Finding struct {
	// ImageSet is the logical asset name the finding belongs to.
	ImageSet string `json:"imageSet"`

	// Severity is error or warning.
	Severity Severity `json:"severity"`

	// Message describes the problem.
	Message string `json:"message"`
}

// String formats the finding for text output: "sports: error: ...".
func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: %s", f.ImageSet, f.Severity, f.Message)
}

// ValidateImageSet checks one imageset directory and returns its findings.
//
// Checks performed:
//   - asset name is a valid imageset name
//   - descriptor exists and parses
//   - info block carries the expected author/version
//   - every entry's idiom and scale are recognized values
//   - no two entries claim the same idiom+scale slot
//   - every referenced file exists inside the imageset directory
//   - every referenced file decodes as a PNG header
//   - density suffixes in filenames agree with the declared scale
//   - physical PNGs not referenced by any entry are flagged (warning)
func ValidateImageSet(dir string) []Finding {
	name := strings.TrimSuffix(filepath.Base(dir), ContainerSuffix)
	var findings []Finding

	addf := func(sev Severity, format string, args ...interface{}) {
		findings = append(findings, Finding{
			ImageSet: name,
			Severity: sev,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	if err := model.ValidateAssetName(name); err != nil {
		addf(SeverityError, "%v", err)
	}

	d, err := LoadDescriptor(filepath.Join(dir, DescriptorFileName))
	if err != nil {
		addf(SeverityError, "unreadable descriptor: %v", err)
		// Without a descriptor there is nothing further to cross-check.
		return findings
	}

	if d.Info.Author != descriptorAuthor {
		addf(SeverityWarning, "info.author is %q, expected %q", d.Info.Author, descriptorAuthor)
	}
	if d.Info.Version != descriptorVersion {
		addf(SeverityError, "info.version is %d, expected %d", d.Info.Version, descriptorVersion)
	}
	if len(d.Images) == 0 {
		addf(SeverityWarning, "descriptor declares no images")
	}

	// Track referenced files for orphan detection and idiom+scale slots
	// for duplicate detection.
	referenced := make(map[string]bool)
	slots := make(map[string]bool)

	for i, v := range d.Images {
		if !v.Idiom.IsValid() {
			addf(SeverityError, "images[%d]: unknown idiom %q", i, v.Idiom)
		}
		if !v.Scale.IsValid() {
			addf(SeverityError, "images[%d]: unknown scale %q", i, v.Scale)
		}

		slot := fmt.Sprintf("%s/%s", v.Idiom, v.Scale)
		if slots[slot] {
			addf(SeverityError, "images[%d]: duplicate entry for idiom %q scale %q", i, v.Idiom, v.Scale)
		}
		slots[slot] = true

		if v.IsPlaceholder() {
			continue
		}
		referenced[v.Filename] = true

		// A density suffix in the filename that contradicts the declared
		// scale is almost always a slot mixup.
		if _, suffixScale := model.ScaleFromFilename(v.Filename); suffixScale != model.Scale1x &&
			v.Scale != model.ScaleNone && suffixScale != v.Scale {
			addf(SeverityWarning, "images[%d]: filename %q carries a @%s suffix but is declared at scale %q",
				i, v.Filename, suffixScale, v.Scale)
		}

		path := filepath.Join(dir, v.Filename)
		if _, statErr := os.Stat(path); statErr != nil {
			addf(SeverityError, "images[%d]: referenced file %q does not exist", i, v.Filename)
			continue
		}

		if _, _, probeErr := imaging.Probe(path); probeErr != nil {
			addf(SeverityError, "images[%d]: %q is not a decodable PNG: %v", i, v.Filename, probeErr)
		}
	}

	// Orphan check: PNGs sitting in the directory that no entry references.
	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		addf(SeverityError, "failed to read imageset directory: %v", readErr)
		return findings
	}
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == DescriptorFileName {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".png") {
			continue
		}
		if !referenced[entry.Name()] {
			addf(SeverityWarning, "file %q is not referenced by the descriptor", entry.Name())
		}
	}

	return findings
}

// ValidateCatalog scans the catalog root and validates every imageset.
// Findings are returned in imageset-name order (Scan sorts its results).
func ValidateCatalog(root string) ([]Finding, error) {
	sets, _, err := Scan(root)
	if err != nil {
		return nil, err
	}

	var findings []Finding
	for _, set := range sets {
		findings = append(findings, ValidateImageSet(set.Dir)...)
	}
	return findings, nil
}

// HasErrors reports whether any finding in the list is error-level.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
