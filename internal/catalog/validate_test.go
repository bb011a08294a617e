package catalog

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writePNGFile writes a minimal valid PNG named name into dir.
func writePNGFile(t *testing.T, dir, name string) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	require.NoError(t, f.Close())
}

// findingMessages flattens findings of a given severity into their
// messages for Contains-style assertions.
func findingMessages(findings []Finding, sev Severity) []string {
	var msgs []string
	for _, f := range findings {
		if f.Severity == sev {
			msgs = append(msgs, f.Message)
		}
	}
	return msgs
}

// TestValidateImageSet_Clean verifies that a well-formed imageset
// produces no findings.
func TestValidateImageSet_Clean(t *testing.T) {
	dir := writeImageset(t, t.TempDir(), "sports", singleDescriptor)
	writePNGFile(t, dir, "sports.png")

	findings := ValidateImageSet(dir)
	assert.Empty(t, findings)
}

// TestValidateImageSet_MissingReferencedFile verifies the error for a
// descriptor entry whose file is gone.
func TestValidateImageSet_MissingReferencedFile(t *testing.T) {
	dir := writeImageset(t, t.TempDir(), "sports", singleDescriptor)

	findings := ValidateImageSet(dir)
	require.Len(t, findings, 1)
	assert.Equal(t, SeverityError, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "does not exist")
}

// TestValidateImageSet_NotAPNG verifies the error for a referenced file
// that does not decode as PNG.
func TestValidateImageSet_NotAPNG(t *testing.T) {
	dir := writeImageset(t, t.TempDir(), "sports", singleDescriptor)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sports.png"), []byte("jpeg actually"), 0o644))

	findings := ValidateImageSet(dir)
	require.NotEmpty(t, findings)
	assert.Contains(t, findings[0].Message, "not a decodable PNG")
}

// TestValidateImageSet_UnreadableDescriptor verifies that a broken
// descriptor short-circuits with a single error finding.
func TestValidateImageSet_UnreadableDescriptor(t *testing.T) {
	dir := writeImageset(t, t.TempDir(), "sports", `{broken`)

	findings := ValidateImageSet(dir)
	require.Len(t, findings, 1)
	assert.Equal(t, SeverityError, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "unreadable descriptor")
}

// TestValidateImageSet_InfoBlock verifies author/version checks.
func TestValidateImageSet_InfoBlock(t *testing.T) {
	descriptor := `{
  "images": [],
  "info": {
    "author": "handmade",
    "version": 2
  }
}
`
	dir := writeImageset(t, t.TempDir(), "sports", descriptor)
	findings := ValidateImageSet(dir)

	errors := findingMessages(findings, SeverityError)
	warnings := findingMessages(findings, SeverityWarning)

	require.Len(t, errors, 1)
	assert.Contains(t, errors[0], "info.version")
	// author mismatch and empty images are both warnings.
	assert.Len(t, warnings, 2)
}

// TestValidateImageSet_DuplicateSlot verifies detection of two entries
// claiming the same idiom+scale pair.
func TestValidateImageSet_DuplicateSlot(t *testing.T) {
	descriptor := `{
  "images": [
    {
      "filename": "a.png",
      "idiom": "universal",
      "scale": "1x"
    },
    {
      "filename": "b.png",
      "idiom": "universal",
      "scale": "1x"
    }
  ],
  "info": {
    "author": "xcode",
    "version": 1
  }
}
`
	dir := writeImageset(t, t.TempDir(), "sports", descriptor)
	writePNGFile(t, dir, "a.png")
	writePNGFile(t, dir, "b.png")

	findings := ValidateImageSet(dir)
	errors := findingMessages(findings, SeverityError)
	require.Len(t, errors, 1)
	assert.Contains(t, errors[0], "duplicate entry")
}

// TestValidateImageSet_UnknownIdiomAndScale verifies rejection of values
// outside the recognized sets.
func TestValidateImageSet_UnknownIdiomAndScale(t *testing.T) {
	descriptor := `{
  "images": [
    {
      "filename": "a.png",
      "idiom": "desktop",
      "scale": "4x"
    }
  ],
  "info": {
    "author": "xcode",
    "version": 1
  }
}
`
	dir := writeImageset(t, t.TempDir(), "sports", descriptor)
	writePNGFile(t, dir, "a.png")

	findings := ValidateImageSet(dir)
	errors := findingMessages(findings, SeverityError)
	require.Len(t, errors, 2)
	assert.Contains(t, errors[0], "unknown idiom")
	assert.Contains(t, errors[1], "unknown scale")
}

// TestValidateImageSet_SuffixMismatch verifies the warning for a
// filename whose @2x/@3x suffix contradicts the declared scale.
func TestValidateImageSet_SuffixMismatch(t *testing.T) {
	descriptor := `{
  "images": [
    {
      "filename": "a@3x.png",
      "idiom": "universal",
      "scale": "2x"
    }
  ],
  "info": {
    "author": "xcode",
    "version": 1
  }
}
`
	dir := writeImageset(t, t.TempDir(), "sports", descriptor)
	writePNGFile(t, dir, "a@3x.png")

	findings := ValidateImageSet(dir)
	warnings := findingMessages(findings, SeverityWarning)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "@3x")
}

// TestValidateImageSet_OrphanFile verifies the warning for PNGs nobody
// references.
func TestValidateImageSet_OrphanFile(t *testing.T) {
	dir := writeImageset(t, t.TempDir(), "sports", singleDescriptor)
	writePNGFile(t, dir, "sports.png")
	writePNGFile(t, dir, "leftover.png")

	findings := ValidateImageSet(dir)
	require.Len(t, findings, 1)
	assert.Equal(t, SeverityWarning, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "leftover.png")
}

// TestValidateImageSet_BadAssetName verifies the asset-name check on the
// directory name.
func TestValidateImageSet_BadAssetName(t *testing.T) {
	dir := writeImageset(t, t.TempDir(), "my icon", singleDescriptor)
	writePNGFile(t, dir, "sports.png")

	findings := ValidateImageSet(dir)
	errors := findingMessages(findings, SeverityError)
	require.NotEmpty(t, errors)
	assert.Contains(t, errors[0], "invalid asset name")
}

// TestValidateCatalog verifies catalog-wide validation and HasErrors.
func TestValidateCatalog(t *testing.T) {
	root := t.TempDir()

	clean := writeImageset(t, root, "music", singleDescriptor)
	// The clean set's descriptor references sports.png; give it the file
	// it actually names.
	require.NoError(t, os.Remove(filepath.Join(clean, DescriptorFileName)))
	require.NoError(t, os.WriteFile(filepath.Join(clean, DescriptorFileName), []byte(`{
  "images": [
    {
      "filename": "music.png",
      "idiom": "universal",
      "scale": "1x"
    }
  ],
  "info": {
    "author": "xcode",
    "version": 1
  }
}
`), 0o644))
	writePNGFile(t, clean, "music.png")

	writeImageset(t, root, "sports", singleDescriptor) // missing sports.png

	findings, err := ValidateCatalog(root)
	require.NoError(t, err)

	require.Len(t, findings, 1)
	assert.Equal(t, "sports", findings[0].ImageSet)
	assert.True(t, HasErrors(findings))

	// A warnings-only list is not an error state.
	assert.False(t, HasErrors([]Finding{{Severity: SeverityWarning}}))
}
