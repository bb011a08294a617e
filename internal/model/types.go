// Package model defines the domain types for the iconset CLI.
//
// All entities in this package represent the asset-catalog concepts the
// importer works with: imagesets, image variants (idiom + scale), and the
// scale modes that control descriptor generation. These types are used
// throughout the application for passing data between components.
//
// Key design decision: there is no persistent state beyond the asset
// catalog itself. Everything in this package is reconstructed from the
// filesystem (source directory listing or Contents.json descriptors)
// during a single command invocation.
package model

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Idiom is Xcode's device-class tag for an image variant.
//
// The importer only ever emits "universal", but validation of existing
// catalogs must accept the other device classes Xcode writes, so the
// full set is defined here.
type Idiom string

const (
	// IdiomUniversal covers all device classes. This is the only idiom
	// the importer generates.
	IdiomUniversal Idiom = "universal"

	// IdiomIPhone targets iPhone-class devices.
	IdiomIPhone Idiom = "iphone"

	// IdiomIPad targets iPad-class devices.
	IdiomIPad Idiom = "ipad"

	// IdiomMac targets macOS.
	IdiomMac Idiom = "mac"

	// IdiomWatch targets watchOS.
	IdiomWatch Idiom = "watch"

	// IdiomTV targets tvOS.
	IdiomTV Idiom = "tv"
)

// String returns the string representation of Idiom.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI commands.
func (i Idiom) String() string {
	return string(i)
}

// IsValid checks whether the Idiom value is one of the device classes
// Xcode recognizes in a Contents.json descriptor.
func (i Idiom) IsValid() bool {
	switch i {
	case IdiomUniversal, IdiomIPhone, IdiomIPad, IdiomMac, IdiomWatch, IdiomTV:
		return true
	default:
		return false
	}
}

// ParseIdiom converts a string to an Idiom.
// Returns an error if the string does not match any known device class.
func ParseIdiom(s string) (Idiom, error) {
	idiom := Idiom(strings.ToLower(s))
	if !idiom.IsValid() {
		return "", fmt.Errorf("invalid idiom: %q (valid: universal, iphone, ipad, mac, watch, tv)", s)
	}
	return idiom, nil
}

// Scale is the pixel-density multiplier Xcode associates with an image
// variant. The empty value represents a density-independent entry — a
// descriptor entry without a scale key.
type Scale string

const (
	// ScaleNone marks a descriptor entry without a scale key
	// (a universal, density-independent image).
	ScaleNone Scale = ""

	// Scale1x is base pixel density.
	Scale1x Scale = "1x"

	// Scale2x is double (Retina) pixel density.
	Scale2x Scale = "2x"

	// Scale3x is triple pixel density (Plus/Pro phones).
	Scale3x Scale = "3x"
)

// String returns the string representation of Scale.
func (s Scale) String() string {
	return string(s)
}

// IsValid checks whether the Scale value is one of the densities Xcode
// recognizes. The empty scale is valid: it denotes a density-independent
// entry.
func (s Scale) IsValid() bool {
	switch s {
	case ScaleNone, Scale1x, Scale2x, Scale3x:
		return true
	default:
		return false
	}
}

// Factor returns the numeric multiplier for the scale (1, 2, or 3).
// The empty scale reports 1, matching how Xcode treats scale-less entries.
func (s Scale) Factor() int {
	switch s {
	case Scale2x:
		return 2
	case Scale3x:
		return 3
	default:
		return 1
	}
}

// ParseScale converts a string to a Scale.
// Returns an error if the string does not match any valid density.
func ParseScale(s string) (Scale, error) {
	scale := Scale(strings.ToLower(s))
	if !scale.IsValid() {
		return "", fmt.Errorf("invalid scale: %q (valid: 1x, 2x, 3x, or empty)", s)
	}
	return scale, nil
}

// ScaleFromFilename detects the density suffix convention in a PNG
// filename (icon@2x.png → Scale2x) and returns the scale together with
// the base name with the suffix and extension stripped.
//
// Files without a recognized suffix report Scale1x, matching Xcode's
// interpretation of unsuffixed assets.
func ScaleFromFilename(filename string) (base string, scale Scale) {
	base = strings.TrimSuffix(filename, filepath.Ext(filename))
	switch {
	case strings.HasSuffix(base, "@2x"):
		return strings.TrimSuffix(base, "@2x"), Scale2x
	case strings.HasSuffix(base, "@3x"):
		return strings.TrimSuffix(base, "@3x"), Scale3x
	default:
		return base, Scale1x
	}
}

// ScaleMode controls the shape of the generated Contents.json descriptor.
//
// The modes correspond to the descriptor layouts a single source PNG can
// be imported under:
//   - single:       the file fills the 1x slot and nothing else
//   - universal:    the file is declared density-independent (no scale key)
//   - placeholders: the file fills 1x, with empty 2x and 3x slots declared
//   - render:       the file is treated as the 3x master; real 2x and 1x
//     variants are rendered and all three slots are filled
type ScaleMode string

const (
	// ModeSingle generates a descriptor with one 1x entry.
	// This is the default import mode.
	ModeSingle ScaleMode = "single"

	// ModeUniversal generates a descriptor with one scale-less entry.
	ModeUniversal ScaleMode = "universal"

	// ModePlaceholders generates the 1x entry plus empty 2x/3x slots,
	// leaving room for higher-density variants to be dropped in later.
	ModePlaceholders ScaleMode = "placeholders"

	// ModeRender treats the source PNG as the 3x master and renders
	// downscaled 2x and 1x variants alongside it.
	ModeRender ScaleMode = "render"
)

// String returns the string representation of ScaleMode.
func (m ScaleMode) String() string {
	return string(m)
}

// IsValid checks whether the ScaleMode value is one of the defined modes.
func (m ScaleMode) IsValid() bool {
	switch m {
	case ModeSingle, ModeUniversal, ModePlaceholders, ModeRender:
		return true
	default:
		return false
	}
}

// ParseScaleMode converts a string to a ScaleMode.
// Returns an error if the string does not match any defined mode.
func ParseScaleMode(s string) (ScaleMode, error) {
	mode := ScaleMode(strings.ToLower(s))
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid scale mode: %q (valid: single, universal, placeholders, render)", s)
	}
	return mode, nil
}

// ImageVariant describes one physical file (or empty slot) inside an
// imageset, as referenced by a descriptor entry.
type ImageVariant struct {
	// Filename is the physical file name inside the imageset directory.
	// Empty for placeholder slots that declare a scale without a file.
	Filename string `json:"filename,omitempty"`

	// Idiom is the device class this variant applies to.
	Idiom Idiom `json:"idiom"`

	// Scale is the pixel density this variant fills.
	// Empty for density-independent entries.
	Scale Scale `json:"scale,omitempty"`
}

// IsPlaceholder reports whether the variant declares a slot without
// referencing a physical file.
func (v ImageVariant) IsPlaceholder() bool {
	return v.Filename == ""
}

// ImageSet represents one logical image in the asset catalog: a
// <name>.imageset directory holding physical files and a Contents.json
// descriptor referencing them.
type ImageSet struct {
	// Name is the logical asset name (directory name minus ".imageset").
	Name string `json:"name"`

	// Dir is the absolute path to the imageset directory.
	Dir string `json:"dir"`

	// Variants holds the descriptor's image entries in declaration order.
	Variants []ImageVariant `json:"variants,omitempty"`
}

// ContainerName returns the directory name for the imageset
// ("<name>.imageset").
func (s *ImageSet) ContainerName() string {
	return s.Name + ".imageset"
}

// Scales returns the distinct non-empty scales declared by the
// imageset's variants, in declaration order.
func (s *ImageSet) Scales() []Scale {
	seen := make(map[Scale]bool)
	var scales []Scale
	for _, v := range s.Variants {
		if v.Scale == ScaleNone || seen[v.Scale] {
			continue
		}
		seen[v.Scale] = true
		scales = append(scales, v.Scale)
	}
	return scales
}

// assetNameRegex validates asset names: alphanumeric, hyphens and
// underscores, must start and end with alphanumeric.
var assetNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*[a-zA-Z0-9]$|^[a-zA-Z0-9]$`)

// ValidateAssetName checks if the given name is a valid imageset name.
// Valid names contain only alphanumeric characters, hyphens and
// underscores, and must start/end with an alphanumeric character.
// Xcode itself is more permissive, but names outside this set break
// asset-symbol code generation and are rejected here.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("asset name must not be empty")
	}
	if !assetNameRegex.MatchString(name) {
		return fmt.Errorf("invalid asset name %q: must contain only alphanumeric characters, hyphens and underscores, and start/end with alphanumeric", name)
	}
	return nil
}

// ExitCode defines standard CLI exit codes. These codes allow scripts
// and CI systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitSourceNotFound indicates the source icon directory does not
	// exist or could not be read.
	ExitSourceNotFound ExitCode = 2

	// ExitCatalogError indicates the asset catalog could not be read or
	// written (bad descriptor, filesystem failure under the catalog root).
	ExitCatalogError ExitCode = 3

	// ExitImageSetNotFound indicates the named imageset does not exist
	// in the catalog.
	ExitImageSetNotFound ExitCode = 4

	// ExitValidationFailed indicates the validate command found at least
	// one error-level finding.
	ExitValidationFailed ExitCode = 5

	// ExitUserCancelled indicates the user cancelled an interactive prompt.
	ExitUserCancelled ExitCode = 6
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
// This follows Go's error wrapping convention introduced in Go 1.13.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
