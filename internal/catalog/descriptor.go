// descriptor.go handles construction and serialization of Contents.json
// descriptor documents.
//
// The descriptor format is a fixed contract with Xcode: UTF-8 JSON with
// two-space indentation, an "images" array listing the physical files by
// idiom and scale, and an "info" block identifying the generator. The
// serialization here must stay bit-exact across runs so that re-importing
// an unchanged source directory leaves the catalog byte-identical.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adamore/iconset/internal/model"
)

// DescriptorInfo is the fixed metadata block Xcode expects at the end of
// every Contents.json.
type DescriptorInfo struct {
	// Author identifies the tool that generated the descriptor.
	// Always "xcode" — Xcode rewrites any other value on first touch.
	Author string `json:"author"`

	// Version is the descriptor format version. Always 1.
	Version int `json:"version"`
}

// Descriptor is the in-memory form of a Contents.json document.
//
// Field declaration order matters: encoding/json serializes struct fields
// in declaration order, and the descriptor contract requires "images"
// before "info".
type Descriptor struct {
	// Images lists the image entries, one per idiom+scale slot.
	Images []model.ImageVariant `json:"images"`

	// Info is the fixed generator metadata block.
	Info DescriptorInfo `json:"info"`
}

// descriptorAuthor and descriptorVersion are the only values ever written
// to the info block.
const (
	descriptorAuthor  = "xcode"
	descriptorVersion = 1
)

// DescriptorFileName is the file name Xcode looks for inside every
// asset-catalog directory.
const DescriptorFileName = "Contents.json"

// ContainerSuffix is the directory-name suffix that marks an imageset
// inside an asset catalog.
const ContainerSuffix = ".imageset"

// NewDescriptor builds a descriptor for a single imported file under the
// given scale mode.
//
// The generated layouts per mode:
//   - single:       [{filename, universal, 1x}]
//   - universal:    [{filename, universal}]
//   - placeholders: [{filename, universal, 1x}, {universal, 2x}, {universal, 3x}]
//   - render:       see NewRenderedDescriptor (render mode produces three
//     physical files, so it has its own constructor)
//
// filename is the physical file name as it appears inside the imageset
// directory, not a path.
func NewDescriptor(filename string, mode model.ScaleMode) (*Descriptor, error) {
	var images []model.ImageVariant

	switch mode {
	case model.ModeSingle:
		images = []model.ImageVariant{
			{Filename: filename, Idiom: model.IdiomUniversal, Scale: model.Scale1x},
		}
	case model.ModeUniversal:
		images = []model.ImageVariant{
			{Filename: filename, Idiom: model.IdiomUniversal},
		}
	case model.ModePlaceholders:
		images = []model.ImageVariant{
			{Filename: filename, Idiom: model.IdiomUniversal, Scale: model.Scale1x},
			{Idiom: model.IdiomUniversal, Scale: model.Scale2x},
			{Idiom: model.IdiomUniversal, Scale: model.Scale3x},
		}
	case model.ModeRender:
		return nil, fmt.Errorf("render mode descriptors require per-scale filenames; use NewRenderedDescriptor")
	default:
		return nil, fmt.Errorf("unknown scale mode %q", mode)
	}

	return &Descriptor{
		Images: images,
		Info:   DescriptorInfo{Author: descriptorAuthor, Version: descriptorVersion},
	}, nil
}

// NewRenderedDescriptor builds a render-mode descriptor listing one
// physical file per density slot, 1x through 3x.
//
// filenames maps each scale to the file that fills it. All three scales
// must be present — render mode always produces the full set.
func NewRenderedDescriptor(filenames map[model.Scale]string) (*Descriptor, error) {
	images := make([]model.ImageVariant, 0, 3)
	for _, scale := range []model.Scale{model.Scale1x, model.Scale2x, model.Scale3x} {
		name, ok := filenames[scale]
		if !ok || name == "" {
			return nil, fmt.Errorf("render descriptor missing filename for scale %s", scale)
		}
		images = append(images, model.ImageVariant{
			Filename: name,
			Idiom:    model.IdiomUniversal,
			Scale:    scale,
		})
	}

	return &Descriptor{
		Images: images,
		Info:   DescriptorInfo{Author: descriptorAuthor, Version: descriptorVersion},
	}, nil
}

// Marshal serializes the descriptor in the bit-exact on-disk format:
// two-space indentation, key order as declared, trailing newline.
func (d *Descriptor) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize descriptor: %w", err)
	}
	// json.MarshalIndent does not terminate the document with a newline;
	// generated text files should end with one.
	return append(data, '\n'), nil
}

// WriteDescriptor serializes the descriptor and writes (or overwrites)
// Contents.json inside the given imageset directory.
//
// The file is written with 0644 permissions, the standard permission for
// non-executable config files.
func WriteDescriptor(imagesetDir string, d *Descriptor) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}

	path := filepath.Join(imagesetDir, DescriptorFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
