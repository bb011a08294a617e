// Package imaging provides the PNG operations the importer needs:
// header probing for validation and high-quality downscaling for the
// render scale mode.
//
// Downscaling uses golang.org/x/image/draw with the Catmull-Rom kernel,
// which produces noticeably better small icons than nearest-neighbor or
// bilinear interpolation at the cost of speed — irrelevant at icon sizes.
package imaging

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// Probe reads just enough of the file at path to confirm it is a PNG and
// report its pixel dimensions. The pixel data itself is not decoded.
func Probe(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	// png.DecodeConfig reads only the IHDR chunk. Using the png package
	// directly (rather than image.DecodeConfig) also rejects files that
	// are valid images in some other format but carry a .png extension.
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode PNG header of %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}

// DecodePNG fully decodes the PNG file at path.
func DecodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode PNG %s: %w", path, err)
	}
	return img, nil
}

// Downscale resizes img to exactly width x height using the Catmull-Rom
// kernel. The caller is responsible for passing dimensions that preserve
// the aspect ratio; the render mode always derives them from the same
// source bounds, so no distortion can occur there.
func Downscale(img image.Image, width, height int) (image.Image, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid target dimensions %dx%d", width, height)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst, nil
}

// WritePNG encodes img as PNG and writes it to path with 0644 permissions.
func WritePNG(path string, img image.Image) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode PNG %s: %w", path, err)
	}
	return f.Close()
}

// RenderScaled reads the PNG master at srcPath, scales it down by
// factor/3 (the master is treated as the 3x variant), and writes the
// result to dstPath.
//
// factor 2 yields the 2x variant (two thirds of the master dimensions),
// factor 1 the 1x variant (one third). Dimensions are rounded down; a
// master smaller than 3px on a side still yields at least 1px.
func RenderScaled(srcPath, dstPath string, factor int) error {
	if factor < 1 || factor > 2 {
		return fmt.Errorf("invalid render factor %d (valid: 1, 2)", factor)
	}

	img, err := DecodePNG(srcPath)
	if err != nil {
		return err
	}

	bounds := img.Bounds()
	width := bounds.Dx() * factor / 3
	height := bounds.Dy() * factor / 3
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	scaled, err := Downscale(img, width, height)
	if err != nil {
		return err
	}
	return WritePNG(dstPath, scaled)
}
