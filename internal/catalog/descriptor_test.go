package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamore/iconset/internal/model"
)

// TestNewDescriptor_Single verifies the default descriptor layout:
// one entry filling the universal 1x slot.
func TestNewDescriptor_Single(t *testing.T) {
	d, err := NewDescriptor("sports.png", model.ModeSingle)
	require.NoError(t, err)

	require.Len(t, d.Images, 1)
	assert.Equal(t, "sports.png", d.Images[0].Filename)
	assert.Equal(t, model.IdiomUniversal, d.Images[0].Idiom)
	assert.Equal(t, model.Scale1x, d.Images[0].Scale)
	assert.Equal(t, "xcode", d.Info.Author)
	assert.Equal(t, 1, d.Info.Version)
}

// TestNewDescriptor_Universal verifies the scale-less layout.
func TestNewDescriptor_Universal(t *testing.T) {
	d, err := NewDescriptor("sports.png", model.ModeUniversal)
	require.NoError(t, err)

	require.Len(t, d.Images, 1)
	assert.Equal(t, "sports.png", d.Images[0].Filename)
	assert.Equal(t, model.ScaleNone, d.Images[0].Scale)
}

// TestNewDescriptor_Placeholders verifies the 1x entry plus empty
// 2x/3x slots.
func TestNewDescriptor_Placeholders(t *testing.T) {
	d, err := NewDescriptor("sports.png", model.ModePlaceholders)
	require.NoError(t, err)

	require.Len(t, d.Images, 3)
	assert.Equal(t, "sports.png", d.Images[0].Filename)
	assert.Equal(t, model.Scale1x, d.Images[0].Scale)
	assert.True(t, d.Images[1].IsPlaceholder())
	assert.Equal(t, model.Scale2x, d.Images[1].Scale)
	assert.True(t, d.Images[2].IsPlaceholder())
	assert.Equal(t, model.Scale3x, d.Images[2].Scale)
}

// TestNewDescriptor_RejectsRenderMode verifies that render mode is
// routed to NewRenderedDescriptor.
func TestNewDescriptor_RejectsRenderMode(t *testing.T) {
	_, err := NewDescriptor("sports.png", model.ModeRender)
	assert.Error(t, err)
}

// TestNewRenderedDescriptor verifies the three-slot render layout and
// the all-scales-required invariant.
func TestNewRenderedDescriptor(t *testing.T) {
	t.Run("full set", func(t *testing.T) {
		d, err := NewRenderedDescriptor(map[model.Scale]string{
			model.Scale1x: "pin.png",
			model.Scale2x: "pin@2x.png",
			model.Scale3x: "pin@3x.png",
		})
		require.NoError(t, err)
		require.Len(t, d.Images, 3)
		assert.Equal(t, "pin.png", d.Images[0].Filename)
		assert.Equal(t, "pin@2x.png", d.Images[1].Filename)
		assert.Equal(t, "pin@3x.png", d.Images[2].Filename)
	})

	t.Run("missing scale", func(t *testing.T) {
		_, err := NewRenderedDescriptor(map[model.Scale]string{
			model.Scale1x: "pin.png",
			model.Scale3x: "pin@3x.png",
		})
		assert.Error(t, err)
	})
}

// TestDescriptor_Marshal_BitExact pins the on-disk format byte for byte:
// two-space indentation, images before info, filename/idiom/scale entry
// order, trailing newline. Xcode and diff-based workflows both depend on
// this exact shape.
func TestDescriptor_Marshal_BitExact(t *testing.T) {
	d, err := NewDescriptor("sports.png", model.ModeSingle)
	require.NoError(t, err)

	data, err := d.Marshal()
	require.NoError(t, err)

	expected := `{
  "images": [
    {
      "filename": "sports.png",
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
	assert.Equal(t, expected, string(data))
}

// TestDescriptor_Marshal_PlaceholderOmitsFilename verifies that empty
// slots serialize without filename or empty-string noise.
func TestDescriptor_Marshal_PlaceholderOmitsFilename(t *testing.T) {
	d, err := NewDescriptor("pin.png", model.ModePlaceholders)
	require.NoError(t, err)

	data, err := d.Marshal()
	require.NoError(t, err)

	assert.NotContains(t, string(data), `"filename": ""`)
	assert.Contains(t, string(data), `"scale": "2x"`)
	assert.Contains(t, string(data), `"scale": "3x"`)
}

// TestWriteDescriptor verifies the write-then-reload round trip and the
// stability of repeated writes.
func TestWriteDescriptor(t *testing.T) {
	dir := t.TempDir()

	d, err := NewDescriptor("sports.png", model.ModeSingle)
	require.NoError(t, err)
	require.NoError(t, WriteDescriptor(dir, d))

	path := filepath.Join(dir, DescriptorFileName)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	loaded, err := LoadDescriptor(path)
	require.NoError(t, err)
	assert.Equal(t, d.Images, loaded.Images)
	assert.Equal(t, d.Info, loaded.Info)

	// Writing the same descriptor again must leave identical bytes.
	require.NoError(t, WriteDescriptor(dir, d))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
