// Package catalog handles reading, writing, and validating Xcode
// asset-catalog imageset descriptors (Contents.json).
//
// Descriptor generation is bit-exact: two-space indentation, fixed key
// order, fixed info block. Reading is tolerant: JSONC comments and
// trailing commas are stripped via github.com/tidwall/jsonc before
// parsing, because catalogs get hand-edited in practice.
//
// Key responsibilities:
//   - Build descriptors for each scale mode (single, universal,
//     placeholders, render)
//   - Serialize and write Contents.json inside imageset directories
//   - Discover imagesets under a catalog root
//   - Validate imagesets against the descriptor contract
package catalog
