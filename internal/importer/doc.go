// Package importer orchestrates the icon import run: scanning the
// source directory, applying the exclusion list, creating imageset
// containers, copying or rendering the PNG files, and writing the
// Contents.json descriptors.
//
// Design decisions:
//   - The run is synchronous and single-pass; a filesystem failure
//     aborts with the partial output left in place (no rollback).
//   - The Manager struct is currently stateless but exists as a receiver
//     to allow future extension (e.g., progress callbacks).
//   - All errors are wrapped in model.CLIError with a specific exit code
//     to enable proper CLI exit code handling.
package importer
