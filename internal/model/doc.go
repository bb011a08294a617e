// Package model defines the domain types and value objects for the
// iconset CLI.
//
// This package contains pure data structures with no external dependencies.
// All entities (ImageSet, ImageVariant, Idiom, Scale, ScaleMode) are
// transient representations reconstructed from the filesystem during a
// single command invocation — there are no persistent state files beyond
// the asset catalog itself.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
