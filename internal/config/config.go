// Package config loads the optional iconset.yaml file that supplies
// defaults for the import command.
//
// Configuration is purely a convenience layer: every value has a
// built-in default and every value can be overridden by a command-line
// flag. Precedence is flags > config file > defaults. A missing config
// file is not an error; a malformed one is.
package config

import (
	"fmt"
	"os"

	"github.com/adamore/iconset/internal/model"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory
// when no --config path is given.
const DefaultFileName = "iconset.yaml"

// DefaultExclude is the built-in exclusion list. The "gaming" icon is a
// known leftover placeholder in icon exports and is never imported
// unless the exclusion list is overridden.
var DefaultExclude = []string{"gaming"}

// Config holds the import defaults read from iconset.yaml.
type Config struct {
	// Source is the default icon source directory.
	Source string `yaml:"source,omitempty"`

	// Destination is the default catalog destination root.
	Destination string `yaml:"destination,omitempty"`

	// Exclude lists base names (extension stripped) that are skipped
	// during import.
	Exclude []string `yaml:"exclude,omitempty"`

	// ScaleMode selects the descriptor layout for imported icons.
	// One of: single, universal, placeholders, render.
	ScaleMode string `yaml:"scaleMode,omitempty"`
}

// Default returns the built-in configuration used when no config file
// exists and no flags are given.
func Default() Config {
	return Config{
		Exclude:   append([]string(nil), DefaultExclude...),
		ScaleMode: model.ModeSingle.String(),
	}
}

// Load reads the config file at path and merges it over the defaults.
//
// When explicit is false (the default lookup in the working directory),
// a missing file silently yields the defaults. When explicit is true
// (the user passed --config), a missing file is an error — a typo in
// the path should not be mistaken for "no config".
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to read config file %s", path), err)
	}

	// yaml.Unmarshal merges into the existing struct, so fields absent
	// from the file keep their default values. The exclusion list is the
	// exception: an explicit "exclude: []" must be able to clear the
	// default, so presence of the key replaces the list wholesale.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to parse config file %s", path), err)
	}

	if _, err := model.ParseScaleMode(cfg.ScaleMode); err != nil {
		return cfg, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("invalid scaleMode in %s", path), err)
	}

	return cfg, nil
}
