// File: discovery.go
// Title: Configuration File Discovery
// Description: Finds the first configuration file among a list of
//              directories, base names and extensions.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation of file discovery
// - 2026-10-14 v0.2.0: Tackle locations, JSON files, defaults passed through

package config

import (
	"os"
	"path/filepath"
	"strings"

	tkerror "github.com/hrimthurs/Tackle/core/error"
)

var defaultExtensions = []string{".toml", ".yaml", ".yml", ".json"}

// DiscoveryOptions controls Discover
type DiscoveryOptions struct {
	Paths      []string // directories, searched in order
	Filenames  []string // base names without extension
	Extensions []string
	EnvPrefix  string
	Defaults   map[string]interface{}
	Required   bool // fail with MISSING_CONFIG when nothing is found
}

// DefaultDiscoveryOptions searches the working directory, then
// $XDG_CONFIG_HOME/tackle (or ~/.config/tackle), then /etc/tackle
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	switch home, err := os.UserHomeDir(); {
	case os.Getenv("XDG_CONFIG_HOME") != "":
		paths = append(paths, filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "tackle"))
	case err == nil:
		paths = append(paths, filepath.Join(home, ".config", "tackle"))
	}

	return DiscoveryOptions{
		Paths:      append(paths, "/etc/tackle"),
		Filenames:  []string{"tackle"},
		Extensions: defaultExtensions,
		EnvPrefix:  "TACKLE",
	}
}

func (o DiscoveryOptions) withFallbacks() DiscoveryOptions {
	if len(o.Paths) == 0 {
		o.Paths = []string{"."}
	}
	if len(o.Filenames) == 0 {
		o.Filenames = []string{"config"}
	}
	if len(o.Extensions) == 0 {
		o.Extensions = defaultExtensions
	}
	return o
}

// Discover loads the first file found. With none found and Required unset,
// the result holds only the defaults.
func Discover(options DiscoveryOptions) (*Config, error) {
	options = options.withFallbacks()

	path, err := FindConfigFile(options)
	if err != nil {
		if !options.Required {
			return New(options.EnvPrefix, options.Defaults), nil
		}
		candidates := ListPossibleConfigFiles(options)
		return nil, tkerror.Newf("no configuration file found in paths: %s", strings.Join(candidates, ", ")).
			WithCode(tkerror.CodeMissingConfig).
			WithOperation("config.Discover").
			WithDetail("searchPaths", candidates)
	}

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	})
	if err != nil {
		return nil, tkerror.Wrap(err, "found config file "+path+" but failed to load").
			WithOperation("config.Discover").
			WithDetail("configPath", path)
	}
	return cfg, nil
}

// FindConfigFile returns the first existing regular file among the
// candidates, or a NOT_FOUND error
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, candidate := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
	}
	return "", tkerror.New("configuration file not found").
		WithCode(tkerror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns the candidates directory by directory,
// each base name with every extension
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var out []string
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				out = append(out, filepath.Join(dir, name+ext))
			}
		}
	}
	return out
}
