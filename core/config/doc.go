// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML, YAML and JSON configuration files with
//              environment variable overrides, defaults and validation.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-14 v0.2.0: Discovery of tackle.toml, tackle.yaml and tackle.json

/*
Package config provides configuration management for the tackle CLI.

Package: config
Title: Core Configuration Management
Description: Loads TOML (github.com/BurntSushi/toml), YAML
             (gopkg.in/yaml.v3) and JSON with comments
             (github.com/tidwall/jsonc) into a nested map and exposes
             typed getters with dot-notation keys.

Key Features:
  • TOML, YAML and JSON with detection by file extension
  • PREFIX_KEY environment overrides checked before the file
  • Nested or dotted defaults
  • Rule-based validation with structured errors

# Loading

	cfg, err := config.Discover(config.DefaultDiscoveryOptions())
	if err != nil {
		return err
	}

	level := cfg.GetString("log.level", "info")
	lower := cfg.GetBool("decode.keys_lower_case")

# Environment Overrides

With EnvPrefix "TACKLE" the key decode.default_url is read from
TACKLE_DECODE_DEFAULT_URL first. An empty variable counts as unset.

# Validation

	result := cfg.Validate(config.ValidationRules{
		"log.level":     {Type: "string", OneOf: []string{"debug", "info", "warn", "error"}},
		"encode.percent": {Type: "bool"},
	})
	if err := result.Err(); err != nil {
		return err
	}
*/
package config
