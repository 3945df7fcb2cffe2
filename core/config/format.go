// File: format.go
// Title: Configuration File Formats
// Description: The file formats a configuration can be read from and the
//              decoder behind each of them.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: TOML and YAML
// - 2026-10-14 v0.2.0: JSON with comments, decoder table

package config

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file syntax
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
	FormatJSON // comments and trailing commas allowed
	FormatAuto // chosen from the file extension
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatAuto:
		return "auto"
	}
	return "unknown"
}

type decodeFunc func(content []byte, out *map[string]interface{}) error

var decoders = map[Format]decodeFunc{
	FormatTOML: func(content []byte, out *map[string]interface{}) error {
		return toml.Unmarshal(content, out)
	},
	FormatYAML: func(content []byte, out *map[string]interface{}) error {
		return yaml.Unmarshal(content, out)
	},
	FormatJSON: func(content []byte, out *map[string]interface{}) error {
		return json.Unmarshal(jsonc.ToJSON(content), out)
	},
}

// formatOf picks the format for path by extension; TOML is the fallback
func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json", ".jsonc":
		return FormatJSON
	}
	return FormatTOML
}
