// File: config.go
// Title: Configuration Loading
// Description: Reads a TOML, YAML or JSON file into a Config. Values are
//              looked up by dotted key, environment overrides first.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-14 v0.2.0: JSON files, nested defaults, no file watching

package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	tkerror "github.com/hrimthurs/Tackle/core/error"
	"github.com/hrimthurs/Tackle/utils/stringx"
)

// Config holds decoded configuration values. It is safe for concurrent use.
type Config struct {
	mu        sync.RWMutex
	data      tree
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions controls LoadWithOptions
type LoadOptions struct {
	Format    Format                 // FormatAuto picks by extension
	EnvPrefix string                 // variables are PREFIX_SECTION_KEY
	Defaults  map[string]interface{} // nested or dotted keys
}

// New returns a Config without a file, holding only defaults
func New(envPrefix string, defaults map[string]interface{}) *Config {
	data := tree{}
	data.fill(defaults)
	return &Config{data: data, format: FormatAuto, envPrefix: envPrefix}
}

// Load reads filePath with the format taken from its extension
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions reads filePath. A missing file is NOT_FOUND, a file that
// does not parse is INVALID_CONFIG.
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	const op = "config.LoadWithOptions"

	if stringx.IsBlank(filePath) {
		return nil, tkerror.New("config file path cannot be empty").
			WithCode(tkerror.CodeMissingConfig).
			WithOperation(op)
	}

	content, err := os.ReadFile(filePath)
	switch {
	case os.IsNotExist(err):
		return nil, tkerror.Newf("config file not found: %s", filePath).
			WithCode(tkerror.CodeNotFound).
			WithOperation(op).
			WithDetail("filePath", filePath)
	case err != nil:
		return nil, tkerror.Wrap(err, "failed to read config file").
			WithCode(tkerror.CodeConfigError).
			WithOperation(op).
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = formatOf(filePath)
	}

	data, err := decode(content, format)
	if err != nil {
		return nil, tkerror.Wrap(err, "failed to parse config file").
			WithCode(tkerror.CodeInvalidConfig).
			WithOperation(op).
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}
	data.fill(options.Defaults)

	return &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString parses content; FormatAuto means TOML
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := decode([]byte(content), format)
	if err != nil {
		return nil, tkerror.Wrap(err, "failed to parse config from string").
			WithCode(tkerror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}
	return &Config{data: data, format: format}, nil
}

func decode(content []byte, format Format) (tree, error) {
	fn, ok := decoders[format]
	if !ok {
		return nil, tkerror.Newf("unsupported format: %s", format).
			WithCode(tkerror.CodeInvalidFormat).
			WithOperation("config.decode")
	}

	var data map[string]interface{}
	if err := fn(content, &data); err != nil {
		return nil, tkerror.Wrap(err, format.String()+" parse error").
			WithCode(tkerror.CodeInvalidFormat).
			WithOperation("config.decode")
	}
	if data == nil {
		data = map[string]interface{}{}
	}
	return tree(data), nil
}

// EnvKey returns the variable that overrides key: decode.default_url with
// prefix TACKLE is TACKLE_DECODE_DEFAULT_URL
func (c *Config) EnvKey(key string) string {
	name := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix == "" {
		return name
	}
	return strings.ToUpper(c.envPrefix) + "_" + name
}

// env returns the override for key; an empty variable counts as unset
func (c *Config) env(key string) (string, bool) {
	v := os.Getenv(c.EnvKey(key))
	return v, v != ""
}

// Has reports whether key is set in the file or the defaults
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.get(splitKey(key)) != nil
}

// Set stores value under key for the lifetime of c
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data.put(splitKey(key), value)
}

// GetAll returns a deep copy of the values, without environment overrides
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.clone()
}

// FilePath returns the file c was loaded from, or ""
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Config{format: %s", c.format)
	if c.filePath != "" {
		fmt.Fprintf(&b, ", path: %s", c.filePath)
	}
	if c.envPrefix != "" {
		fmt.Fprintf(&b, ", envPrefix: %s", c.envPrefix)
	}
	fmt.Fprintf(&b, ", keys: %d}", len(c.data))
	return b.String()
}
