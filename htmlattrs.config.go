package htmlattrs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the file representation of a formatter setup.
//
// YAML:
//
//	format:
//	  quote: "'"
//	  separator: " "
//	short_circuit: false
//	max_depth: 50
//	remove_helpers: [data]
//
// TOML:
//
//	short_circuit = false
//	max_depth = 50
//	[format]
//	quote = "'"
type Config struct {
	Format        FormatOptions `yaml:"format,omitempty" toml:"format,omitempty"`
	ShortCircuit  bool          `yaml:"short_circuit,omitempty" toml:"short_circuit,omitempty"`
	MaxDepth      *int          `yaml:"max_depth,omitempty" toml:"max_depth,omitempty"`
	RemoveHelpers []string      `yaml:"remove_helpers,omitempty" toml:"remove_helpers,omitempty"`
}

// LoadConfig reads a .yaml, .yml or .toml config file.
func LoadConfig(path string) (*Config, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !isConfigExt(ext) {
		return nil, NewUnsupportedConfigError(path, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigError(ErrMsgConfigRead, path, err)
	}

	cfg, err := ParseConfig(data, ext)
	if err != nil {
		return nil, NewConfigError(ErrMsgConfigParse, path, err)
	}
	return cfg, nil
}

// ParseConfig decodes config data in the format named by ext
// (".yaml", ".yml" or ".toml").
func ParseConfig(data []byte, ext string) (*Config, error) {
	cfg := &Config{}
	switch strings.ToLower(ext) {
	case ConfigExtYAML, ConfigExtYML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case ConfigExtTOML:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, err
		}
	default:
		return nil, NewUnsupportedConfigError("", ext)
	}
	return cfg, nil
}

// Options translates the config into formatter options.
func (c *Config) Options() []Option {
	opts := []Option{
		WithDefaults(c.Format),
		WithShortCircuit(c.ShortCircuit),
	}
	if c.MaxDepth != nil {
		opts = append(opts, WithMaxDepth(*c.MaxDepth))
	}
	return opts
}

// NewFormatter builds a Formatter from the config. Extra options are
// applied after the config's own, so they take precedence. Helpers listed
// in RemoveHelpers are removed from the formatter's registry.
func (c *Config) NewFormatter(opts ...Option) (*Formatter, error) {
	f, err := New(append(c.Options(), opts...)...)
	if err != nil {
		return nil, err
	}
	for _, name := range c.RemoveHelpers {
		f.RemoveHelper(name)
	}
	return f, nil
}

func isConfigExt(ext string) bool {
	switch ext {
	case ConfigExtYAML, ConfigExtYML, ConfigExtTOML:
		return true
	}
	return false
}
