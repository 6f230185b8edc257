package transformer

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"data-accessor/kind"
)

// Converter names accepted in a chain file.
const (
	ConverterBasic      = "basic"
	ConverterEnum       = "enum"
	ConverterError      = "error"
	ConverterReadable   = "readable"
	ConverterStringable = "stringable"
)

var (
	ErrUnknownConverter   = errors.New("unknown converter")
	ErrUnsupportedVersion = errors.New("unsupported chain file version")
)

// Config describes a transformer chain, usually loaded from YAML:
//
//	version: "1"
//	default: string
//	recursive: true
//	converters:
//	  - name: enum
//	  - name: readable
//	    per_default: true
//	  - name: error
//	    parts: [type, message]
//	  - name: basic
//	    map: {string: boolean}
type Config struct {
	Version    string            `yaml:"version"`
	Default    string            `yaml:"default,omitempty"`
	Recursive  bool              `yaml:"recursive,omitempty"`
	Converters []ConverterConfig `yaml:"converters"`
}

// ConverterConfig configures one converter of the chain. Fields a converter
// does not use are ignored.
type ConverterConfig struct {
	Name       string            `yaml:"name"`
	PerDefault bool              `yaml:"per_default,omitempty"`
	Parts      StringOrArray     `yaml:"parts,omitempty"`
	Default    string            `yaml:"default,omitempty"`
	Map        map[string]string `yaml:"map,omitempty"`
}

// StringOrArray is unmarshaled from either a string or an array of strings.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		*s = StringOrArray{str}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// LoadFile loads and parses a YAML chain file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse chain YAML: %w", err)
	}

	applyDefaults(&cfg)

	if cfg.Version != "1" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, cfg.Version)
	}

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}

	if len(cfg.Converters) == 0 {
		cfg.Converters = []ConverterConfig{{Name: ConverterBasic}}
	}

	for i := range cfg.Converters {
		c := &cfg.Converters[i]
		c.Name = strings.ToLower(strings.TrimSpace(c.Name))
	}
}

// Build assembles the configured chain: a FirstMatchResolver over the
// converters in order, wrapped in a RecursionResolver when requested.
func (cfg *Config) Build() (Transformer, error) {
	target, err := kind.Parse(cfg.Default)
	if err != nil {
		return nil, fmt.Errorf("chain default: %w", err)
	}

	chain := make([]Transformer, 0, len(cfg.Converters))
	for i, cc := range cfg.Converters {
		t, err := cc.build()
		if err != nil {
			return nil, fmt.Errorf("converter %d (%s): %w", i, cc.Name, err)
		}

		chain = append(chain, t)
	}

	var t Transformer = NewFirstMatchResolver(chain, target)
	if cfg.Recursive {
		t = NewRecursionResolver(t)
	}

	return t, nil
}

func (cc ConverterConfig) build() (Transformer, error) {
	switch cc.Name {
	case ConverterBasic:
		typeMap, err := parseTypeMap(cc.Map)
		if err != nil {
			return nil, err
		}
		return NewBasicTypeConverter(typeMap), nil

	case ConverterEnum:
		return NewEnumConverter(cc.PerDefault), nil

	case ConverterReadable:
		return NewReadableConverter(cc.PerDefault), nil

	case ConverterStringable:
		return NewStringableConverter(cc.PerDefault), nil

	case ConverterError:
		target, err := kind.Parse(cc.Default)
		if err != nil {
			return nil, err
		}
		converter, err := NewErrorConverter(cc.Parts, target)
		if err != nil {
			return nil, err
		}
		return converter, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownConverter, cc.Name)
}

func parseTypeMap(m map[string]string) (map[kind.Type]kind.Type, error) {
	if len(m) == 0 {
		return nil, nil
	}

	typeMap := make(map[kind.Type]kind.Type, len(m))
	for from, to := range m {
		f, err := parseTag(from)
		if err != nil {
			return nil, err
		}

		t, err := parseTag(to)
		if err != nil {
			return nil, err
		}

		typeMap[f] = t
	}

	return typeMap, nil
}

// parseTag parses a type tag that must name one of the canonical types.
func parseTag(name string) (kind.Type, error) {
	t, err := kind.Parse(name)
	if err != nil {
		return kind.None, err
	}

	if !t.IsValid() {
		return kind.None, fmt.Errorf("%w: %q", kind.ErrUnknownType, name)
	}

	return t, nil
}
