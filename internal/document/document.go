// Package document decodes and encodes the JSON and YAML documents the
// command line works on.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown document format")

// ParseFormat resolves a format name; "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatOf infers the format of a file from its extension. Anything that is
// not .yaml or .yml is JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}

	return FormatJSON
}

// ReadFile reads and decodes the document at path. The path "-" reads from
// stdin instead.
func ReadFile(path string, stdin io.Reader) (any, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	return Decode(data, FormatOf(path))
}

// Decode parses a document. JSON integers decode as int64, YAML integers as
// int.
func Decode(data []byte, format Format) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	switch format {
	case FormatJSON:
		v, err := oj.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse JSON document: %w", err)
		}
		return v, nil

	case FormatYAML:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to parse YAML document: %w", err)
		}
		return v, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Encode serializes v. JSON output is indented with sorted keys.
func Encode(v any, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return []byte(oj.JSON(v, &ojg.Options{Indent: 2, Sort: true}) + "\n"), nil

	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode YAML document: %w", err)
		}
		return data, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// ParseValue reads a command line value as a YAML scalar or flow value, so
// "42" is an int, "true" a bool and "{a: 1}" a map. Text that is not valid
// YAML, and the empty string, stay strings.
func ParseValue(s string) any {
	if strings.TrimSpace(s) == "" {
		return s
	}

	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return s
	}

	return v
}
