package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies how a document's bytes are decoded.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a source's extension. Anything that is not
// YAML is treated as JSON.
func FormatFor(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses a whole document in the given format into a generic value
// (objects, lists and scalars).
func Decode(r io.Reader, format Format) (any, error) {
	switch format {
	case FormatYAML:
		return decodeYAML(r)
	default:
		return decodeJSON(r)
	}
}

func decodeJSON(r io.Reader) (any, error) {
	decoder := json.NewDecoder(r)
	// Keep numeric node ids exactly as written
	decoder.UseNumber()

	var doc any
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("failed to parse JSON: unexpected data after top-level value")
	}

	return doc, nil
}

func decodeYAML(r io.Reader) (any, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return doc, nil
}
