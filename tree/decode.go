package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the syntax of a definition file.
type Format string

// Supported formats.
const (
	YAML Format = "yaml"
	TOML Format = "toml"
	JSON Format = "json"
)

// Extensions lists the file extensions FormatOf recognizes.
var Extensions = []string{".yaml", ".yml", ".toml", ".json"}

// FormatOf returns the format of a file from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".json":
		return JSON, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Decode reads one definition. Unknown keys are errors.
func Decode(r io.Reader, format Format) (*Node, error) {
	var n Node
	var err error
	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&n)
	case TOML:
		err = toml.NewDecoder(r).DisallowUnknownFields().Decode(&n)
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&n)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		if err == io.EOF { //nolint:errorlint // decoders return io.EOF unwrapped
			err = fmt.Errorf("%w: empty definition", ErrUnknownWidget)
		}
		return nil, fmt.Errorf("tree: decode %s: %w", format, err)
	}
	return &n, nil
}

// Parse decodes a definition held in memory.
func Parse(data []byte, format Format) (*Node, error) {
	return Decode(bytes.NewReader(data), format)
}

// LoadFile reads the definition file at path.
func LoadFile(path string) (*Node, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // definition paths come from the command line
	if err != nil {
		return nil, err
	}
	n, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}
