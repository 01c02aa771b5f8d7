package loader

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"go.jacobcolvin.com/confkit/typeconfig"
)

// LoadData reads a flat data file for [typeconfig.TypeConfig.ValidateConfig]
// or [typeconfig.TypeConfig.MergeConfig].
func LoadData(path string) (map[string]typeconfig.Value, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	values, err := DecodeData(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return values, nil
}

// DecodeData decodes a flat mapping. Null values become absent
// [typeconfig.Value] entries. Nested mappings and lists are rejected, since
// options are flat and raw values are scalars.
func DecodeData(data []byte, format Format) (map[string]typeconfig.Value, error) {
	m := map[string]any{}

	var err error

	switch format {
	case FormatYAML, FormatJSON:
		err = yaml.Unmarshal(data, &m)
	case FormatTOML:
		err = toml.Unmarshal(data, &m)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, format, err)
	}

	for k, v := range m {
		switch v.(type) {
		case map[string]any, []any:
			return nil, fmt.Errorf("%w: %q: value must be a scalar", ErrDecode, k)
		}
	}

	return typeconfig.Values(m), nil
}

// EncodeData renders values as a YAML mapping, with absent values as null.
func EncodeData(values map[string]typeconfig.Value) ([]byte, error) {
	out, err := yaml.Marshal(typeconfig.Plain(values))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return out, nil
}
