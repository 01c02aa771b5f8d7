package loader

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"go.jacobcolvin.com/confkit/typeconfig"
)

// SchemaFile is the decoded form of a schema definition file.
type SchemaFile struct {
	Options []OptionSpec `json:"options" toml:"options" validate:"unique=Name,dive" yaml:"options"`
}

// OptionSpec is one option entry of a [SchemaFile].
type OptionSpec struct {
	// Default may be any scalar; it is stored as text.
	Default       any    `json:"default"        toml:"default"        yaml:"default"`
	Name          string `json:"name"           toml:"name"           validate:"required" yaml:"name"`
	Type          string `json:"type"           toml:"type"           validate:"required" yaml:"type"`
	Help          string `json:"help"           toml:"help"           yaml:"help"`
	ImportantHelp string `json:"important_help" toml:"important_help" yaml:"important_help"`
	CanBeEmpty    bool   `json:"can_be_empty"   toml:"can_be_empty"   yaml:"can_be_empty"`
}

// Definition converts the entry to a [typeconfig.Definition].
func (o OptionSpec) Definition() typeconfig.Definition {
	return typeconfig.Definition{
		Name:          o.Name,
		Type:          o.Type,
		Default:       text(o.Default),
		CanBeEmpty:    o.CanBeEmpty,
		Help:          o.Help,
		ImportantHelp: o.ImportantHelp,
	}
}

// LoadSchema reads a schema definition file and returns its definitions in
// file order.
func LoadSchema(path string) ([]typeconfig.Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	defs, err := DecodeSchema(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("loaded schema",
		slog.String("path", path),
		slog.Int("options", len(defs)),
	)

	return defs, nil
}

// DecodeSchema decodes and validates schema definition content. Unknown
// fields are rejected, every option needs a name and a type, and names must
// be unique.
func DecodeSchema(data []byte, format Format) ([]typeconfig.Definition, error) {
	var file SchemaFile

	err := decodeStrict(data, format, &file)
	if err != nil {
		return nil, err
	}

	err = validator.New(validator.WithRequiredStructEnabled()).Struct(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	defs := make([]typeconfig.Definition, 0, len(file.Options))
	for _, o := range file.Options {
		defs = append(defs, o.Definition())
	}

	return defs, nil
}

// decodeStrict decodes data into v, rejecting unknown fields.
func decodeStrict(data []byte, format Format, v any) error {
	var err error

	switch format {
	case FormatYAML, FormatJSON:
		err = yaml.UnmarshalWithOptions(data, v, yaml.DisallowUnknownField())
	case FormatTOML:
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecode, format, err)
	}

	return nil
}

// text renders a decoded scalar as document text. nil is empty. Floats use
// the shortest plain decimal that round-trips, never an exponent, so a whole
// float such as 1.0 renders as "1".
func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	}

	return fmt.Sprint(v)
}
