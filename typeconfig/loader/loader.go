// Package loader reads and writes the files around a [typeconfig.TypeConfig]:
// schema definition files, structured data files, and configuration
// documents.
//
// The engine in package typeconfig never touches the filesystem; this package
// is the host side that does.
//
// Schema and data files may be YAML, JSON, or TOML, chosen by file extension
// with [FormatFromPath]. A schema file lists option definitions:
//
//	options:
//	  - name: Money
//	    type: int
//	    default: 50
//	    help: The amount of money you can use in the shop.
//	  - name: What to buy
//	    type: list
//	    can_be_empty: true
//	    important_help: Must be three objects, divided by commas
//	    help: What you are going to buy.
//
// A data file is a flat mapping of option names to values, where null means
// the value is not set.
package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors returned by the loader.
var (
	ErrReadInput         = errors.New("read input")
	ErrWriteOutput       = errors.New("write output")
	ErrDecode            = errors.New("decode")
	ErrInvalidSchema     = errors.New("invalid schema")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Format is a structured file format.
type Format string

const (
	// FormatYAML is YAML. JSON input is also decoded as YAML.
	FormatYAML Format = "yaml"
	// FormatJSON is JSON.
	FormatJSON Format = "json"
	// FormatTOML is TOML.
	FormatTOML Format = "toml"
)

// FormatFromPath returns the [Format] for a file extension. Paths without an
// extension, and "-" for stdin, are treated as YAML.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	switch ext {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}
