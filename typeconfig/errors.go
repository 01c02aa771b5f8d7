package typeconfig

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// Sentinel errors returned by the engine. Every error produced by a
// [TypeConfig] operation wraps exactly one of these.
var (
	ErrMalformedLine = errors.New("malformed line")
	ErrUnknownOption = errors.New("unknown option")
	ErrUnknownType   = errors.New("unknown type")
	ErrEmptyValue    = errors.New("empty value rejected")
	ErrInvalidValue  = errors.New("invalid value")

	// ErrCast indicates a [Type] failed to cast a value its own Validate
	// accepted. It is an invariant violation in the plugin, not a data error.
	ErrCast = errors.New("cast failed")
)

// Errors maps a key to the error recorded for it. The key is the option name,
// or the raw line text for lines that could not be parsed at all.
type Errors map[string]error

// Keys returns the keys in sorted order.
func (e Errors) Keys() []string {
	return slices.Sorted(maps.Keys(e))
}

// Error renders every recorded error, one per line, sorted by key.
func (e Errors) Error() string {
	var sb strings.Builder

	for i, k := range e.Keys() {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(e[k].Error())
	}

	return sb.String()
}

// Err returns nil if no errors were recorded, otherwise e.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}

	return e
}

// Unwrap returns the recorded errors so that [errors.Is] matches any of them.
func (e Errors) Unwrap() []error {
	errs := make([]error, 0, len(e))
	for _, k := range e.Keys() {
		errs = append(errs, e[k])
	}

	return errs
}
