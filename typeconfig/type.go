package typeconfig

// Type is a named plugin that turns raw document text into a typed value.
//
// Cast is only called after Validate returned true for the same input.
type Type interface {
	Validate(raw string) bool
	Cast(raw string) (any, error)
	ErrorMessage() string
}

// ValidateFunc reports whether raw is acceptable for a [Type].
type ValidateFunc func(raw string) bool

// CastFunc converts a validated raw value into its typed form.
type CastFunc func(raw string) (any, error)

// NewType creates a [Type] from plain functions. A nil cast returns the raw
// string unchanged.
func NewType(validate ValidateFunc, cast CastFunc, message string) Type {
	if cast == nil {
		cast = func(raw string) (any, error) { return raw, nil }
	}

	return funcType{validate: validate, cast: cast, message: message}
}

type funcType struct {
	validate ValidateFunc
	cast     CastFunc
	message  string
}

func (t funcType) Validate(raw string) bool     { return t.validate(raw) }
func (t funcType) Cast(raw string) (any, error) { return t.cast(raw) }
func (t funcType) ErrorMessage() string         { return t.message }
