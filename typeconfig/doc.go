// Package typeconfig parses, validates, generates, merges, and heals flat
// "option = value" configuration documents against a declarative schema.
//
// A schema is a set of option [Definition] values, each naming a [Type]. A
// Type is a plugin that validates raw document text and casts it to a typed
// value. Types are looked up by name when a value is validated, so options may
// reference types that are registered later.
//
//	tc := typeconfig.New()
//	tc.AddType("int", typeconfig.NewType(isInt, toInt, "Must be an integer."))
//	tc.AddOption("int", "Money", "The amount of money you can use.",
//	    typeconfig.WithDefault("50"))
//
//	doc := tc.CreateConfig(false)
//	config, errs := tc.ParseConfig(doc)
//
// # Document Format
//
// A document is a sequence of lines:
//
//	[TypeTag] option_name = raw_value   # inline comment ignored
//	# !!! important note line
//	# help text line
//
// Blank lines and lines starting with "#" are ignored. The "[TypeTag]" prefix
// is optional and purely decorative; it never changes how a value is
// validated. Everything after the first "#" on a line is a comment, and only
// the first "=" separates the option from its value. See [ParseLine].
//
// # Operations
//
//   - [TypeConfig.CreateConfig] renders every option with its default and
//     help text, in registration order.
//   - [TypeConfig.ParseConfig] parses a document and validates every line.
//   - [TypeConfig.ValidateConfig] validates already structured data.
//   - [TypeConfig.MergeConfig] combines two partial configurations by
//     precedence, without validation.
//   - [TypeConfig.HealConfig] recovers what it can from a corrupted document
//     and renders a complete one.
//   - [TypeConfig.JSONSchema] describes the options as a JSON Schema.
//
// # Errors
//
// Every failure wraps one sentinel for use with [errors.Is]:
//
//   - [ErrMalformedLine]: a line has no "=" or no option name.
//   - [ErrUnknownOption]: a key is not defined in the schema.
//   - [ErrUnknownType]: an option references an unregistered type.
//   - [ErrEmptyValue]: a required value is empty after default substitution.
//   - [ErrInvalidValue]: the type rejected the value.
//   - [ErrCast]: the type failed to cast a value it had accepted.
//
// [TypeConfig.ValidateOption] and [TypeConfig.MergeConfig] return the first
// failure. [TypeConfig.ParseConfig] and [TypeConfig.ValidateConfig] collect
// failures into [Errors] and keep going; a key is present in either the
// values or the errors, never both. [TypeConfig.HealConfig] never fails.
//
// # Presence
//
// Merging distinguishes a present but falsy value from a missing one. Values
// are wrapped in [Value]: [Some] is present even when it holds false or 0,
// and only [None] lets a lower-precedence source win.
//
// # Healing
//
// Healing favors availability over strictness. Lines containing more than
// one "=" and lines that do not parse are dropped silently. Each option with
// a non-empty recovered value has its default replaced in place, so the
// schema keeps the user's value as its new default after the call. This is
// the only operation that mutates a [TypeConfig] after setup;
// [TypeConfig.HealedOptions] offers the same result without mutation.
package typeconfig
