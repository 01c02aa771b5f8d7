package typeconfig

import (
	"fmt"
)

// ValidateOption validates and casts a single value.
//
// The checks run in a fixed order, and the first failure is returned:
//
//  1. The option must be defined ([ErrUnknownOption]).
//  2. An empty or absent value is replaced by the option's default.
//  3. A value still empty must be allowed by CanBeEmpty ([ErrEmptyValue]).
//  4. The option's type must be registered ([ErrUnknownType]).
//  5. The type must accept the value ([ErrInvalidValue]).
//  6. The type casts the value ([ErrCast] if it cannot).
func (tc *TypeConfig) ValidateOption(option string, raw Value) (any, error) {
	tc.mu.RLock()
	defer tc.mu.RUnlock()

	return tc.validateOption(option, raw)
}

// validateOption implements [TypeConfig.ValidateOption]. Callers hold tc.mu.
func (tc *TypeConfig) validateOption(option string, raw Value) (any, error) {
	def, ok := tc.options[option]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOption, option)
	}

	value := raw.raw()
	if value == "" {
		value = def.Default
	}

	if value == "" && !def.CanBeEmpty {
		return nil, fmt.Errorf("%w: %q can't be left empty", ErrEmptyValue, option)
	}

	t, ok := tc.types[def.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q (option %q)", ErrUnknownType, def.Type, option)
	}

	if !t.Validate(value) {
		return nil, fmt.Errorf("%w: %q: %s (value: %s)", ErrInvalidValue, option, t.ErrorMessage(), value)
	}

	typed, err := t.Cast(value)
	if err != nil {
		return nil, fmt.Errorf("%w: type %q on option %q: %w", ErrCast, def.Type, option, err)
	}

	return typed, nil
}

// ParseConfig parses and validates a document.
//
// It never fails as a whole. Lines that cannot be parsed are recorded in the
// returned [Errors] under their trimmed text, and options that fail validation
// are recorded under the option name. When an option appears more than once
// the last occurrence wins, and a key is never present in both results.
//
// A malformed line whose text equals an option name shares that key. The
// malformed-line error then sticks regardless of line order, and the option
// gets no value.
func (tc *TypeConfig) ParseConfig(doc string) (map[string]any, Errors) {
	tc.mu.RLock()
	defer tc.mu.RUnlock()

	config := make(map[string]any)
	errs := make(Errors)
	malformed := make(map[string]bool)

	for _, line := range CleanLines(doc) {
		l, err := ParseLine(line)
		if err != nil {
			delete(config, line)

			errs[line] = err
			malformed[line] = true

			continue
		}

		if malformed[l.Option] {
			continue
		}

		tc.record(config, errs, l.Option, Some(l.Value))
	}

	return config, errs
}

// ValidateConfig validates already structured data, such as a decoded YAML
// mapping. Failures are collected per key like [TypeConfig.ParseConfig].
func (tc *TypeConfig) ValidateConfig(data map[string]Value) (map[string]any, Errors) {
	tc.mu.RLock()
	defer tc.mu.RUnlock()

	config := make(map[string]any, len(data))
	errs := make(Errors)

	for option, raw := range data {
		tc.record(config, errs, option, raw)
	}

	return config, errs
}

// record validates one option and stores the outcome in exactly one of
// config or errs. Callers hold tc.mu.
func (tc *TypeConfig) record(config map[string]any, errs Errors, option string, raw Value) {
	typed, err := tc.validateOption(option, raw)
	if err != nil {
		delete(config, option)

		errs[option] = err

		return
	}

	delete(errs, option)

	config[option] = typed
}
