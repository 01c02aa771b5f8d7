package typeconfig

import (
	"fmt"
	"slices"
)

// MergeConfig combines two partial configurations without validating or
// casting any value. Neither input is modified.
//
// For every key in either input, the result holds the first of:
//
//  1. the overwriting value, if not null;
//  2. the overwritable value, if not null;
//  3. the option's default, if non-empty;
//  4. an absent [Value], if the option can be empty.
//
// Otherwise it fails with [ErrEmptyValue]. Null means absent or holding nil,
// so Some(nil) is no more decisive than [None]. A key that is not a defined
// option fails with [ErrUnknownOption]. Keys are visited in schema order, so
// the reported failure is deterministic.
func (tc *TypeConfig) MergeConfig(overwriting, overwritable map[string]Value) (map[string]Value, error) {
	tc.mu.RLock()
	defer tc.mu.RUnlock()

	keys, err := tc.mergeKeys(overwriting, overwritable)
	if err != nil {
		return nil, err
	}

	result := make(map[string]Value, len(keys))

	for _, option := range keys {
		def := tc.options[option]

		switch {
		case !overwriting[option].null():
			result[option] = overwriting[option]
		case !overwritable[option].null():
			result[option] = overwritable[option]
		case def.Default != "":
			result[option] = Some(def.Default)
		case def.CanBeEmpty:
			result[option] = None()
		default:
			return nil, fmt.Errorf("%w: %q can't be left empty", ErrEmptyValue, option)
		}
	}

	return result, nil
}

// mergeKeys returns the union of keys in schema order, or an error for the
// first unknown key in sorted order. Callers hold tc.mu.
func (tc *TypeConfig) mergeKeys(a, b map[string]Value) ([]string, error) {
	var unknown []string

	for _, m := range []map[string]Value{a, b} {
		for k := range m {
			if _, ok := tc.options[k]; !ok {
				unknown = append(unknown, k)
			}
		}
	}

	if len(unknown) > 0 {
		slices.Sort(unknown)

		return nil, fmt.Errorf("%w: %q", ErrUnknownOption, unknown[0])
	}

	keys := make([]string, 0, len(a)+len(b))

	for _, name := range tc.order {
		_, inA := a[name]
		_, inB := b[name]

		if inA || inB {
			keys = append(keys, name)
		}
	}

	return keys, nil
}
