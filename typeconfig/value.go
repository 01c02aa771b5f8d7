package typeconfig

import (
	"encoding/json"
	"fmt"
)

// Value is an optional configuration value. The zero Value is absent.
//
// Presence is explicit so that false, 0, and "" supplied by a caller are
// distinguishable from a missing value.
type Value struct {
	v  any
	ok bool
}

// Some returns a present [Value] holding v. A nil v is present but null:
// [TypeConfig.MergeConfig] treats it like [None].
func Some(v any) Value {
	return Value{v: v, ok: true}
}

// None returns an absent [Value].
func None() Value {
	return Value{}
}

// Of returns [None] for nil and [Some] otherwise. It is the conversion used for
// decoded data, where null means "not set".
func Of(v any) Value {
	if v == nil {
		return None()
	}

	return Some(v)
}

// Values converts a plain map with [Of].
func Values(m map[string]any) map[string]Value {
	out := make(map[string]Value, len(m))
	for k, v := range m {
		out[k] = Of(v)
	}

	return out
}

// Get returns the held value and whether it is present.
func (v Value) Get() (any, bool) {
	return v.v, v.ok
}

// Present reports whether v holds a value.
func (v Value) Present() bool {
	return v.ok
}

// null reports whether v is absent or holds nil.
func (v Value) null() bool {
	return !v.ok || v.v == nil
}

// Any returns the held value, or nil when absent.
func (v Value) Any() any {
	return v.v
}

// raw renders the value as document text. Absent and nil values are empty.
func (v Value) raw() string {
	if !v.ok || v.v == nil {
		return ""
	}

	switch x := v.v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	}

	return fmt.Sprint(v.v)
}

// String implements [fmt.Stringer].
func (v Value) String() string {
	if !v.ok {
		return "<none>"
	}

	return fmt.Sprint(v.v)
}

// MarshalJSON encodes an absent value as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return []byte("null"), nil
	}

	return json.Marshal(v.v)
}

// MarshalYAML encodes an absent value as null.
func (v Value) MarshalYAML() (any, error) {
	return v.v, nil
}

// Plain converts a map of values back to a plain map, with absent values as
// nil.
func Plain(m map[string]Value) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v.Any()
	}

	return out
}
