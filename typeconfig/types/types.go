// Package types provides ready-made [typeconfig.Type] plugins.
//
// Use [Register] to add all of them to a [typeconfig.TypeConfig] under their
// default names, or pick individual constructors. Bounded variants are named
// with a numeric suffix, "int_max_100" for [IntMax] and "list_3" for
// [ListOf]; [Lookup] and [ForDefinitions] resolve those names.
package types

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.jacobcolvin.com/confkit/typeconfig"
)

// Default type names used by [Default].
const (
	NameInt      = "int"
	NameLetters  = "letters"
	NameList     = "list"
	NamePath     = "path"
	NameBool     = "bool"
	NameString   = "string"
	NameDuration = "duration"
)

// Default returns every built-in type keyed by its default name.
func Default() map[string]typeconfig.Type {
	return map[string]typeconfig.Type{
		NameInt:      Int(),
		NameLetters:  Letters(),
		NameList:     List(),
		NamePath:     ExistingPath(),
		NameBool:     Bool(),
		NameString:   String(),
		NameDuration: Duration(),
	}
}

// Prefixes of the parameterized type names resolved by [Lookup].
const (
	PrefixIntMax = NameInt + "_max_"
	PrefixListOf = NameList + "_"
)

// Lookup resolves a type name: a name from [Default], "int_max_<n>" for
// [IntMax] with any integer n, or "list_<n>" for [ListOf] with n of at
// least 1.
func Lookup(name string) (typeconfig.Type, bool) {
	if t, ok := Default()[name]; ok {
		return t, true
	}

	if arg, ok := strings.CutPrefix(name, PrefixIntMax); ok {
		n, err := strconv.Atoi(arg)
		if err == nil {
			return IntMax(n), true
		}
	}

	if arg, ok := strings.CutPrefix(name, PrefixListOf); ok {
		n, err := strconv.Atoi(arg)
		if err == nil && n >= 1 {
			return ListOf(n), true
		}
	}

	return nil, false
}

// ForDefinitions returns [Default] plus every parameterized type that defs
// refer to. Names that [Lookup] cannot resolve are left out, so options using
// them fail with [typeconfig.ErrUnknownType] when validated.
func ForDefinitions(defs []typeconfig.Definition) map[string]typeconfig.Type {
	out := Default()

	for _, def := range defs {
		if _, ok := out[def.Type]; ok {
			continue
		}

		if t, ok := Lookup(def.Type); ok {
			out[def.Type] = t
		}
	}

	return out
}

// Register adds every type from [Default] to tc.
func Register(tc *typeconfig.TypeConfig) {
	for name, t := range Default() {
		tc.AddType(name, t)
	}
}

// Int accepts base-10 integers and casts them to int.
func Int() typeconfig.Type {
	return typeconfig.NewType(
		func(raw string) bool {
			_, err := strconv.Atoi(raw)

			return err == nil
		},
		castInt,
		"Must be an integer number.",
	)
}

// IntMax accepts base-10 integers no greater than limit.
func IntMax(limit int) typeconfig.Type {
	return typeconfig.NewType(
		func(raw string) bool {
			n, err := strconv.Atoi(raw)

			return err == nil && n <= limit
		},
		castInt,
		fmt.Sprintf("Must be an integer number and no more than %d.", limit),
	)
}

func castInt(raw string) (any, error) {
	return strconv.Atoi(raw)
}

// Letters accepts strings made only of ASCII letters. The empty string is
// accepted.
func Letters() typeconfig.Type {
	return typeconfig.NewType(
		func(raw string) bool {
			for _, r := range raw {
				if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
					return false
				}
			}

			return true
		},
		nil,
		"Must only contain letters from the English alphabet.",
	)
}

// List accepts comma-separated entries and casts them to a []string with
// surrounding whitespace removed from each entry.
func List() typeconfig.Type {
	return typeconfig.NewType(
		func(string) bool { return true },
		castList,
		"Must be a comma-separated list.",
	)
}

// ListOf accepts comma-separated lists with exactly n entries.
func ListOf(n int) typeconfig.Type {
	return typeconfig.NewType(
		func(raw string) bool { return len(strings.Split(raw, ",")) == n },
		castList,
		fmt.Sprintf("Must have %d entries, separated by commas.", n),
	)
}

func castList(raw string) (any, error) {
	parts := strings.Split(raw, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	return parts, nil
}

// ExistingPath accepts absolute paths to entries that exist on disk.
func ExistingPath() typeconfig.Type {
	return typeconfig.NewType(
		func(raw string) bool {
			if !filepath.IsAbs(raw) {
				return false
			}

			_, err := os.Stat(raw)

			return err == nil
		},
		func(raw string) (any, error) { return filepath.Clean(raw), nil },
		"Must be an absolute path to an existing file or directory.",
	)
}

// Bool accepts the values understood by [strconv.ParseBool].
func Bool() typeconfig.Type {
	return typeconfig.NewType(
		func(raw string) bool {
			_, err := strconv.ParseBool(raw)

			return err == nil
		},
		func(raw string) (any, error) { return strconv.ParseBool(raw) },
		"Must be a boolean (true or false).",
	)
}

// String accepts any value, including the empty string.
func String() typeconfig.Type {
	return typeconfig.NewType(func(string) bool { return true }, nil, "Must be text.")
}

// Duration accepts values understood by [time.ParseDuration].
func Duration() typeconfig.Type {
	return typeconfig.NewType(
		func(raw string) bool {
			_, err := time.ParseDuration(raw)

			return err == nil
		},
		func(raw string) (any, error) { return time.ParseDuration(raw) },
		`Must be a duration such as "90s" or "1h30m".`,
	)
}
