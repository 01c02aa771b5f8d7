package typeconfig

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for engine configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Schema   string
	TypeTags string
	Output   string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds CLI flag values for engine configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewTypeConfig] to create a
// [TypeConfig].
type Config struct {
	Flags    Flags
	Schema   string
	Output   string
	TypeTags bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Schema:   "schema",
		TypeTags: "type-tags",
		Output:   "output",
	}

	return f.NewConfig()
}

// RegisterFlags adds engine flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Schema, c.Flags.Schema, "s", "",
		"option schema file (.yaml, .yml, .json or .toml)")
	flags.BoolVarP(&c.TypeTags, c.Flags.TypeTags, "t", false,
		"prefix generated option lines with their [type]")
	flags.StringVarP(&c.Output, c.Flags.Output, "o", "-",
		"output file path (- for stdout)")
}

// RegisterCompletions registers shell completions for engine flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Schema,
		func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return []string{"yaml", "yml", "json", "toml"}, cobra.ShellCompDirectiveFilterFileExt
		})
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Schema, err)
	}

	return nil
}

// NewTypeConfig creates a [TypeConfig] holding the given types and
// definitions, in order.
func (c *Config) NewTypeConfig(types map[string]Type, defs []Definition, opts ...Option) *TypeConfig {
	tc := New(opts...)

	for name, t := range types {
		tc.AddType(name, t)
	}

	for _, def := range defs {
		tc.AddDefinition(def)
	}

	return tc
}
