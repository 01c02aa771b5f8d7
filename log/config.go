package log

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags names the log flags. The zero value is not usable; start from
// [NewConfig] or set both names.
type Flags struct {
	Level  string
	Format string
}

// NewConfig returns a [Config] registering flags under these names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Level:  LevelInfo,
		Format: FormatText,
		Flags:  f,
	}
}

// Config selects the [Level] and [Format] of the process logger.
//
// Both fields implement [pflag.Value], so bad names are rejected while flags
// are parsed rather than when the handler is built.
type Config struct {
	Flags  Flags
	Level  Level
	Format Format
}

// NewConfig returns a [Config] at [LevelInfo] and [FormatText], with the flag
// names "log-level" and "log-format".
func NewConfig() *Config {
	return Flags{Level: "log-level", Format: "log-format"}.NewConfig()
}

// RegisterFlags binds the level and format flags to c.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.Var(&c.Level, c.Flags.Level,
		fmt.Sprintf("log level, one of: %s", GetAllLevelStrings()))
	flags.Var(&c.Format, c.Flags.Format,
		fmt.Sprintf("log format, one of: %s", GetAllFormatStrings()))
}

// RegisterCompletions completes both flags with their accepted names.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	for flag, values := range map[string][]string{
		c.Flags.Level:  GetAllLevelStrings(),
		c.Flags.Format: GetAllFormatStrings(),
	} {
		err := cmd.RegisterFlagCompletionFunc(flag,
			cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// NewHandler returns a [slog.Handler] writing to w at c's level and format.
func (c *Config) NewHandler(w io.Writer) slog.Handler {
	return NewHandler(w, c.Level, c.Format)
}

// Set implements [pflag.Value].
func (l *Level) Set(s string) error {
	v, err := ParseLevel(s)
	if err != nil {
		return err
	}

	*l = v

	return nil
}

// String implements [pflag.Value].
func (l *Level) String() string { return string(*l) }

// Type implements [pflag.Value].
func (*Level) Type() string { return "level" }

// Set implements [pflag.Value].
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}

	*f = v

	return nil
}

// String implements [pflag.Value].
func (f *Format) String() string { return string(*f) }

// Type implements [pflag.Value].
func (*Format) Type() string { return "format" }
