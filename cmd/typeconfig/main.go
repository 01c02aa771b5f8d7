// Package main provides the CLI entry point for typeconfig, a tool that
// creates, checks, merges, and heals line-oriented configuration documents
// against a typed option schema.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/confkit/log"
	"go.jacobcolvin.com/confkit/typeconfig"
	"go.jacobcolvin.com/confkit/typeconfig/loader"
	"go.jacobcolvin.com/confkit/typeconfig/types"
	"go.jacobcolvin.com/confkit/version"
)

var (
	// ErrNoSchema indicates a command needs --schema and none was given.
	ErrNoSchema = errors.New("no schema given")
	// ErrInvalidConfig indicates a document or data file has invalid options.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// app carries the streams and configuration shared by all commands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	cfg    *typeconfig.Config
	logCfg *log.Config
	logger *slog.Logger
}

func main() {
	a := &app{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		cfg:    typeconfig.NewConfig(),
		logCfg: log.NewConfig(),
	}

	err := a.rootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorPrefix(), err)
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "typeconfig",
		Short: "Work with typed line-oriented configuration documents",
		Long: `typeconfig reads an option schema and uses it to generate, check, merge,
and repair configuration documents made of "option = value" lines, where
"#" starts a comment and an optional "[type]" tag precedes the option.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			a.logger = slog.New(a.logCfg.NewHandler(a.stderr))
			slog.SetDefault(a.logger)
		},
	}

	a.logCfg.RegisterFlags(root.PersistentFlags())
	a.cfg.RegisterFlags(root.PersistentFlags())

	for _, register := range []func(*cobra.Command) error{
		a.logCfg.RegisterCompletions,
		a.cfg.RegisterCompletions,
	} {
		err := register(root)
		if err != nil {
			fmt.Fprintf(a.stderr, "register completions: %v\n", err)
		}
	}

	root.AddCommand(
		a.createCmd(),
		a.checkCmd(),
		a.validateCmd(),
		a.mergeCmd(),
		a.healCmd(),
		a.schemaCmd(),
		a.versionCmd(),
	)

	return root
}

// typeConfig builds the engine from the schema file and the built-in types,
// including bounded variants such as "int_max_100" named by the schema.
func (a *app) typeConfig() (*typeconfig.TypeConfig, error) {
	if a.cfg.Schema == "" {
		return nil, fmt.Errorf("%w: set --%s", ErrNoSchema, a.cfg.Flags.Schema)
	}

	defs, err := loader.LoadSchema(a.cfg.Schema)
	if err != nil {
		return nil, err
	}

	return a.cfg.NewTypeConfig(types.ForDefinitions(defs), defs, typeconfig.WithLogger(a.logger)), nil
}

func (a *app) createCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Generate a document with every option at its default",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			tc, err := a.typeConfig()
			if err != nil {
				return err
			}

			return a.writeOutput([]byte(tc.CreateConfig(a.cfg.TypeTags) + "\n"))
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <document>",
		Short: "Parse a document and print its typed values as JSON",
		Long: `check parses a configuration document, validates every line against the
schema, and prints the typed values as JSON. Errors are printed per option to
stderr, and the exit status is 1 when any option is invalid. Use "-" to read
the document from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tc, err := a.typeConfig()
			if err != nil {
				return err
			}

			doc, err := a.readInput(args[0])
			if err != nil {
				return err
			}

			config, errs := tc.ParseConfig(string(doc))

			return a.report(config, errs)
		},
	}
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <data>",
		Short: "Validate a YAML, JSON or TOML data file against the schema",
		Long: `validate reads a flat mapping of option names to values and validates it
like check does for documents. A null value counts as not set, so the option's
default applies. Use "-" to read YAML from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tc, err := a.typeConfig()
			if err != nil {
				return err
			}

			data, err := a.readData(args[0])
			if err != nil {
				return err
			}

			config, errs := tc.ValidateConfig(data)

			return a.report(config, errs)
		},
	}
}

func (a *app) mergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <overwriting> <overwritable>",
		Short: "Merge two data files and print the result as YAML",
		Long: `merge combines two flat data files. Values set in <overwriting> win, then
values set in <overwritable>, then schema defaults. Options that can be empty
and have no value are printed as null.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			tc, err := a.typeConfig()
			if err != nil {
				return err
			}

			overwriting, err := a.readData(args[0])
			if err != nil {
				return err
			}

			overwritable, err := a.readData(args[1])
			if err != nil {
				return err
			}

			merged, err := tc.MergeConfig(overwriting, overwritable)
			if err != nil {
				return err
			}

			out, err := loader.EncodeData(merged)
			if err != nil {
				return err
			}

			return a.writeOutput(out)
		},
	}
}

func (a *app) healCmd() *cobra.Command {
	var write, diff bool

	cmd := &cobra.Command{
		Use:   "heal <document>",
		Short: "Rebuild a document from the schema, keeping recoverable values",
		Long: `heal regenerates a document with every option and its help text, reusing
any value it can recover from well-formed lines of the input. Unreadable lines
are dropped. With --write the file is rewritten in place under a lock file.
With --diff a line diff is printed instead of the healed document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tc, err := a.typeConfig()
			if err != nil {
				return err
			}

			heal := func(doc string) string {
				return tc.HealConfig(doc, a.cfg.TypeTags) + "\n"
			}

			before, after, err := a.heal(args[0], heal, write)
			if err != nil {
				return err
			}

			switch {
			case diff:
				return a.writeOutput([]byte(lineDiff(before, after)))
			case write:
				return nil
			}

			return a.writeOutput([]byte(after))
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the document in place")
	cmd.Flags().BoolVarP(&diff, "diff", "d", false, "print a line diff instead of the healed document")

	return cmd
}

func (a *app) heal(path string, heal loader.HealFunc, write bool) (string, string, error) {
	if write {
		if path == stdinPath {
			return "", "", fmt.Errorf("%w: --write needs a file, not stdin", loader.ErrWriteOutput)
		}

		return loader.HealFile(path, heal)
	}

	doc, err := a.readInput(path)
	if err != nil {
		return "", "", err
	}

	return string(doc), heal(string(doc)), nil
}

func (a *app) schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print a JSON Schema (Draft 7) for the option schema",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			tc, err := a.typeConfig()
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(tc.JSONSchema(), "", "  ")
			if err != nil {
				return fmt.Errorf("%w: %w", loader.ErrWriteOutput, err)
			}

			return a.writeOutput(append(out, '\n'))
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(a.stdout, version.Get().String())
			if err != nil {
				return fmt.Errorf("%w: %w", loader.ErrWriteOutput, err)
			}

			return nil
		},
	}
}

// report prints typed values as JSON and each error on its own line. It
// returns [ErrInvalidConfig] when errs is not empty.
func (a *app) report(config map[string]any, errs typeconfig.Errors) error {
	out, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", loader.ErrWriteOutput, err)
	}

	err = a.writeOutput(append(out, '\n'))
	if err != nil {
		return err
	}

	for _, key := range errs.Keys() {
		fmt.Fprintf(a.stderr, "%s %s: %v\n", errorPrefix(), optionName(key), errs[key])
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %d option(s)", ErrInvalidConfig, len(errs))
	}

	return nil
}
