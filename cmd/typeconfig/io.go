package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"go.jacobcolvin.com/confkit/typeconfig"
	"go.jacobcolvin.com/confkit/typeconfig/loader"
)

const stdinPath = "-"

// ErrInteractiveInput indicates stdin was requested while it is a terminal.
var ErrInteractiveInput = errors.New("refusing to read from an interactive terminal")

var (
	errorColor = color.New(color.FgRed, color.Bold).SprintFunc()
	optionName = color.New(color.Bold).SprintFunc()
)

func errorPrefix() string {
	return errorColor("error:")
}

// readInput reads path, or stdin when path is "-".
func (a *app) readInput(path string) ([]byte, error) {
	if path != stdinPath {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", loader.ErrReadInput, err)
		}

		return data, nil
	}

	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, ErrInteractiveInput
	}

	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return nil, fmt.Errorf("%w: stdin: %w", loader.ErrReadInput, err)
	}

	return data, nil
}

// readData decodes a data file, choosing the format from its extension.
func (a *app) readData(path string) (map[string]typeconfig.Value, error) {
	if path != stdinPath {
		return loader.LoadData(path)
	}

	data, err := a.readInput(path)
	if err != nil {
		return nil, err
	}

	return loader.DecodeData(data, loader.FormatYAML)
}

// writeOutput writes to the --output file, or stdout for "-".
func (a *app) writeOutput(out []byte) error {
	if a.cfg.Output == "" || a.cfg.Output == stdinPath {
		_, err := a.stdout.Write(out)
		if err != nil {
			return fmt.Errorf("%w: %w", loader.ErrWriteOutput, err)
		}

		return nil
	}

	err := os.WriteFile(a.cfg.Output, out, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", loader.ErrWriteOutput, err)
	}

	return nil
}
