package typeconfig

import (
	"fmt"
	"strings"
)

// Line is one option line of a document.
type Line struct {
	// Tag is the bracketed type prefix, if the line had one. It is kept for
	// display only; types always come from the schema.
	Tag    string
	Option string
	Value  string
}

// ParseLine splits a trimmed, non-comment line into its option name and raw
// value. A leading "[Tag]" and anything after the first "#" are dropped. Only
// the first "=" is significant. It returns [ErrMalformedLine] if there is no
// "=" or the option name is empty.
func ParseLine(line string) (Line, error) {
	var l Line

	rest := line
	if before, after, found := strings.Cut(rest, "]"); found {
		if tag, ok := strings.CutPrefix(strings.TrimSpace(before), "["); ok {
			l.Tag = strings.TrimSpace(tag)
		}

		rest = after
	}

	rest, _, _ = strings.Cut(rest, "#")

	option, value, found := strings.Cut(rest, "=")
	option = strings.TrimSpace(option)

	if !found || option == "" {
		return Line{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	l.Option = option
	l.Value = strings.TrimSpace(value)

	return l, nil
}

// CleanLines returns the trimmed lines of doc, skipping blank lines and lines
// whose first non-space character is "#".
func CleanLines(doc string) []string {
	var lines []string

	for line := range strings.Lines(doc) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lines = append(lines, line)
	}

	return lines
}

// splitText splits multi-line help text. Empty text yields no lines.
func splitText(s string) []string {
	if s == "" {
		return nil
	}

	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")

	return strings.Split(s, "\n")
}
