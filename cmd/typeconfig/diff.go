package main

import (
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var (
	deleted  = color.New(color.FgRed).SprintFunc()
	inserted = color.New(color.FgGreen).SprintFunc()
)

// lineDiff renders a line-level diff of before and after. Removed lines start
// with "-", added lines with "+", and unchanged lines with a space. It returns
// an empty string when the texts are equal.
func lineDiff(before, after string) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder

	for _, d := range diffs {
		for line := range strings.Lines(d.Text) {
			line = strings.TrimSuffix(line, "\n")

			switch d.Type {
			case diffmatchpatch.DiffDelete:
				sb.WriteString(deleted("-" + line))
			case diffmatchpatch.DiffInsert:
				sb.WriteString(inserted("+" + line))
			case diffmatchpatch.DiffEqual:
				sb.WriteString(" " + line)
			}

			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
