// Package stringtest builds expected multi-line strings for tests.
package stringtest

import "strings"

// Input removes the common indentation from a raw string literal, so test
// documents can be written indented alongside the code that uses them.
//
// One leading and one trailing newline are dropped. Lines holding only
// whitespace become empty and do not count toward the common indentation.
//
// Example:
//
//	doc := stringtest.Input(`
//		option = value
//		# help
//	`) // -> "option = value\n# help"
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")

	lines := strings.Split(s, "\n")
	indent := -1

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""

			continue
		}

		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	if indent <= 0 {
		return strings.Join(lines, "\n")
	}

	for i, line := range lines {
		if line != "" {
			lines[i] = line[indent:]
		}
	}

	return strings.Join(lines, "\n")
}

// JoinLF joins lines with LF line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"option = value",
//		"# help",
//	) // -> "option = value\n# help"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}

// JoinCRLF joins lines with CRLF line endings, for documents written on
// Windows.
func JoinCRLF(ss ...string) string {
	return strings.Join(ss, "\r\n")
}
