package typeconfig

import (
	"strings"
)

const (
	helpPrefix      = "# "
	importantPrefix = "# !!! "
	blockSeparator  = "\n\n"
)

// FormatOption renders def as an editable document block:
//
//	[type] option = default
//	# !!! important help
//	# help
//
// The "[type]" prefix is only written when withTypeTag is set. Comment lines
// are omitted when the corresponding text is empty.
func FormatOption(def Definition, withTypeTag bool) string {
	var sb strings.Builder

	if withTypeTag {
		sb.WriteString("[" + def.Type + "] ")
	}

	sb.WriteString(def.Name + " = " + def.Default)

	for _, line := range splitText(def.ImportantHelp) {
		sb.WriteString("\n" + importantPrefix + line)
	}

	for _, line := range splitText(def.Help) {
		sb.WriteString("\n" + helpPrefix + line)
	}

	return sb.String()
}

// CreateConfig renders every option in registration order, separated by a
// blank line.
func (tc *TypeConfig) CreateConfig(withTypeTag bool) string {
	return formatAll(tc.Options(), withTypeTag)
}

func formatAll(defs []Definition, withTypeTag bool) string {
	blocks := make([]string, 0, len(defs))
	for _, def := range defs {
		blocks = append(blocks, FormatOption(def, withTypeTag))
	}

	return strings.Join(blocks, blockSeparator)
}
