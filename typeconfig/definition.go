package typeconfig

// Definition describes one configuration option.
type Definition struct {
	// Name is the option key as it appears in documents.
	Name string
	// Type names the [Type] used to validate and cast values. It is resolved
	// when a value is validated, not when the option is added.
	Type string
	// Default is substituted for empty values. [TypeConfig.HealConfig]
	// overwrites it with values recovered from a document.
	Default string
	// CanBeEmpty permits a value that is still empty after default
	// substitution.
	CanBeEmpty bool
	// Help is rendered as "# " comment lines. May be multi-line.
	Help string
	// ImportantHelp is rendered as "# !!! " comment lines before Help.
	ImportantHelp string
}

// DefinitionOption configures a [Definition] added with
// [TypeConfig.AddOption].
type DefinitionOption func(*Definition)

// WithDefault sets the default value.
func WithDefault(value string) DefinitionOption {
	return func(d *Definition) {
		d.Default = value
	}
}

// WithCanBeEmpty allows the option to be left empty.
func WithCanBeEmpty(canBeEmpty bool) DefinitionOption {
	return func(d *Definition) {
		d.CanBeEmpty = canBeEmpty
	}
}

// WithImportantHelp sets the text rendered with a "!!!" marker.
func WithImportantHelp(text string) DefinitionOption {
	return func(d *Definition) {
		d.ImportantHelp = text
	}
}
