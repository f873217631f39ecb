// Package annotation extracts directive annotations from module source text.
//
// A directive is a single line of the form
//
//	@<token> <value>
//
// optionally preceded by blanks. Recognized tokens are module, export,
// import and include; any other token is left in the output unchanged.
package annotation

// Directive tokens understood by the extractor.
const (
	TokenModule  = "module"
	TokenExport  = "export"
	TokenImport  = "import"
	TokenInclude = "include"
)

// Import is an external dependency reference.
type Import struct {
	// Key identifies the dependency under every loading convention.
	Key string `json:"key" yaml:"key"`

	// Binding is the local name the dependency is bound to inside the
	// factory function. Empty means side-effect only.
	Binding string `json:"binding,omitempty" yaml:"binding,omitempty"`
}

// HasBinding reports whether the import is bound to a local name.
func (i Import) HasBinding() bool {
	return i.Binding != ""
}

// Module is the parsed result of one source file.
type Module struct {
	// Name is the value of the last @module directive. Informational only.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Export is the value of the last @export directive. Empty means absent.
	Export string `json:"export,omitempty" yaml:"export,omitempty"`

	// Imports holds every @import in source order, duplicates included.
	Imports []Import `json:"imports,omitempty" yaml:"imports,omitempty"`

	// Body is the source with directives removed and includes inlined,
	// surrounded by exactly one leading and one trailing newline.
	Body string `json:"body" yaml:"body"`
}

// Directive is a single directive occurrence found by Scan.
type Directive struct {
	// Token is the lowercase directive word without the leading @.
	Token string

	// Value is the remainder of the line, trimmed.
	Value string

	// Start and End delimit the directive text in the source, from the
	// beginning of the line up to but excluding the line terminator.
	Start int
	End   int
}

// Known reports whether the extractor interprets the directive.
func (d Directive) Known() bool {
	switch d.Token {
	case TokenModule, TokenExport, TokenImport, TokenInclude:
		return true
	default:
		return false
	}
}
