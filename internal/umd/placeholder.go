// Package umd renders module descriptors into UMD wrapper templates.
package umd

import "regexp"

// Placeholder is a template token written as %NAME% in template text.
type Placeholder string

// Placeholders substituted by Render. Any other %TOKEN% passes through.
const (
	Args        Placeholder = "ARGS"
	CJSArgs     Placeholder = "CJS_ARGS"
	BrowserArgs Placeholder = "BROWSER_ARGS"
	AMDRequires Placeholder = "AMD_REQUIRES"
	CJSRequires Placeholder = "CJS_REQUIRES"
	ExportName  Placeholder = "EXPORT_NAME"
	Root        Placeholder = "ROOT"
	Src         Placeholder = "SRC"
)

// Placeholders returns every recognized placeholder in template order.
func Placeholders() []Placeholder {
	return []Placeholder{Args, CJSArgs, BrowserArgs, AMDRequires, CJSRequires, ExportName, Root, Src}
}

// String returns the placeholder as it appears in template text.
func (p Placeholder) String() string {
	return "%" + string(p) + "%"
}

var placeholderPattern = regexp.MustCompile(`%([^%]+)%`)

// Tokens returns the placeholder names used in tpl, in order of first use.
func Tokens(tpl string) []string {
	var tokens []string
	seen := make(map[string]bool)
	for _, m := range placeholderPattern.FindAllStringSubmatch(tpl, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			tokens = append(tokens, m[1])
		}
	}
	return tokens
}
