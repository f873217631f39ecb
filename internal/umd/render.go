package umd

import (
	"strings"

	"github.com/quandora/grunt-umd-wrapper/internal/annotation"
)

// DefaultRootName is the namespace root used when none is configured.
const DefaultRootName = "root"

// Config carries the caller-supplied rendering parameters.
type Config struct {
	// RootName is the global namespace root for the browser-global branch.
	RootName string
}

// Fragments holds the values substituted into a template.
type Fragments struct {
	Args        string
	CJSArgs     string
	BrowserArgs string
	AMDRequires string
	CJSRequires string

	// ExportName is empty when the module declares no export, in which case
	// %EXPORT_NAME% is left in the output.
	ExportName string
	Root       string
	Src        string
}

// NewFragments derives the template values for m under the given root.
func NewFragments(m *annotation.Module, root string) Fragments {
	var (
		args        []string
		cjsArgs     []string
		browserArgs []string
		amdRequires []string
		cjsRequires []string
	)

	for _, imp := range m.Imports {
		if imp.HasBinding() {
			args = append(args, imp.Binding)
			cjsArgs = append(cjsArgs, "require('"+imp.Key+"')")
			browserArgs = append(browserArgs, root+"."+imp.Binding)
		} else {
			cjsRequires = append(cjsRequires, "require('"+imp.Key+"');")
		}
		amdRequires = append(amdRequires, "'"+imp.Key+"'")
	}

	return Fragments{
		Args:        strings.Join(args, ", "),
		CJSArgs:     strings.Join(cjsArgs, ", "),
		BrowserArgs: strings.Join(browserArgs, ", "),
		AMDRequires: strings.Join(amdRequires, ", "),
		CJSRequires: strings.Join(cjsRequires, "\n"),
		ExportName:  m.Export,
		Root:        root,
		Src:         m.Body,
	}
}

// Lookup returns the value for a placeholder token and whether it should be
// substituted.
func (f Fragments) Lookup(token string) (string, bool) {
	switch Placeholder(token) {
	case Args:
		return f.Args, true
	case CJSArgs:
		return f.CJSArgs, true
	case BrowserArgs:
		return f.BrowserArgs, true
	case AMDRequires:
		return f.AMDRequires, true
	case CJSRequires:
		return f.CJSRequires, true
	case ExportName:
		return f.ExportName, f.ExportName != ""
	case Root:
		return f.Root, true
	case Src:
		return f.Src, true
	default:
		return "", false
	}
}

// Substitute replaces every known %TOKEN% in tpl in a single pass.
// Substituted values are never scanned for further placeholders.
func (f Fragments) Substitute(tpl string) string {
	return placeholderPattern.ReplaceAllStringFunc(tpl, func(match string) string {
		if v, ok := f.Lookup(match[1 : len(match)-1]); ok {
			return v
		}
		return match
	})
}

// Render wraps m with tpl. The result depends only on its arguments.
func Render(m *annotation.Module, tpl string, cfg Config) string {
	root := cfg.RootName
	if root == "" {
		root = DefaultRootName
	}
	return NewFragments(m, root).Substitute(tpl)
}
