// Package templates provides the bundled wrapper templates and resolves
// template selectors to template text.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed bundled/*.template
var bundledFS embed.FS

const (
	bundledDir = "bundled"

	// Extension is the file extension of bundled templates.
	Extension = ".template"
)

// TemplateName names a bundled template.
type TemplateName string

const (
	// UMD is the default three-branch UMD wrapper with a browser-global fallback.
	UMD TemplateName = "umd"

	// AMD wraps the module in a define() call only.
	AMD TemplateName = "amd"

	// CommonJS wraps the module for require()/module.exports only.
	CommonJS TemplateName = "commonjs"
)

// ValidTemplates returns all bundled template names, sorted.
func ValidTemplates() []string {
	entries, err := fs.ReadDir(bundledFS, bundledDir)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Extension) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), Extension))
	}
	sort.Strings(names)
	return names
}

// IsValidTemplate checks if name is a bundled template.
func IsValidTemplate(name string) bool {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return false
	}
	_, err := fs.Stat(bundledFS, bundledPath(TemplateName(name)))
	return err == nil
}

// ReadBundled returns the text of a bundled template.
func ReadBundled(name TemplateName) (string, error) {
	data, err := fs.ReadFile(bundledFS, bundledPath(name))
	if err != nil {
		return "", fmt.Errorf("unknown template: %s", name)
	}
	return string(data), nil
}

func bundledPath(name TemplateName) string {
	return path.Join(bundledDir, string(name)+Extension)
}
