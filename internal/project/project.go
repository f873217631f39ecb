// Package project loads umdwrap project files describing batch targets.
//
// A project file lists targets in order. Each target has its own options,
// which override the project-wide options, and one or more file groups:
//
//	options:
//	  rootName: root
//	targets:
//	  - name: lib
//	    options:
//	      template: amd
//	    files:
//	      - src: src/lib.js
//	        dest: dist/lib.js
//	      - src: ["src/widgets/*.js"]
//	        destDir: dist/widgets
package project

import (
	"github.com/quandora/grunt-umd-wrapper/internal/pipeline"
)

// FileNames are the project file names Find looks for, in order.
var FileNames = []string{"umdwrap.yaml", "umdwrap.yml", "umdwrap.toml"}

// Project is a loaded project file.
type Project struct {
	// Path is the project file path.
	Path string

	// Dir is the directory relative paths are resolved against.
	Dir string

	// Options apply to every target unless the target overrides them.
	Options pipeline.Options

	// Targets in declaration order.
	Targets []Target
}

// Target is a named set of file groups.
type Target struct {
	Name    string
	Options pipeline.Options
	Files   []FileGroup
}

// FileGroup maps source patterns to a destination.
type FileGroup struct {
	// Src holds file paths or glob patterns.
	Src []string

	// Dest is the output file; valid only when Src resolves to one file.
	Dest string

	// DestDir receives one output per source, named after the source.
	DestDir string
}

// Target returns the target with the given name.
func (p *Project) Target(name string) (Target, bool) {
	for _, t := range p.Targets {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}

// TargetNames returns the target names in declaration order.
func (p *Project) TargetNames() []string {
	names := make([]string, 0, len(p.Targets))
	for _, t := range p.Targets {
		names = append(names, t.Name)
	}
	return names
}
