// Package pipeline runs extract, render and write for source files.
package pipeline

// Options are the rendering options of a single job.
type Options struct {
	// Template selects the wrapper template: a file path or a bundled name.
	Template string `yaml:"template,omitempty" toml:"template,omitempty"`

	// RootName is the namespace root for the browser-global branch.
	RootName string `yaml:"rootName,omitempty" toml:"rootName,omitempty"`
}

// Merge returns o with empty fields taken from fallback.
func (o Options) Merge(fallback Options) Options {
	if o.Template == "" {
		o.Template = fallback.Template
	}
	if o.RootName == "" {
		o.RootName = fallback.RootName
	}
	return o
}

// Job is one source file to wrap.
type Job struct {
	// Target is the project target the job belongs to; empty for ad-hoc runs.
	Target string

	// Src is the annotated source file.
	Src string

	// Dest is the output file. Empty means the output is only returned.
	Dest string

	// Options are the merged rendering options.
	Options Options
}
