package templates

import (
	"errors"
	"os"

	oerrors "github.com/quandora/grunt-umd-wrapper/internal/errors"
)

// Source is a resolved template.
type Source struct {
	// Selector is the value the template was requested by.
	Selector string

	// Path is the file the template was read from; empty for bundled templates.
	Path string

	// Bundled reports whether the template is embedded in the binary.
	Bundled bool

	// Text is the template text.
	Text string
}

// Origin describes where the template came from, for logging.
func (s *Source) Origin() string {
	if s.Bundled {
		return "bundled:" + s.Selector
	}
	return s.Path
}

// FileReader reads a template file from disk.
type FileReader func(path string) ([]byte, error)

// Resolver turns a template selector into template text.
type Resolver struct {
	read FileReader
}

// NewResolver creates a resolver. A nil reader uses os.ReadFile.
func NewResolver(read FileReader) *Resolver {
	if read == nil {
		read = os.ReadFile
	}
	return &Resolver{read: read}
}

// Resolve looks the selector up as a file path first and as a bundled
// template name second. An empty selector selects the default template.
func (r *Resolver) Resolve(selector string) (*Source, error) {
	if selector == "" {
		selector = GetDefault().Name
	}

	if info, err := os.Stat(selector); err == nil && info.Mode().IsRegular() {
		data, err := r.read(selector)
		if err != nil {
			var readErr *oerrors.ReadError
			if errors.As(err, &readErr) {
				return nil, err
			}
			return nil, oerrors.NewReadError(selector, err)
		}
		return &Source{Selector: selector, Path: selector, Text: string(data)}, nil
	}

	if IsValidTemplate(selector) {
		text, err := ReadBundled(TemplateName(selector))
		if err != nil {
			return nil, oerrors.NewReadError(selector, err)
		}
		return &Source{Selector: selector, Bundled: true, Text: text}, nil
	}

	return nil, oerrors.NewTemplateNotFoundError(selector, ValidTemplates())
}

// Resolve resolves selector with the default resolver.
func Resolve(selector string) (*Source, error) {
	return NewResolver(nil).Resolve(selector)
}
