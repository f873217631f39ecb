package annotation

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/quandora/grunt-umd-wrapper/internal/errors"
)

// bom is the UTF-8 byte order mark some editors write at the start of a file.
const bom = "\uFEFF"

// StripBOM removes one leading UTF-8 byte order mark from s.
func StripBOM(s string) string {
	return strings.TrimPrefix(s, bom)
}

// ReadFunc reads the file at rel, resolved against dir.
type ReadFunc func(dir, rel string) (string, error)

// ReadFile is the default ReadFunc backed by the local filesystem.
// Absolute paths are read as-is.
func ReadFile(dir, rel string) (string, error) {
	path := ResolvePath(dir, rel)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", oerrors.NewReadError(path, err)
	}
	return StripBOM(string(data)), nil
}

// ResolvePath resolves an include path against the directory of the source
// file that references it.
func ResolvePath(dir, rel string) string {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(dir, rel)
}

// Extract scans src for directives and builds the module descriptor.
// Includes are resolved against baseDir through read.
func Extract(baseDir, src string, read ReadFunc) (*Module, error) {
	return Fold(baseDir, src, Scan(src), read)
}

// Fold builds a Module from the directives previously found in src.
// Recognized directives are removed from the text; @include directives are
// replaced by the raw contents of the referenced file, which are not scanned
// again. A failing include aborts the whole fold.
func Fold(baseDir, src string, directives []Directive, read ReadFunc) (*Module, error) {
	if read == nil {
		read = ReadFile
	}

	m := &Module{}
	var out strings.Builder
	out.Grow(len(src))

	last := 0
	for _, d := range directives {
		if !d.Known() {
			continue
		}

		out.WriteString(src[last:d.Start])
		last = d.End

		switch d.Token {
		case TokenModule:
			m.Name = d.Value
		case TokenExport:
			m.Export = d.Value
		case TokenImport:
			m.Imports = append(m.Imports, ParseImport(d.Value))
		case TokenInclude:
			content, err := read(baseDir, d.Value)
			if err != nil {
				return nil, wrapRead(ResolvePath(baseDir, d.Value), err)
			}
			out.WriteString(content)
		}
	}
	out.WriteString(src[last:])

	m.Body = "\n" + strings.TrimSpace(out.String()) + "\n"
	return m, nil
}

// Unknown returns the directives in src that the extractor leaves untouched.
func Unknown(directives []Directive) []Directive {
	var unknown []Directive
	for _, d := range directives {
		if !d.Known() {
			unknown = append(unknown, d)
		}
	}
	return unknown
}

// wrapRead makes sure read failures surface as ReadError regardless of the
// ReadFunc implementation.
func wrapRead(path string, err error) error {
	var readErr *oerrors.ReadError
	if errors.As(err, &readErr) {
		return err
	}
	return oerrors.NewReadError(path, err)
}
