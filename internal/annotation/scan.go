package annotation

import (
	"regexp"
	"strings"
)

// directivePattern matches one directive per line. A line starts after \n or
// after a lone \r; the directive itself is group 1. The value class excludes
// line terminators so a match never crosses a line and stops before \r\n.
var directivePattern = regexp.MustCompile(`(?m)(?:^|\r)([ \t]*@([a-z]+)[ \t]+([^\r\n]+))`)

// asSeparator splits an import value into key and binding.
var asSeparator = regexp.MustCompile(`\s+as\s+`)

// Scan returns the directives found in src, in source order.
// Directives whose value is blank are skipped and stay in the text.
func Scan(src string) []Directive {
	matches := directivePattern.FindAllStringSubmatchIndex(src, -1)
	if len(matches) == 0 {
		return nil
	}

	directives := make([]Directive, 0, len(matches))
	for _, m := range matches {
		value := strings.TrimSpace(src[m[6]:m[7]])
		if value == "" {
			continue
		}
		directives = append(directives, Directive{
			Token: src[m[4]:m[5]],
			Value: value,
			Start: m[2],
			End:   m[3],
		})
	}
	return directives
}

// ParseImport parses an @import value. Only a value that splits into exactly
// two parts around "as" is treated as aliased; anything else is taken whole
// as the key.
func ParseImport(value string) Import {
	parts := asSeparator.Split(value, -1)
	if len(parts) == 2 && parts[0] != "" && parts[1] != "" {
		return Import{Key: parts[0], Binding: parts[1]}
	}
	return Import{Key: value}
}
