package templates

import "fmt"

// DefaultTemplateName is the template used when --template is not specified.
const DefaultTemplateName = string(UMD)

// Template describes a bundled template.
type Template struct {
	// Name is the template identifier (umd, amd, commonjs).
	Name string

	// Description explains what the wrapper produces.
	Description string

	// Default indicates if this is the default template when --template is omitted.
	Default bool

	// UseCase describes when to use this template.
	UseCase string
}

var registry = map[string]Template{
	string(UMD): {
		Name:        string(UMD),
		Description: "AMD, CommonJS and browser-global loaders",
		UseCase:     "Libraries consumed by any loader or a plain script tag",
		Default:     true,
	},
	string(AMD): {
		Name:        string(AMD),
		Description: "define() only",
		UseCase:     "RequireJS or other AMD-only applications",
	},
	string(CommonJS): {
		Name:        string(CommonJS),
		Description: "require() and module.exports only",
		UseCase:     "Node and bundlers that understand CommonJS",
	},
}

// Get returns a template by name.
// Returns an error if the template is not found.
func Get(name string) (Template, error) {
	t, ok := registry[name]
	if !ok {
		return Template{}, fmt.Errorf("unknown template %q; valid templates: %v", name, Names())
	}
	return t, nil
}

// List returns all bundled templates in name order.
func List() []Template {
	names := Names()
	list := make([]Template, 0, len(names))
	for _, n := range names {
		if t, ok := registry[n]; ok {
			list = append(list, t)
			continue
		}
		list = append(list, Template{Name: n})
	}
	return list
}

// GetDefault returns the default template.
func GetDefault() Template {
	return registry[DefaultTemplateName]
}

// Names returns all template names.
func Names() []string {
	return ValidTemplates()
}
