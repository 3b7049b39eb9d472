// Package htmlattrs converts an ordered key/value mapping into a string of
// HTML attributes, ready to be placed inside a tag by a template:
//
//	out, _ := htmlattrs.Format(htmlattrs.NewAttributes("id", "main", "dataRole", "nav"))
//	// out: id="main" data-role="nav"
//
// # Conversion Rules
//
// Attributes are processed in order:
//
//   - a nil value omits the attribute
//   - a helper registered under the attribute name handles it (see below)
//   - camelCase names become kebab-case: dataTest -> data-test
//   - boolean attributes (checked, disabled, selected, ...) render as a bare name
//   - string values are escaped (& " ' < >); other values are stringified
//
// # Helpers
//
// A helper is a function registered for one attribute name. It returns a
// Mapping, which is formatted recursively, or a Literal, which is used
// as-is. The built-in data helper expands nested mappings:
//
//	htmlattrs.Format(htmlattrs.NewAttributes("data", map[string]any{"foo": "bar"}))
//	// data-foo="bar"
//
// Register your own with AddHelper and drop them with RemoveHelper. Both
// return the formatter so calls can be chained:
//
//	htmlattrs.AddHelper("class", classHelper).RemoveHelper("data")
//
// # Formatters And Registries
//
// The package-level functions use one process-wide formatter whose registry
// is shared by every caller. Code that needs isolation creates its own:
//
//	f := htmlattrs.MustNew(
//	    htmlattrs.WithRegistry(htmlattrs.NewRegistry(nil)),
//	    htmlattrs.WithDefaults(htmlattrs.FormatOptions{}.WithQuote("'")),
//	    htmlattrs.WithLogger(logger),
//	)
//
// # Processing Modes
//
// By default every attribute contributes to the output. WithShortCircuit
// enables the compatibility mode in which the first helper-handled or
// boolean attribute ends formatting and becomes the entire result.
package htmlattrs

import "sync"

var (
	defaultFormatter     *Formatter
	defaultFormatterOnce sync.Once
)

// Default returns the process-wide formatter used by the package-level
// functions. Its registry starts with the built-in data helper.
func Default() *Formatter {
	defaultFormatterOnce.Do(func() {
		defaultFormatter = MustNew()
	})
	return defaultFormatter
}

// Format renders attrs with the default formatter.
func Format(attrs Attributes, opts ...FormatOptions) (string, error) {
	return Default().Format(attrs, opts...)
}

// FormatMap renders a Go map with the default formatter. Names are sorted.
func FormatMap(m map[string]any, opts ...FormatOptions) (string, error) {
	return Default().FormatMap(m, opts...)
}

// AddHelper registers fn on the default formatter, replacing any helper of
// the same name. The change is visible to every caller.
func AddHelper(name string, fn HelperFunc) *Formatter {
	return Default().AddHelper(name, fn)
}

// RemoveHelper removes name from the default formatter's registry.
func RemoveHelper(name string) *Formatter {
	return Default().RemoveHelper(name)
}
