package htmlattrs

import (
	"sort"

	"github.com/itsatony/go-htmlattrs/internal"
)

// Attr is a single attribute name and its raw value.
type Attr struct {
	Name  string
	Value any
}

// Attributes is an ordered attribute mapping. Names are unique and the
// slice order is the order in which attributes are emitted.
//
// The zero value is an empty mapping ready to use:
//
//	var attrs htmlattrs.Attributes
//	attrs = attrs.Set("id", "main").Set("dataRole", "nav")
type Attributes []Attr

// NewAttributes builds Attributes from alternating name/value arguments.
// A trailing name without a value is given a nil value and is therefore
// omitted when formatting. Non-string names are stringified.
func NewAttributes(pairs ...any) Attributes {
	attrs := make(Attributes, 0, (len(pairs)+1)/2)
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			name = internal.Stringify(pairs[i])
		}
		var value any
		if i+1 < len(pairs) {
			value = pairs[i+1]
		}
		attrs = attrs.Set(name, value)
	}
	return attrs
}

// FromMap converts a Go map into Attributes. Go maps carry no order, so
// names are sorted lexically. Nested maps are converted recursively so
// that helpers receive Attributes throughout.
func FromMap(m map[string]any) Attributes {
	if len(m) == 0 {
		return Attributes{}
	}

	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	attrs := make(Attributes, 0, len(names))
	for _, name := range names {
		attrs = append(attrs, Attr{Name: name, Value: normalizeValue(m[name])})
	}
	return attrs
}

// fromStringMap converts a map[string]string into sorted Attributes.
func fromStringMap(m map[string]string) Attributes {
	converted := make(map[string]any, len(m))
	for k, v := range m {
		converted[k] = v
	}
	return FromMap(converted)
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return FromMap(v)
	case map[string]string:
		return fromStringMap(v)
	default:
		return value
	}
}

// Len returns the number of attributes.
func (a Attributes) Len() int {
	return len(a)
}

// Get returns the value stored under name.
func (a Attributes) Get(name string) (any, bool) {
	if i := a.index(name); i >= 0 {
		return a[i].Value, true
	}
	return nil, false
}

// Has reports whether name is present, including names holding nil.
func (a Attributes) Has(name string) bool {
	return a.index(name) >= 0
}

// Set stores value under name. An existing name keeps its position;
// a new name is appended. The possibly grown slice is returned.
func (a Attributes) Set(name string, value any) Attributes {
	if i := a.index(name); i >= 0 {
		a[i].Value = value
		return a
	}
	return append(a, Attr{Name: name, Value: value})
}

// Delete removes name and returns the shortened slice.
func (a Attributes) Delete(name string) Attributes {
	i := a.index(name)
	if i < 0 {
		return a
	}
	return append(a[:i], a[i+1:]...)
}

// Names returns attribute names in order.
func (a Attributes) Names() []string {
	names := make([]string, len(a))
	for i, attr := range a {
		names[i] = attr.Name
	}
	return names
}

// Clone returns a shallow copy.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	copy(out, a)
	return out
}

// String renders the mapping in Go's map notation with order preserved,
// e.g. map[foo:bar baz:1]. This is how a mapping value is stringified
// when it reaches the default conversion path.
func (a Attributes) String() string {
	values := make([]any, len(a))
	for i, attr := range a {
		values[i] = attr.Value
	}
	return internal.StringifyPairs(a.Names(), values)
}

func (a Attributes) index(name string) int {
	for i := range a {
		if a[i].Name == name {
			return i
		}
	}
	return -1
}
