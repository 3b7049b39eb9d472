package htmlattrs

// HelperFunc transforms the value of the attribute it is registered for.
// It is invoked with whatever value the attribute holds, nil excluded.
// Any error it returns is passed back from Format unchanged.
type HelperFunc func(value any) (HelperResult, error)

// HelperResult is what a helper hands back to the formatter. It is either
// a Mapping, which is formatted recursively with the same options, or a
// Literal, which is used verbatim. A nil HelperResult contributes nothing.
type HelperResult interface {
	helperResult()
}

// Mapping is a helper result expanded into further attributes.
type Mapping Attributes

// Literal is a helper result emitted as-is. It is not escaped.
type Literal string

func (Mapping) helperResult() {}
func (Literal) helperResult() {}

// DataHelper expands a mapping into data-* attributes:
//
//	data: {foo: "bar", baz: 1}  ->  data-foo="bar" data-baz="1"
//
// Keys keep their order; plain Go maps are sorted first. Keys are still
// kebab-cased afterwards, so {userId: 7} becomes data-user-id="7".
func DataHelper(value any) (HelperResult, error) {
	attrs, ok := asAttributes(value)
	if !ok {
		return nil, NewHelperValueError(HelperNameData, value)
	}

	expanded := make(Mapping, 0, len(attrs))
	for _, attr := range attrs {
		expanded = append(expanded, Attr{Name: DataAttrPrefix + attr.Name, Value: attr.Value})
	}
	return expanded, nil
}

// asAttributes accepts the mapping shapes a caller is likely to pass.
func asAttributes(value any) (Attributes, bool) {
	switch v := value.(type) {
	case Attributes:
		return v, true
	case Mapping:
		return Attributes(v), true
	case map[string]any:
		return FromMap(v), true
	case map[string]string:
		return fromStringMap(v), true
	default:
		return nil, false
	}
}

func resultKind(r HelperResult) string {
	switch r.(type) {
	case Mapping:
		return ResultKindMapping
	case Literal:
		return ResultKindLiteral
	default:
		return ResultKindNone
	}
}

// String renders the mapping like Attributes.String.
func (m Mapping) String() string {
	return Attributes(m).String()
}
