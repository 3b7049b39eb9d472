package internal

import "strings"

// KebabCase converts every ASCII uppercase letter in name into a hyphen
// followed by its lowercase form. "dataTest" becomes "data-test" and
// "URL" becomes "-u-r-l". All other bytes are copied through unchanged.
func KebabCase(name string) string {
	upper := 0
	for i := 0; i < len(name); i++ {
		if isUpper(name[i]) {
			upper++
		}
	}
	if upper == 0 {
		return name
	}

	var b strings.Builder
	b.Grow(len(name) + upper)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isUpper(c) {
			b.WriteByte(hyphen)
			b.WriteByte(c + caseOffset)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isUpper(c byte) bool {
	return c >= upperFirst && c <= upperLast
}
