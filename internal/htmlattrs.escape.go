package internal

import "strings"

// attrEscaper performs a single left-to-right pass, which yields the same
// result as replacing & first and the remaining characters afterwards:
// entities produced by the pass are never rescanned.
var attrEscaper = strings.NewReplacer(
	"&", EntityAmp,
	`"`, EntityQuot,
	"'", EntityApos,
	"<", EntityLt,
	">", EntityGt,
)

// EscapeAttr escapes s for use inside a quoted attribute value.
func EscapeAttr(s string) string {
	if !strings.ContainsAny(s, `&"'<>`) {
		return s
	}
	return attrEscaper.Replace(s)
}
