package internal

// Character constants used by the kebab-case scan
const (
	hyphen     = '-'
	upperFirst = 'A'
	upperLast  = 'Z'
	caseOffset = 'a' - 'A'
)

// Entity constants for attribute value escaping
const (
	EntityAmp  = "&amp;"
	EntityQuot = "&quot;"
	EntityApos = "&#39;"
	EntityLt   = "&lt;"
	EntityGt   = "&gt;"
)

// Stringification constants
const (
	StringValueTrue  = "true"
	StringValueFalse = "false"
	StringValueEmpty = ""
	StringMapOpen    = "map["
	StringMapClose   = "]"
	StringPairSep    = ":"
	StringItemSep    = " "
)
