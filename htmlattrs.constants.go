package htmlattrs

// Default punctuation used when FormatOptions leave a field unset
const (
	DefaultQuote      = `"`
	DefaultAssignment = "="
	DefaultSeparator  = " "
)

// DefaultMaxDepth bounds recursive helper expansion. Zero means unlimited.
const DefaultMaxDepth = 100

// MaxDocumentNodes caps the nodes ParseAttributes decodes, aliases counted
// each time they are expanded.
const MaxDocumentNodes = 10000

// Built-in helper names
const (
	HelperNameData = "data"
)

// DataAttrPrefix is prepended to every key expanded by the data helper.
const DataAttrPrefix = "data-"

// booleanAttrs are rendered as a bare name with no assignment or value.
var booleanAttrs = map[string]bool{
	"checked":  true,
	"compact":  true,
	"declare":  true,
	"defer":    true,
	"disabled": true,
	"ismap":    true,
	"multiple": true,
	"nohref":   true,
	"noresize": true,
	"noshade":  true,
	"nowrap":   true,
	"readonly": true,
	"selected": true,
}

// IsBooleanAttr reports whether name is rendered as a bare token.
// The name is compared after kebab-case conversion.
func IsBooleanAttr(name string) bool {
	return booleanAttrs[name]
}

// Config file extensions
const (
	ConfigExtYAML = ".yaml"
	ConfigExtYML  = ".yml"
	ConfigExtTOML = ".toml"
)

// Log message constants
const (
	LogMsgFormatterCreated = "formatter created"
	LogMsgFormatStart      = "starting format"
	LogMsgFormatEnd        = "format complete"
	LogMsgHelperInvoked    = "helper invoked"
	LogMsgHelperFailed     = "helper failed"
	LogMsgShortCircuit     = "format short-circuited"
	LogMsgRegistryCreated  = "helper registry created"
	LogMsgHelperAdded      = "helper added"
	LogMsgHelperRemoved    = "helper removed"
	LogMsgHelperNotFound   = "helper not registered, nothing removed"
)

// Log field constants
const (
	LogFieldHelper     = "helper"
	LogFieldReplaced   = "replaced"
	LogFieldAttrCount  = "attr_count"
	LogFieldDepth      = "depth"
	LogFieldMaxDepth   = "max_depth"
	LogFieldAttribute  = "attribute"
	LogFieldOutputLen  = "output_length"
	LogFieldMode       = "mode"
	LogFieldDuration   = "duration"
	LogFieldResultKind = "result_kind"
)

// Processing mode names, used in logs
const (
	ModeNameIndependent  = "independent"
	ModeNameShortCircuit = "short_circuit"
)

// Helper result kind names, used in logs
const (
	ResultKindMapping = "mapping"
	ResultKindLiteral = "literal"
	ResultKindNone    = "none"
)
