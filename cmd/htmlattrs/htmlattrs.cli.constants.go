package main

// Command names
const (
	CmdNameRender  = "render"
	CmdNameVersion = "version"
)

// Flag names - long form
const (
	FlagData         = "data"
	FlagDataFile     = "data-file"
	FlagOutput       = "output"
	FlagConfig       = "config"
	FlagQuote        = "quote"
	FlagAssignment   = "assignment"
	FlagSeparator    = "separator"
	FlagShortCircuit = "short-circuit"
	FlagRemoveHelper = "remove-helper"
	FlagEnvFile      = "env-file"
	FlagFormat       = "format"
	FlagNewline      = "newline"
)

// Flag names - short form
const (
	FlagDataShort     = "d"
	FlagDataFileShort = "f"
	FlagOutputShort   = "o"
	FlagConfigShort   = "c"
	FlagFormatShort   = "F"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Flag usage strings
const (
	FlagUsageData         = "attribute document as inline JSON or YAML"
	FlagUsageDataFile     = `attribute document file (use "-" for stdin)`
	FlagUsageOutput       = "output file (default: stdout)"
	FlagUsageConfig       = "formatter config file (.yaml, .yml or .toml)"
	FlagUsageQuote        = `quote wrapped around values (default "\"")`
	FlagUsageAssignment   = `text between name and value (default "=")`
	FlagUsageSeparator    = `text between attributes (default " ")`
	FlagUsageShortCircuit = "stop at the first helper or boolean attribute"
	FlagUsageRemoveHelper = "helper to remove before rendering (repeatable)"
	FlagUsageEnvFile      = "dotenv file providing " + EnvPrefix + "* defaults"
	FlagUsageFormat       = "output format: text, json"
	FlagUsageNewline      = "terminate output with a newline"
)

// Environment variables consulted for punctuation defaults
const (
	EnvPrefix     = "HTMLATTRS_"
	EnvQuote      = EnvPrefix + "QUOTE"
	EnvAssignment = EnvPrefix + "ASSIGNMENT"
	EnvSeparator  = EnvPrefix + "SEPARATOR"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeInputError = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgConflictingData   = "--data and --data-file cannot be combined"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgInvalidData       = "invalid attribute document"
	ErrMsgLoadConfigFailed  = "failed to load config"
	ErrMsgLoadEnvFailed     = "failed to load env file"
	ErrMsgFormatFailed      = "attribute formatting failed"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgInvalidFormat     = "invalid output format"
	ErrMsgUsage             = "usage error"
)

// CLI metadata
const (
	CLIName        = "htmlattrs"
	CLIDescription = "Render HTML attribute strings from JSON or YAML"
	CLILong        = `htmlattrs turns a JSON or YAML object into an HTML attribute string.

camelCase names become kebab-case, boolean attributes render bare,
null values are omitted and string values are HTML-escaped. A nested
"data" object expands into data-* attributes.`

	RenderUse     = "render"
	RenderShort   = "Render an attribute document"
	RenderExample = `  htmlattrs render -d '{"id": "main", "dataRole": "nav"}'
  htmlattrs render -f attrs.yaml --quote "'"
  cat attrs.json | htmlattrs render -f - --separator ","
  htmlattrs render -f attrs.json -c htmlattrs.toml -o attrs.txt`

	VersionUse   = "version"
	VersionShort = "Show version information"
)

// Version output format templates
const (
	VersionTextTemplate = CLIName + " version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
	VersionsFileName    = "versions.yaml"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorPrefix = "error: "
	FmtNewline     = "\n"
)
