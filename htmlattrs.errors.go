package htmlattrs

import (
	"fmt"
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// Error message constants
const (
	// Format errors
	ErrMsgMaxDepthExceeded = "maximum helper expansion depth exceeded"

	// Option errors
	ErrMsgInvalidMaxDepth = "max depth cannot be negative"

	// Helper errors
	ErrMsgHelperValueNotMapping = "helper value is not a mapping"

	// Document errors
	ErrMsgDocumentParse      = "attribute document parsing failed"
	ErrMsgDocumentNotMapping = "attribute document is not a mapping"
	ErrMsgDocumentBadKey     = "attribute name must be a scalar"
	ErrMsgDocumentBadNode    = "unsupported attribute document node"
	ErrMsgDocumentAliasCycle = "attribute document alias refers to itself"
	ErrMsgDocumentTooLarge   = "attribute document expands to too many nodes"

	// Config errors
	ErrMsgConfigRead              = "failed to read config file"
	ErrMsgConfigParse             = "failed to parse config file"
	ErrMsgConfigUnsupportedFormat = "unsupported config file format"
)

// Error code constants for categorization
const (
	ErrCodeFormat   = "HTMLATTRS_FORMAT"
	ErrCodeOption   = "HTMLATTRS_OPTION"
	ErrCodeHelper   = "HTMLATTRS_HELPER"
	ErrCodeDocument = "HTMLATTRS_DOCUMENT"
	ErrCodeConfig   = "HTMLATTRS_CONFIG"
)

// Metadata key constants
const (
	MetaKeyDepth     = "depth"
	MetaKeyMaxDepth  = "max_depth"
	MetaKeyAttribute = "attribute"
	MetaKeyHelper    = "helper"
	MetaKeyValueType = "value_type"
	MetaKeyPath      = "path"
	MetaKeyExtension = "extension"
	MetaKeyLine      = "line"
	MetaKeyColumn    = "column"
	MetaKeyNodeKind  = "node_kind"
)

// NewMaxDepthError reports helper expansion nested deeper than maxDepth.
func NewMaxDepthError(attribute string, depth, maxDepth int) error {
	return cuserr.NewValidationError(ErrCodeFormat, ErrMsgMaxDepthExceeded).
		WithMetadata(MetaKeyAttribute, attribute).
		WithMetadata(MetaKeyDepth, strconv.Itoa(depth)).
		WithMetadata(MetaKeyMaxDepth, strconv.Itoa(maxDepth))
}

// NewInvalidMaxDepthError reports a negative max depth option.
func NewInvalidMaxDepthError(maxDepth int) error {
	return cuserr.NewValidationError(ErrCodeOption, ErrMsgInvalidMaxDepth).
		WithMetadata(MetaKeyMaxDepth, strconv.Itoa(maxDepth))
}

// NewHelperValueError reports a built-in helper receiving a value it cannot expand.
func NewHelperValueError(helper string, value any) error {
	return cuserr.NewValidationError(ErrCodeHelper, ErrMsgHelperValueNotMapping).
		WithMetadata(MetaKeyHelper, helper).
		WithMetadata(MetaKeyValueType, fmt.Sprintf("%T", value))
}

// NewDocumentError creates an attribute document error
func NewDocumentError(msg string, cause error) error {
	if cause != nil {
		return cuserr.WrapStdError(cause, ErrCodeDocument, msg)
	}
	return cuserr.NewValidationError(ErrCodeDocument, msg)
}

// NewDocumentNodeError creates a document error pointing at a YAML node position
func NewDocumentNodeError(msg string, line, column int, kind string) error {
	return cuserr.NewValidationError(ErrCodeDocument, msg).
		WithMetadata(MetaKeyLine, strconv.Itoa(line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(column)).
		WithMetadata(MetaKeyNodeKind, kind)
}

// NewConfigError creates a config loading error
func NewConfigError(msg string, path string, cause error) error {
	if cause != nil {
		return cuserr.WrapStdError(cause, ErrCodeConfig, msg).
			WithMetadata(MetaKeyPath, path)
	}
	return cuserr.NewValidationError(ErrCodeConfig, msg).
		WithMetadata(MetaKeyPath, path)
}

// NewUnsupportedConfigError reports a config file with an unknown extension
func NewUnsupportedConfigError(path, ext string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgConfigUnsupportedFormat).
		WithMetadata(MetaKeyPath, path).
		WithMetadata(MetaKeyExtension, ext)
}
