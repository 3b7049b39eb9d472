package htmlattrs

import (
	"go.uber.org/zap"
)

// FormatOptions overrides the punctuation used by Format. A nil field keeps
// the default; a non-nil field wins, the empty string included. Values are
// used as given, so a quote that also appears inside values yields
// malformed markup rather than an error.
type FormatOptions struct {
	Quote      *string `yaml:"quote,omitempty" toml:"quote,omitempty" json:"quote,omitempty"`
	Assignment *string `yaml:"assignment,omitempty" toml:"assignment,omitempty" json:"assignment,omitempty"`
	Separator  *string `yaml:"separator,omitempty" toml:"separator,omitempty" json:"separator,omitempty"`
}

// WithQuote returns a copy of o with Quote set.
func (o FormatOptions) WithQuote(quote string) FormatOptions {
	o.Quote = &quote
	return o
}

// WithAssignment returns a copy of o with Assignment set.
func (o FormatOptions) WithAssignment(assignment string) FormatOptions {
	o.Assignment = &assignment
	return o
}

// WithSeparator returns a copy of o with Separator set.
func (o FormatOptions) WithSeparator(separator string) FormatOptions {
	o.Separator = &separator
	return o
}

// Merge returns o with every field set in override replacing its own.
func (o FormatOptions) Merge(override FormatOptions) FormatOptions {
	if override.Quote != nil {
		o.Quote = override.Quote
	}
	if override.Assignment != nil {
		o.Assignment = override.Assignment
	}
	if override.Separator != nil {
		o.Separator = override.Separator
	}
	return o
}

// punctuation is a fully resolved FormatOptions.
type punctuation struct {
	quote      string
	assignment string
	separator  string
}

func defaultPunctuation() punctuation {
	return punctuation{
		quote:      DefaultQuote,
		assignment: DefaultAssignment,
		separator:  DefaultSeparator,
	}
}

// apply resolves the set fields of o on top of p.
func (p punctuation) apply(o FormatOptions) punctuation {
	if o.Quote != nil {
		p.quote = *o.Quote
	}
	if o.Assignment != nil {
		p.assignment = *o.Assignment
	}
	if o.Separator != nil {
		p.separator = *o.Separator
	}
	return p
}

// Option is a functional option for configuring the Formatter.
type Option func(*formatterConfig)

// formatterConfig holds the internal configuration for a Formatter.
type formatterConfig struct {
	registry     *Registry
	defaults     FormatOptions
	shortCircuit bool
	maxDepth     int
	logger       *zap.Logger
}

// defaultFormatterConfig returns the default formatter configuration.
func defaultFormatterConfig() *formatterConfig {
	return &formatterConfig{
		registry:     nil,
		shortCircuit: false,
		maxDepth:     DefaultMaxDepth,
		logger:       nil,
	}
}

// WithRegistry makes the formatter consult registry instead of a fresh
// default registry. Formatters sharing a registry see each other's
// AddHelper and RemoveHelper calls.
func WithRegistry(registry *Registry) Option {
	return func(c *formatterConfig) {
		c.registry = registry
	}
}

// WithDefaults sets the punctuation applied before per-call FormatOptions.
// Default: quote `"`, assignment `=`, separator " "
func WithDefaults(opts FormatOptions) Option {
	return func(c *formatterConfig) {
		c.defaults = c.defaults.Merge(opts)
	}
}

// WithShortCircuit selects the compatibility processing mode: the first
// attribute handled by a helper, or rendered as a boolean attribute, ends
// formatting and its contribution becomes the whole output.
// Default: false (every attribute contributes independently)
func WithShortCircuit(enabled bool) Option {
	return func(c *formatterConfig) {
		c.shortCircuit = enabled
	}
}

// WithMaxDepth bounds recursive helper expansion.
// Use 0 for unlimited depth.
// Default: 100
func WithMaxDepth(depth int) Option {
	return func(c *formatterConfig) {
		c.maxDepth = depth
	}
}

// WithLogger sets the logger for the formatter and, when the formatter
// creates its own registry, for that registry too.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *formatterConfig) {
		c.logger = logger
	}
}
