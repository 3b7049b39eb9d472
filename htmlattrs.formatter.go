package htmlattrs

import (
	"strings"
	"time"

	"github.com/itsatony/go-htmlattrs/internal"
	"go.uber.org/zap"
)

// Formatter turns Attributes into an HTML attribute string. It owns a
// helper registry and the default punctuation. A Formatter is safe for
// concurrent use.
type Formatter struct {
	registry *Registry
	config   *formatterConfig
	base     punctuation
	logger   *zap.Logger
}

// New creates a Formatter with the given options. Without WithRegistry it
// gets its own registry holding the built-in data helper.
func New(opts ...Option) (*Formatter, error) {
	config := defaultFormatterConfig()
	for _, opt := range opts {
		opt(config)
	}

	if config.maxDepth < 0 {
		return nil, NewInvalidMaxDepthError(config.maxDepth)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	registry := config.registry
	if registry == nil {
		registry = NewDefaultRegistry(logger)
	}

	logger.Debug(LogMsgFormatterCreated,
		zap.String(LogFieldMode, modeName(config.shortCircuit)),
		zap.Int(LogFieldMaxDepth, config.maxDepth),
	)

	return &Formatter{
		registry: registry,
		config:   config,
		base:     defaultPunctuation().apply(config.defaults),
		logger:   logger,
	}, nil
}

// MustNew creates a new Formatter and panics if there's an error.
func MustNew(opts ...Option) *Formatter {
	f, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Registry returns the registry consulted by this formatter.
func (f *Formatter) Registry() *Registry {
	return f.registry
}

// AddHelper registers fn for attributes named name, replacing any existing
// helper. Returns the formatter for chaining.
func (f *Formatter) AddHelper(name string, fn HelperFunc) *Formatter {
	f.registry.Add(name, fn)
	return f
}

// RemoveHelper drops the helper for name if there is one. Returns the
// formatter for chaining.
func (f *Formatter) RemoveHelper(name string) *Formatter {
	f.registry.Remove(name)
	return f
}

// Format renders attrs. Options are merged left to right over the
// formatter defaults. Nil or empty attrs yield "".
//
// For each attribute, in order: a nil value is skipped; a registered
// helper replaces default handling; otherwise the name is kebab-cased,
// boolean attributes become a bare name, and everything else is written
// as name, assignment, quote, value, quote. Only string values are escaped.
func (f *Formatter) Format(attrs Attributes, opts ...FormatOptions) (string, error) {
	p := f.base
	for _, o := range opts {
		p = p.apply(o)
	}

	start := time.Now()
	f.logger.Debug(LogMsgFormatStart, zap.Int(LogFieldAttrCount, len(attrs)))

	out, err := f.format(attrs, p, 0)
	if err != nil {
		return "", err
	}

	f.logger.Debug(LogMsgFormatEnd,
		zap.Int(LogFieldOutputLen, len(out)),
		zap.Duration(LogFieldDuration, time.Since(start)),
	)
	return out, nil
}

// FormatMap renders a Go map. Names are emitted in sorted order.
func (f *Formatter) FormatMap(m map[string]any, opts ...FormatOptions) (string, error) {
	return f.Format(FromMap(m), opts...)
}

// MustFormat is like Format but panics on error.
func (f *Formatter) MustFormat(attrs Attributes, opts ...FormatOptions) string {
	out, err := f.Format(attrs, opts...)
	if err != nil {
		panic(err)
	}
	return out
}

func (f *Formatter) format(attrs Attributes, p punctuation, depth int) (string, error) {
	parts := make([]string, 0, len(attrs))

	for _, attr := range attrs {
		if attr.Value == nil {
			continue
		}

		if helper, ok := f.registry.Get(attr.Name); ok {
			contribution, err := f.expand(helper, attr, p, depth)
			if err != nil {
				return "", err
			}
			if f.config.shortCircuit {
				f.logShortCircuit(attr.Name, depth)
				return contribution, nil
			}
			if contribution != "" {
				parts = append(parts, contribution)
			}
			continue
		}

		name := internal.KebabCase(attr.Name)

		if IsBooleanAttr(name) {
			if f.config.shortCircuit {
				f.logShortCircuit(name, depth)
				return name, nil
			}
			parts = append(parts, name)
			continue
		}

		parts = append(parts, renderPair(name, attr.Value, p))
	}

	return strings.Join(parts, p.separator), nil
}

// expand runs helper and renders its result with the same punctuation.
func (f *Formatter) expand(helper HelperFunc, attr Attr, p punctuation, depth int) (string, error) {
	result, err := helper(attr.Value)
	if err != nil {
		f.logger.Debug(LogMsgHelperFailed,
			zap.String(LogFieldHelper, attr.Name),
			zap.Error(err),
		)
		return "", err
	}

	f.logger.Debug(LogMsgHelperInvoked,
		zap.String(LogFieldHelper, attr.Name),
		zap.String(LogFieldResultKind, resultKind(result)),
		zap.Int(LogFieldDepth, depth),
	)

	switch r := result.(type) {
	case Mapping:
		next := depth + 1
		if f.config.maxDepth > 0 && next > f.config.maxDepth {
			return "", NewMaxDepthError(attr.Name, next, f.config.maxDepth)
		}
		return f.format(Attributes(r), p, next)
	case Literal:
		return string(r), nil
	default:
		return "", nil
	}
}

func (f *Formatter) logShortCircuit(attribute string, depth int) {
	f.logger.Debug(LogMsgShortCircuit,
		zap.String(LogFieldAttribute, attribute),
		zap.Int(LogFieldDepth, depth),
	)
}

func renderPair(name string, value any, p punctuation) string {
	var s string
	if str, ok := value.(string); ok {
		s = internal.EscapeAttr(str)
	} else {
		s = internal.Stringify(value)
	}

	var b strings.Builder
	b.Grow(len(name) + len(p.assignment) + 2*len(p.quote) + len(s))
	b.WriteString(name)
	b.WriteString(p.assignment)
	b.WriteString(p.quote)
	b.WriteString(s)
	b.WriteString(p.quote)
	return b.String()
}

func modeName(shortCircuit bool) string {
	if shortCircuit {
		return ModeNameShortCircuit
	}
	return ModeNameIndependent
}
