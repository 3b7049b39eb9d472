package htmlattrs

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Registry maps attribute names to helpers. Adding a name that already
// exists replaces the previous helper (last writer wins). It is safe for
// concurrent use; helpers themselves run outside the lock.
type Registry struct {
	helpers map[string]HelperFunc
	mu      sync.RWMutex
	logger  *zap.Logger
}

// NewRegistry creates an empty helper registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgRegistryCreated)
	return &Registry{
		helpers: make(map[string]HelperFunc),
		logger:  logger,
	}
}

// NewDefaultRegistry creates a registry holding the built-in helpers.
func NewDefaultRegistry(logger *zap.Logger) *Registry {
	return NewRegistry(logger).Add(HelperNameData, DataHelper)
}

// Add registers fn under name, overwriting any existing helper.
// A nil fn is stored but never matches, so the attribute falls back to
// default conversion. Returns the registry for chaining.
func (r *Registry) Add(name string, fn HelperFunc) *Registry {
	r.mu.Lock()
	_, replaced := r.helpers[name]
	r.helpers[name] = fn
	r.mu.Unlock()

	r.logger.Debug(LogMsgHelperAdded,
		zap.String(LogFieldHelper, name),
		zap.Bool(LogFieldReplaced, replaced),
	)
	return r
}

// Remove deletes the helper registered under name. Removing an unknown
// name is a no-op. Returns the registry for chaining.
func (r *Registry) Remove(name string) *Registry {
	r.mu.Lock()
	_, exists := r.helpers[name]
	delete(r.helpers, name)
	r.mu.Unlock()

	if exists {
		r.logger.Debug(LogMsgHelperRemoved, zap.String(LogFieldHelper, name))
	} else {
		r.logger.Debug(LogMsgHelperNotFound, zap.String(LogFieldHelper, name))
	}
	return r
}

// Get returns the helper for name. Names holding a nil helper report false.
func (r *Registry) Get(name string) (HelperFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn := r.helpers[name]
	return fn, fn != nil
}

// Has reports whether a callable helper is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// List returns registered helper names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.helpers))
	for name := range r.helpers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered names.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.helpers)
}

// Clone returns an independent registry with the same helpers and logger.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	helpers := make(map[string]HelperFunc, len(r.helpers))
	for name, fn := range r.helpers {
		helpers[name] = fn
	}
	return &Registry{
		helpers: helpers,
		logger:  r.logger,
	}
}
