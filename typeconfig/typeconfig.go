package typeconfig

import (
	"log/slog"
	"maps"
	"sync"
)

// TypeConfig holds a set of [Type] plugins and option [Definition] values and
// implements every document operation on top of them.
//
// Create instances with [New]. Methods are safe for concurrent use; the only
// mutating document operation, [TypeConfig.HealConfig], holds an exclusive
// lock for its whole run.
type TypeConfig struct {
	logger  *slog.Logger
	types   map[string]Type
	options map[string]*Definition
	order   []string
	mu      sync.RWMutex
}

// Option configures a [TypeConfig].
type Option func(*TypeConfig)

// New creates an empty [TypeConfig] with the given options.
func New(opts ...Option) *TypeConfig {
	tc := &TypeConfig{
		logger:  slog.Default(),
		types:   make(map[string]Type),
		options: make(map[string]*Definition),
	}

	for _, opt := range opts {
		opt(tc)
	}

	return tc
}

// WithLogger sets the logger used to report best-effort decisions, such as
// lines discarded while healing. Defaults to [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(tc *TypeConfig) {
		if logger != nil {
			tc.logger = logger
		}
	}
}

// AddType registers t under name, replacing any previous registration.
func (tc *TypeConfig) AddType(name string, t Type) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	tc.types[name] = t
}

// AddOption registers an option of the given type. The type does not need to
// be registered yet. Re-adding an existing option replaces its definition but
// keeps its original position in generated documents.
func (tc *TypeConfig) AddOption(typeName, option, help string, opts ...DefinitionOption) {
	def := Definition{
		Name: option,
		Type: typeName,
		Help: help,
	}

	for _, opt := range opts {
		opt(&def)
	}

	tc.AddDefinition(def)
}

// AddDefinition registers def as-is. See [TypeConfig.AddOption].
func (tc *TypeConfig) AddDefinition(def Definition) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	if _, ok := tc.options[def.Name]; !ok {
		tc.order = append(tc.order, def.Name)
	}

	tc.options[def.Name] = &def
}

// Options returns a copy of every definition in registration order.
func (tc *TypeConfig) Options() []Definition {
	tc.mu.RLock()
	defer tc.mu.RUnlock()

	return tc.snapshot()
}

// Option returns a copy of the named definition.
func (tc *TypeConfig) Option(name string) (Definition, bool) {
	tc.mu.RLock()
	defer tc.mu.RUnlock()

	def, ok := tc.options[name]
	if !ok {
		return Definition{}, false
	}

	return *def, true
}

// Types returns a copy of the registered types.
func (tc *TypeConfig) Types() map[string]Type {
	tc.mu.RLock()
	defer tc.mu.RUnlock()

	return maps.Clone(tc.types)
}

// snapshot copies the definitions in order. Callers hold tc.mu.
func (tc *TypeConfig) snapshot() []Definition {
	defs := make([]Definition, 0, len(tc.order))
	for _, name := range tc.order {
		defs = append(defs, *tc.options[name])
	}

	return defs
}
