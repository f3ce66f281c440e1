// Package module implements module resolvers for the access layer.
package module

import (
	"path"
	"sort"
	"sync"

	"github.com/nymag/nymag-fs/internal/core/domain"
	"github.com/nymag/nymag-fs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ModuleResolver = (*Registry)(nil)

// Default is the process-wide registry used by the registry resolver.
var Default = NewRegistry()

// Register adds a module to the Default registry.
// It is meant to be called from init functions of packages providing modules.
func Register(name string, value any) error {
	return Default.Register(name, value)
}

// Registry resolves modules registered in-process by name.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]any
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]any)}
}

// Register adds value under name. Names are cleaned like slash paths.
func (r *Registry) Register(name string, value any) error {
	key := path.Clean(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[key]; exists {
		return zerr.With(zerr.Wrap(domain.ErrModuleAlreadyRegistered, "register module"), "module", key)
	}
	r.modules[key] = value
	return nil
}

// Names returns the registered module names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the registered name for p.
func (r *Registry) Resolve(p string) (string, error) {
	key := path.Clean(p)

	r.mu.RLock()
	_, ok := r.modules[key]
	r.mu.RUnlock()

	if !ok {
		return "", zerr.With(zerr.Wrap(domain.ErrModuleNotFound, "resolve module"), "module", p)
	}
	return key, nil
}

// Load returns the module registered at location.
func (r *Registry) Load(location string) (*domain.Module, error) {
	r.mu.RLock()
	value, ok := r.modules[location]
	r.mu.RUnlock()

	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrModuleNotFound, "load module"), "module", location)
	}
	return &domain.Module{
		Name:     path.Base(location),
		Location: location,
		Value:    value,
	}, nil
}
