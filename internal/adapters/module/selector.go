package module

import (
	"github.com/nymag/nymag-fs/internal/core/domain"
	"github.com/nymag/nymag-fs/internal/core/ports"
	"go.trai.ch/zerr"
)

// Selector picks the module resolver named by configuration.
type Selector struct {
	registry *Registry
	plugins  *PluginResolver
}

// NewSelector creates a Selector over the given resolvers.
func NewSelector(registry *Registry, plugins *PluginResolver) *Selector {
	return &Selector{registry: registry, plugins: plugins}
}

// Select returns the resolver for kind. An empty kind selects the registry.
func (s *Selector) Select(kind string) (ports.ModuleResolver, error) {
	switch kind {
	case domain.ResolverRegistry, "":
		return s.registry, nil
	case domain.ResolverPlugin:
		return s.plugins, nil
	default:
		return nil, zerr.With(domain.ErrInvalidResolverKind, "resolver", kind)
	}
}
