package ports

import "github.com/nymag/nymag-fs/internal/core/domain"

// ModuleResolver maps module paths to loadable modules.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ModuleResolver interface {
	// Resolve maps path to a concrete location.
	// It returns an error matching domain.ErrModuleNotFound when no such module exists.
	Resolve(path string) (string, error)
	// Load loads the module found at a location returned by Resolve.
	Load(location string) (*domain.Module, error)
}
