package ports

import "github.com/nymag/nymag-fs/internal/core/domain"

// ConfigLoader defines the interface for loading the probe configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path. An empty path means the default location,
	// which may be absent.
	Load(path string) (*domain.Config, error)
}
