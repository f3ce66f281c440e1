// Package config provides the configuration loader for fsprobe.
package config

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"strings"

	"github.com/nymag/nymag-fs/internal/core/domain"
	"github.com/nymag/nymag-fs/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader over a FileSystem.
type Loader struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(fsys ports.FileSystem, logger ports.Logger) *Loader {
	return &Loader{fs: fsys, logger: logger}
}

// Load reads the configuration at path.
// With an empty path the default file is used, and a missing default file yields the
// default configuration.
func (l *Loader) Load(path string) (*domain.Config, error) {
	explicit := path != ""
	if !explicit {
		path = domain.DefaultConfigFile
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			if explicit {
				return nil, zerr.With(domain.ErrConfigNotFound, "path", path)
			}
			l.logger.Debug("no config file, using defaults", "path", path)
			return domain.DefaultConfig(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file ProbeFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	cfg, err := toDomain(&file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	cfg.Source = path

	l.logger.Debug("config loaded", "path", path, "resolver", cfg.Resolver)
	return cfg, nil
}

func toDomain(file *ProbeFile) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	switch file.Resolver {
	case "":
	case domain.ResolverRegistry, domain.ResolverPlugin:
		cfg.Resolver = file.Resolver
	default:
		return nil, zerr.With(domain.ErrInvalidResolverKind, "resolver", file.Resolver)
	}

	if len(file.YAMLExtensions) > 0 {
		cfg.YAMLExtensions = make([]string, 0, len(file.YAMLExtensions))
		for _, ext := range file.YAMLExtensions {
			ext = strings.TrimSpace(ext)
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			cfg.YAMLExtensions = append(cfg.YAMLExtensions, ext)
		}
	}

	if file.Log.JSON != nil {
		cfg.Log.JSON = *file.Log.JSON
	}

	switch level := strings.ToLower(file.Log.Level); level {
	case "":
	case domain.LogLevelDebug, domain.LogLevelInfo, domain.LogLevelWarn, domain.LogLevelError:
		cfg.Log.Level = level
	default:
		return nil, zerr.With(domain.ErrInvalidLogLevel, "level", file.Log.Level)
	}

	return cfg, nil
}
