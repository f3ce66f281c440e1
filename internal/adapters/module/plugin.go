package module

import (
	"errors"
	"io/fs"
	"path/filepath"
	"plugin"
	"strings"

	"github.com/nymag/nymag-fs/internal/core/domain"
	"github.com/nymag/nymag-fs/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// PluginExtension is appended to a module path when the bare path is not a file.
	PluginExtension = ".so"
	// PluginSymbol is the exported symbol a plugin must provide.
	PluginSymbol = "Module"
)

var _ ports.ModuleResolver = (*PluginResolver)(nil)

// OpenFunc opens a Go plugin. It matches plugin.Open.
type OpenFunc func(path string) (Lookuper, error)

// Lookuper is the subset of *plugin.Plugin used to read the module symbol.
type Lookuper interface {
	Lookup(symName string) (plugin.Symbol, error)
}

// PluginResolver resolves modules to Go plugin shared objects on disk.
type PluginResolver struct {
	fs   ports.FileSystem
	open OpenFunc
}

// NewPluginResolver creates a PluginResolver that stats candidates through fsys.
func NewPluginResolver(fsys ports.FileSystem) *PluginResolver {
	return &PluginResolver{
		fs: fsys,
		open: func(p string) (Lookuper, error) {
			return plugin.Open(p)
		},
	}
}

// WithOpener replaces the function used to open plugins.
func (r *PluginResolver) WithOpener(open OpenFunc) *PluginResolver {
	r.open = open
	return r
}

// Resolve returns the first of p and p+".so" that is a regular file.
func (r *PluginResolver) Resolve(p string) (string, error) {
	candidates := []string{p}
	if !strings.HasSuffix(p, PluginExtension) {
		candidates = append(candidates, p+PluginExtension)
	}

	for _, candidate := range candidates {
		info, err := r.fs.Stat(candidate)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", zerr.With(zerr.Wrap(err, "stat plugin"), "path", candidate)
		}
		if info.Mode().IsRegular() {
			return filepath.Clean(candidate), nil
		}
	}

	return "", zerr.With(zerr.Wrap(domain.ErrModuleNotFound, "resolve plugin"), "module", p)
}

// Load opens the plugin at location and reads its Module symbol.
// An exported variable of type any is dereferenced.
func (r *PluginResolver) Load(location string) (*domain.Module, error) {
	p, err := r.open(location)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrModuleLoadFailed.Error()), "path", location)
	}

	sym, err := p.Lookup(PluginSymbol)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrModuleSymbolMissing, "lookup "+PluginSymbol), "path", location)
	}

	var value any = sym
	if ptr, ok := sym.(*any); ok {
		value = *ptr
	}

	name := strings.TrimSuffix(filepath.Base(location), PluginExtension)
	return &domain.Module{
		Name:     name,
		Location: location,
		Value:    value,
	}, nil
}
