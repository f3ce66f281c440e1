package access

import "github.com/nymag/nymag-fs/internal/core/ports"

// Factory builds Access instances over a fixed filesystem, parser and logger.
// The module resolver and options are chosen per instance, usually from configuration.
type Factory struct {
	fs     ports.FileSystem
	parser ports.DocumentParser
	log    ports.Logger
}

// NewFactory creates a Factory.
func NewFactory(fsys ports.FileSystem, parser ports.DocumentParser, log ports.Logger) *Factory {
	return &Factory{fs: fsys, parser: parser, log: log}
}

// New creates an Access using resolver for module lookups.
func (f *Factory) New(resolver ports.ModuleResolver, opts ...Option) *Access {
	return New(f.fs, f.parser, resolver, f.log, opts...)
}
