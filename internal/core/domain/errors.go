package domain

import "go.trai.ch/zerr"

var (
	// ErrReadFailed is returned when a file cannot be read.
	ErrReadFailed = zerr.New("failed to read file")

	// ErrYAMLParseFailed is returned when a YAML document cannot be parsed.
	ErrYAMLParseFailed = zerr.New("failed to parse yaml document")

	// ErrModuleNotFound is returned by a module resolver when the requested module does not exist.
	// The access layer turns it into an absent result instead of an error.
	ErrModuleNotFound = zerr.New("module not found")

	// ErrModuleResolveFailed is returned when module resolution fails for a reason other than absence.
	ErrModuleResolveFailed = zerr.New("failed to resolve module")

	// ErrModuleLoadFailed is returned when a resolved module cannot be loaded.
	ErrModuleLoadFailed = zerr.New("failed to load module")

	// ErrModuleAlreadyRegistered is returned when a module name is registered twice.
	ErrModuleAlreadyRegistered = zerr.New("module already registered")

	// ErrModuleSymbolMissing is returned when a plugin does not export the module symbol.
	ErrModuleSymbolMissing = zerr.New("plugin does not export module symbol")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidResolverKind is returned when the config names an unknown module resolver.
	ErrInvalidResolverKind = zerr.New("invalid resolver kind, expected 'registry' or 'plugin'")

	// ErrInvalidLogLevel is returned when the config names an unknown log level.
	ErrInvalidLogLevel = zerr.New("invalid log level, expected 'debug', 'info', 'warn' or 'error'")

	// ErrNoPathsSpecified is returned when a command needs at least one path.
	ErrNoPathsSpecified = zerr.New("no paths specified")

	// ErrUnknownOperation is returned when a cache handle is requested for an unknown operation.
	ErrUnknownOperation = zerr.New("unknown operation")

	// ErrInvalidPattern is returned when a listing filter is not a valid glob.
	ErrInvalidPattern = zerr.New("invalid glob pattern")
)
