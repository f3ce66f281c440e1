package domain

// Resolver kinds accepted in the config file.
const (
	ResolverRegistry = "registry"
	ResolverPlugin   = "plugin"
)

// DefaultConfigFile is the config file looked up in the working directory.
const DefaultConfigFile = "fsprobe.yaml"

// Config holds the probe configuration.
type Config struct {
	// Resolver selects the module resolver: ResolverRegistry or ResolverPlugin.
	Resolver string
	// YAMLExtensions are tried in order when loading a YAML document by base path.
	YAMLExtensions []string
	// Log configures the logger.
	Log LogConfig
	// Source is the file the config was read from, empty for defaults.
	Source string
}

// LogConfig configures logging output.
type LogConfig struct {
	JSON  bool
	Level string
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	exts := make([]string, len(DefaultYAMLExtensions))
	copy(exts, DefaultYAMLExtensions)
	return &Config{
		Resolver:       ResolverRegistry,
		YAMLExtensions: exts,
		Log: LogConfig{
			Level: LogLevelInfo,
		},
	}
}

// Log levels accepted in the config file.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)
