package config

// ProbeFile is the structure of the fsprobe.yaml configuration file.
type ProbeFile struct {
	Resolver       string   `yaml:"resolver"`
	YAMLExtensions []string `yaml:"yaml_extensions"`
	Log            LogDTO   `yaml:"log"`
}

// LogDTO is the log section of the configuration file.
type LogDTO struct {
	JSON  *bool  `yaml:"json"`
	Level string `yaml:"level"`
}
