package config

// OutputConfig controls how documents are laid out
type OutputConfig struct {
	Indent   string `yaml:"indent" validate:"omitempty,max=8,xmlspace"`
	MaxDepth int    `yaml:"maxDepth" validate:"gte=0,lte=100000"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}
