package logger

type Config struct {
	Level      string `yaml:"level" mapstructure:"level"`
	FileName   string `yaml:"file,omitempty" mapstructure:"file"`
	MaxSize    int    `yaml:"maxSize,omitempty" mapstructure:"maxSize"`
	MaxAge     int    `yaml:"maxAge,omitempty" mapstructure:"maxAge"`
	MaxBackups int    `yaml:"maxBackups,omitempty" mapstructure:"maxBackups"`
	Compress   bool   `yaml:"compress,omitempty" mapstructure:"compress"`
}

// DefaultConfig logs warnings and errors to stderr.
func DefaultConfig() *Config {
	return &Config{
		Level:      "WARN",
		MaxSize:    100,
		MaxAge:     30,
		MaxBackups: 5,
		Compress:   true,
	}
}
