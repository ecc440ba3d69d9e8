package model

// Config is the layout of the configuration file.
type Config struct {
	Capacity int           `yaml:"capacity"`
	Debug    bool          `yaml:"debug"`
	Targets  []TargetEntry `yaml:"targets"`
}

func NewConfig() *Config {
	return &Config{
		Capacity: 64,
		Debug:    false,
		Targets:  []TargetEntry{},
	}
}
