package config

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Quiet:      nil,
		NoColor:    nil,
		ResultsDir: "",
	}
}
