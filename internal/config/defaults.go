package config

// DefaultPort is the conventional bot connector listen port.
const DefaultPort = 3978

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:                  DefaultPort,
		EchoPrefix:            "Echo: ",
		ApologyText:           "Sorry, it looks like something went wrong.",
		TokenClockSkewSeconds: 300,
		SendTimeoutSeconds:    15,
	}
}
