package config

// Config is the top-level echobot configuration, corresponding to
// .echobot.yml. The echo prefix and apology text are deliberately
// configuration rather than constants.
type Config struct {
	// AppID is the bot's application id; inbound credentials must be
	// addressed to it.
	AppID string `yaml:"app_id" koanf:"app_id"`
	// AppSecret signs the channel credentials. Empty disables
	// credential validation (local development only).
	AppSecret string `yaml:"app_secret" koanf:"app_secret"`

	Port int `yaml:"port" koanf:"port"`

	EchoPrefix  string `yaml:"echo_prefix" koanf:"echo_prefix"`
	ApologyText string `yaml:"apology_text" koanf:"apology_text"`

	TokenClockSkewSeconds int `yaml:"token_clock_skew_seconds" koanf:"token_clock_skew_seconds"`
	SendTimeoutSeconds    int `yaml:"send_timeout_seconds" koanf:"send_timeout_seconds"`

	// AllowAllOrigins relaxes CORS for local dashboards and emulators.
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
