package config

import "time"

// Config holds all application configuration.
// It is loaded once at process start and passed by value to the components
// that need it; nothing reads the environment after Load returns.
type Config struct {
	Log LogConfig `mapstructure:"log" validate:"required"`
	LLM LLMConfig `mapstructure:"llm" validate:"required"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"  validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// LLMConfig contains all settings for the text-generation backend.
type LLMConfig struct {
	// APIKey selects live mode when non-empty. It may come from any of the
	// names in CredentialEnvVars.
	APIKey string `mapstructure:"api_key"`

	// Provider picks the transport: "rest" speaks the generateContent REST
	// envelope directly, "genai" goes through the Google GenAI SDK.
	Provider string `mapstructure:"provider" validate:"required,oneof=rest genai"`

	// Endpoint is the base URL of the backend API.
	Endpoint string `mapstructure:"endpoint" validate:"required,url"`

	ModelName string `mapstructure:"model_name" validate:"required"`

	// Timeout bounds a single transport call on top of any caller deadline.
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`

	DefaultMaxTokens   int     `mapstructure:"default_max_tokens"  validate:"gt=0"`
	DefaultTemperature float64 `mapstructure:"default_temperature" validate:"gte=0,lte=2"`
}

// Live reports whether a backend credential is configured.
func (c LLMConfig) Live() bool {
	return c.APIKey != ""
}
