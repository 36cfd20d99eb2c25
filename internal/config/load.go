package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable viper binds.
const EnvPrefix = "RESUMEGEN"

// CredentialEnvVars lists the environment variables recognised as the
// backend credential, in priority order. The first non-empty one wins.
var CredentialEnvVars = []string{
	EnvPrefix + "_LLM_API_KEY",
	"GEMINI_API_KEY",
	"GOOGLE_API_KEY",
	"GOOGLE_GENERATIVE_AI_API_KEY",
}

// Defaults applied when neither the config file nor the environment set a value.
const (
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "json"
	DefaultProvider           = "rest"
	DefaultEndpoint           = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModelName          = "gemini-1.5-flash"
	DefaultTimeout            = "30s"
	DefaultMaxTokens          = 2000
	DefaultTemperature        = 0.7
	defaultConfigName         = "config"
	defaultConfigType         = "yaml"
	validationFailedErrorText = "config validation failed"
)

// dotenvFiles are loaded in order if present. godotenv never overrides a
// variable that is already set, so the real environment always wins.
var dotenvFiles = []string{".env", ".env.local"}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	for _, f := range dotenvFiles {
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", f, err)
			}
		}
	}

	v := viper.New()

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.provider", DefaultProvider)
	v.SetDefault("llm.endpoint", DefaultEndpoint)
	v.SetDefault("llm.model_name", DefaultModelName)
	v.SetDefault("llm.timeout", DefaultTimeout)
	v.SetDefault("llm.default_max_tokens", DefaultMaxTokens)
	v.SetDefault("llm.default_temperature", DefaultTemperature)

	v.SetConfigName(defaultConfigName)
	v.SetConfigType(defaultConfigType)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	fileKey := v.GetString("llm.api_key")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	apiKey, ok := credentialFromEnv()
	if !ok {
		apiKey = fileKey
	}
	v.Set("llm.api_key", apiKey)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.LLM.APIKey = strings.TrimSpace(cfg.LLM.APIKey)

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", validationFailedErrorText, err)
	}

	return &cfg, nil
}

// credentialFromEnv returns the first credential variable with a non-blank
// value. Viper's multi-name BindEnv stops at the first variable that is set,
// even when it only holds whitespace.
func credentialFromEnv() (string, bool) {
	for _, name := range CredentialEnvVars {
		if key := strings.TrimSpace(os.Getenv(name)); key != "" {
			return key, true
		}
	}
	return "", false
}
