// Package config loads application settings with viper: built-in
// defaults, then an optional cozinha.yaml, then environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. COZINHA_APP_LOG_LEVEL.
const EnvPrefix = "COZINHA"

// Config holds all application configuration.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	AI      AIConfig      `mapstructure:"ai"`
	Cooking CookingConfig `mapstructure:"cooking"`
	Sound   SoundConfig   `mapstructure:"sound"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"` // off, normal, verbose
	LogFile  string `mapstructure:"log_file"`
}

// AIConfig configures the chat-completions endpoint.
type AIConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Endpoint  string        `mapstructure:"endpoint"`
	APIKey    string        `mapstructure:"api_key"`
	Model     string        `mapstructure:"model"`
	MaxTokens int           `mapstructure:"max_tokens"`
	Timeout   time.Duration `mapstructure:"timeout"`

	// SuggestionMaxTokens caps the JSON suggestions reply.
	SuggestionMaxTokens int `mapstructure:"suggestion_max_tokens"`
}

// Ready reports whether AI is enabled and has credentials.
func (c AIConfig) Ready() bool {
	return c.Enabled && c.Endpoint != "" && c.APIKey != ""
}

// CookingConfig tunes cooking mode.
type CookingConfig struct {
	TickInterval time.Duration `mapstructure:"tick_interval"`
}

// SoundConfig controls the time's-up chime.
type SoundConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	Volume     float64 `mapstructure:"volume"`
	SoftNotify bool    `mapstructure:"soft_notify"`
}

// Load reads configuration. An empty configPath searches for cozinha.yaml
// in the working directory and $HOME/.config/cozinha; a missing file is
// not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("cozinha")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/cozinha")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The endpoint and key also answer to the names used in .env files.
	if err := v.BindEnv("ai.endpoint", EnvPrefix+"_AI_ENDPOINT", "GPT_CHAT_ENDPOINT"); err != nil {
		return nil, fmt.Errorf("bind ai.endpoint: %w", err)
	}
	if err := v.BindEnv("ai.api_key", EnvPrefix+"_AI_API_KEY", "GPT_CHAT_KEY"); err != nil {
		return nil, fmt.Errorf("bind ai.api_key: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.log_level", "normal")
	v.SetDefault("app.log_file", "cozinha.log")

	v.SetDefault("ai.enabled", true)
	v.SetDefault("ai.endpoint", "")
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.model", "")
	v.SetDefault("ai.max_tokens", 800)
	v.SetDefault("ai.suggestion_max_tokens", 400)
	v.SetDefault("ai.timeout", "30s")

	v.SetDefault("cooking.tick_interval", "1s")

	v.SetDefault("sound.enabled", true)
	v.SetDefault("sound.volume", 0.6)
	v.SetDefault("sound.soft_notify", false)
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch c.App.LogLevel {
	case "off", "quiet", "normal", "verbose", "debug":
	default:
		return fmt.Errorf("app.log_level must be off, normal or verbose, got %q", c.App.LogLevel)
	}
	if c.AI.MaxTokens < 1 {
		return fmt.Errorf("ai.max_tokens must be positive")
	}
	if c.AI.SuggestionMaxTokens < 1 {
		return fmt.Errorf("ai.suggestion_max_tokens must be positive")
	}
	if c.AI.Timeout <= 0 {
		return fmt.Errorf("ai.timeout must be positive")
	}
	if c.Cooking.TickInterval <= 0 {
		return fmt.Errorf("cooking.tick_interval must be positive")
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("sound.volume must be between 0 and 1")
	}
	return nil
}
