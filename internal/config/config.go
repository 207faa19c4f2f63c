package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database  DatabaseConfig
	Assistant AssistantConfig
	UI        UIConfig
}

// DatabaseConfig holds sqlite settings for the catalog store.
type DatabaseConfig struct {
	Path string
}

// AssistantConfig holds NusaBot provider settings.
type AssistantConfig struct {
	Provider  string
	APIKeyEnv string
	APIKey    string
	Model     string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string
	Locale         string
}

// Load reads configuration from file and env. Env var overrides use
// prefix NUSAPP_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "nusapp", "nusapp.db"))
	v.SetDefault("assistant.provider", "offline")
	v.SetDefault("assistant.api_key_env", "OPENAI_API_KEY")
	v.SetDefault("assistant.api_key", "")
	v.SetDefault("assistant.model", "gpt-4o-mini")
	v.SetDefault("ui.currency_symbol", "Rp")
	v.SetDefault("ui.locale", "id-ID")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("NUSAPP_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "nusapp"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("NUSAPP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory
// if needed. The API key lands in plain text; prefer env vars.
func Save(cfg Config) error {
	path := os.Getenv("NUSAPP_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "nusapp", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("assistant.provider", cfg.Assistant.Provider)
	v.Set("assistant.api_key_env", cfg.Assistant.APIKeyEnv)
	v.Set("assistant.api_key", cfg.Assistant.APIKey)
	v.Set("assistant.model", cfg.Assistant.Model)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.locale", cfg.UI.Locale)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ResolveAPIKey returns the assistant key, preferring the configured env
// var over the config file value.
func ResolveAPIKey(cfg Config) string {
	env := strings.TrimSpace(cfg.Assistant.APIKeyEnv)
	if env == "" {
		env = "OPENAI_API_KEY"
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return strings.TrimSpace(cfg.Assistant.APIKey)
}
