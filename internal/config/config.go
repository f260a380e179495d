package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	UI      UIConfig      `mapstructure:"ui"`
	Lookup  LookupConfig  `mapstructure:"lookup"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// StorageConfig locates the local vault database
type StorageConfig struct {
	Dir string `mapstructure:"dir"` // Directory holding vault.db; empty = default
}

// UIConfig holds view preferences
type UIConfig struct {
	PageSize    int    `mapstructure:"page_size"`    // 5, 10, 20, or 50
	GroupBy     string `mapstructure:"group_by"`     // "month", "quarter", or "year"
	DefaultView string `mapstructure:"default_view"` // "vault", "timeline", "discover", "stats"
}

// LookupConfig holds the external movie lookup credential
type LookupConfig struct {
	TMDBAPIKey string `mapstructure:"tmdb_api_key"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Dir: defaultDataPath(),
		},
		UI: UIConfig{
			PageSize:    10,
			GroupBy:     "month",
			DefaultView: "vault",
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// LoadConfig loads configuration from file and environment. Environment
// variables use the MEDIAVAULT_ prefix, e.g. MEDIAVAULT_LOOKUP_TMDB_API_KEY.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("MEDIAVAULT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	// The API key is a credential, so a bare env var works too
	if cfg.Lookup.TMDBAPIKey == "" {
		cfg.Lookup.TMDBAPIKey = os.Getenv("MEDIAVAULT_TMDB_API_KEY")
	}

	return cfg, nil
}

// SaveConfig writes the current configuration to the default config file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set("storage.dir", cfg.Storage.Dir)
	viper.Set("ui.page_size", cfg.UI.PageSize)
	viper.Set("ui.group_by", cfg.UI.GroupBy)
	viper.Set("ui.default_view", cfg.UI.DefaultView)
	viper.Set("lookup.tmdb_api_key", cfg.Lookup.TMDBAPIKey)
	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "mediavault")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "mediavault")
	}
}

func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "mediavault")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "mediavault")
	}
}

func defaultLogPath() string {
	return filepath.Join(defaultDataPath(), "mediavault.log")
}
