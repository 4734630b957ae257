package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/username/feestdagen/internal/export"
	"github.com/username/feestdagen/internal/feestdagen"
	"github.com/username/feestdagen/pkg/dateutil"
)

// EnvPrefix is prepended to environment overrides, e.g. FEESTDAGEN_LOG_LEVEL
const EnvPrefix = "FEESTDAGEN"

// Config represents application configuration
type Config struct {
	Year   int       `mapstructure:"year"` // 0 means the current year
	Format string    `mapstructure:"format"`
	Log    LogConfig `mapstructure:"log"`
	GUI    GUIConfig `mapstructure:"gui"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File     string         `mapstructure:"file"`
	Level    string         `mapstructure:"level"`
	Rotation RotationConfig `mapstructure:"rotation"`
}

// RotationConfig controls rotation of log.file
type RotationConfig struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAgeDays int  `mapstructure:"max_age_days"`
	Compress   bool `mapstructure:"compress"`
}

// GUIConfig represents desktop window configuration
type GUIConfig struct {
	Title  string  `mapstructure:"title"`
	Width  float32 `mapstructure:"width"`
	Height float32 `mapstructure:"height"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("year", 0)
	v.SetDefault("format", export.FormatTable)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.rotation.max_size_mb", 100)
	v.SetDefault("log.rotation.max_backups", 3)
	v.SetDefault("log.rotation.max_age_days", 28)
	v.SetDefault("log.rotation.compress", true)
	v.SetDefault("gui.title", "Nederlandse Christelijke Feestdagen")
	v.SetDefault("gui.width", 650)
	v.SetDefault("gui.height", 550)
}

// Load loads configuration from file. A missing file is not an error:
// defaults and environment variables are used instead.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to stat config: %w", err)
			}
			configPath = ""
		} else {
			v.SetConfigFile(configPath)
		}
	}
	if configPath == "" {
		v.SetConfigName("feestdagen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.feestdagen")
		v.AddConfigPath("/etc/feestdagen")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Year != 0 {
		if err := feestdagen.ValidateYear(c.Year); err != nil {
			return fmt.Errorf("year: %w", err)
		}
	}

	if _, err := export.New(c.Format); err != nil {
		return fmt.Errorf("format: %w", err)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got '%s'", c.Log.Level)
	}

	r := c.Log.Rotation
	if r.MaxSizeMB <= 0 {
		return fmt.Errorf("log.rotation.max_size_mb must be positive, got %d", r.MaxSizeMB)
	}
	if r.MaxBackups < 0 || r.MaxAgeDays < 0 {
		return fmt.Errorf("log.rotation.max_backups and log.rotation.max_age_days must not be negative")
	}

	if c.GUI.Width <= 0 || c.GUI.Height <= 0 {
		return fmt.Errorf("gui.width and gui.height must be positive")
	}

	return nil
}

// GetYear returns the configured year, or the current year when unset
func (c *Config) GetYear() int {
	if c.Year == 0 {
		return dateutil.Today().Year
	}
	return c.Year
}
