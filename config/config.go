package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Resolution
	Inventory InventoryConfig
	Display   DisplayConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// InventoryConfig holds inventory store settings.
type InventoryConfig struct {
	DefaultStrategy string
	CacheSize       int
}

// DisplayConfig holds the time-of-day boundaries used for display mode defaults.
type DisplayConfig struct {
	Timezone       string
	DayStartHour   int
	NightStartHour int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

// fromViper applies defaults and env overrides to v and builds a validated Config.
func fromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Resolution
	cfg.Inventory.DefaultStrategy = v.GetString("inventory.default_strategy")
	cfg.Inventory.CacheSize = v.GetInt("inventory.cache_size")
	cfg.Display.Timezone = v.GetString("display.timezone")
	cfg.Display.DayStartHour = v.GetInt("display.day_start_hour")
	cfg.Display.NightStartHour = v.GetInt("display.night_start_hour")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 600)

	v.SetDefault("inventory.default_strategy", "most_stocked")
	v.SetDefault("inventory.cache_size", 1024)
	v.SetDefault("display.timezone", "UTC")
	v.SetDefault("display.day_start_hour", 6)
	v.SetDefault("display.night_start_hour", 18)
}

func (cfg *Config) validate() error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d out of range", cfg.HTTPServer.Port)
	}

	switch cfg.Inventory.DefaultStrategy {
	case "most_stocked", "most_recent":
	default:
		return fmt.Errorf("inventory.default_strategy: unknown strategy %q", cfg.Inventory.DefaultStrategy)
	}
	if cfg.Inventory.CacheSize <= 0 {
		return fmt.Errorf("inventory.cache_size must be positive")
	}

	d := cfg.Display
	if d.DayStartHour < 0 || d.DayStartHour > 23 || d.NightStartHour < 0 || d.NightStartHour > 23 {
		return fmt.Errorf("display hours must be within [0,23]")
	}
	if d.DayStartHour >= d.NightStartHour {
		return fmt.Errorf("display.day_start_hour (%d) must be before display.night_start_hour (%d)", d.DayStartHour, d.NightStartHour)
	}
	return nil
}
