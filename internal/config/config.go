package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the storefront client
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Storage StorageConfig `mapstructure:"storage"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Demo    DemoConfig    `mapstructure:"demo"`
}

// APIConfig holds remote catalog API configuration
type APIConfig struct {
	BaseURL              string `mapstructure:"base_url"`
	Timeout              int    `mapstructure:"timeout"`
	MaxRetries           int    `mapstructure:"max_retries"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`
}

// StorageConfig selects and configures the durable local storage backend
type StorageConfig struct {
	Backend   string `mapstructure:"backend"` // "file" or "redis"
	Dir       string `mapstructure:"dir"`
	Namespace string `mapstructure:"namespace"`
}

// RedisConfig holds Redis connection details for the redis storage backend
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
}

// DemoConfig holds the simulated login account. The credential check is
// local only; nothing is sent to a server.
type DemoConfig struct {
	UserID   string `mapstructure:"user_id"`
	Name     string `mapstructure:"name"`
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

// Load loads configuration from YAML file with environment variable overrides
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		// A missing config.yaml is fine; defaults cover every key.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("api.base_url", "https://fakestoreapi.com")
	viper.SetDefault("api.timeout", 30)
	viper.SetDefault("api.max_retries", 3)
	viper.SetDefault("api.max_requests_per_second", 5)

	viper.SetDefault("storage.backend", "file")
	viper.SetDefault("storage.dir", "./data")
	viper.SetDefault("storage.namespace", "storefront")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.database", 0)

	viper.SetDefault("demo.user_id", "1")
	viper.SetDefault("demo.name", "Demo User")
	viper.SetDefault("demo.email", "user@example.com")
	viper.SetDefault("demo.password", "password")
}
