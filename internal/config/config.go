package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/Behyna/sms-relay/pkg/smsprovider"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	API      API                `mapstructure:"api"`
	Provider smsprovider.Config `mapstructure:"provider"`
	Metrics  Metrics            `mapstructure:"metrics"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Metrics struct {
	Enable          bool          `mapstructure:"enable"`
	CollectInterval time.Duration `mapstructure:"collect_interval"`
}

var envBindings = map[string]string{
	"provider.account_sid": "TWILIO_ACCOUNT_SID",
	"provider.auth_token":  "TWILIO_AUTH_TOKEN",
	"provider.from":        "TWILIO_PHONE_NUMBER",
	"provider.base_url":    "TWILIO_API_URL",
	"provider.timeout":     "TWILIO_TIMEOUT",
	"api.port":             "PORT",

	"metrics.enable":           "METRICS_ENABLE",
	"metrics.collect_interval": "METRICS_COLLECT_INTERVAL",
}

// Load reads .env, then config/config.yml when present, then the environment.
// The result is built once at startup and never mutated.
func Load() (cfg *Config, err error) {
	// a missing .env is fine, variables may come from the process environment
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath("./config")

	v.SetDefault("api.port", ":5000")
	v.SetDefault("provider.timeout", 10*time.Second)
	v.SetDefault("metrics.enable", true)
	v.SetDefault("metrics.collect_interval", 15*time.Second)

	for key, env := range envBindings {
		if err = v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err = v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.API.Port = normalizePort(cfg.API.Port)

	if err = cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Provider.AccountSID == "" {
		return errors.New("provider account sid is required (TWILIO_ACCOUNT_SID)")
	}
	if c.Provider.AuthToken == "" {
		return errors.New("provider auth token is required (TWILIO_AUTH_TOKEN)")
	}
	if c.Metrics.Enable && c.Metrics.CollectInterval <= 0 {
		return fmt.Errorf("metrics collect interval must be positive, got %s", c.Metrics.CollectInterval)
	}
	return nil
}

func normalizePort(port string) string {
	if port == "" || port[0] == ':' {
		return port
	}
	for _, r := range port {
		if r < '0' || r > '9' {
			return port
		}
	}
	return ":" + port
}
