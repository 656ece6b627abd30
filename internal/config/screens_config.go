package config

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
	"time"
)

type SessionConfig struct {
	IdleTimeout   time.Duration `mapstructure:"idle_timeout"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

func (config SessionConfig) validate() error {
	var errs []error

	if config.IdleTimeout <= 0 {
		errs = append(errs, fmt.Errorf("idle_timeout must be positive"))
	}
	if config.SweepInterval < time.Second {
		errs = append(errs, fmt.Errorf("sweep_interval must be at least 1s"))
	}

	return errors.Join(errs...)
}

func (config SessionConfig) bindEnvironmentVariables() error {
	return bindAll(map[string]string{
		"session.idle_timeout":   "SESSION_IDLE_TIMEOUT",
		"session.sweep_interval": "SESSION_SWEEP_INTERVAL",
	})
}

type ChatConfig struct {
	ReplyDelay time.Duration `mapstructure:"reply_delay"`
	Reply      string        `mapstructure:"reply"`
}

func (config ChatConfig) validate() error {
	if config.ReplyDelay <= 0 {
		return fmt.Errorf("reply_delay must be positive")
	}
	return nil
}

func (config ChatConfig) bindEnvironmentVariables() error {
	return bindAll(map[string]string{
		"chat.reply_delay": "CHAT_REPLY_DELAY",
		"chat.reply":       "CHAT_REPLY",
	})
}

type JobsConfig struct {
	RefreshDelay time.Duration `mapstructure:"refresh_delay"`
	ApplyFilters bool          `mapstructure:"apply_filters"`
}

func (config JobsConfig) validate() error {
	if config.RefreshDelay <= 0 {
		return fmt.Errorf("refresh_delay must be positive")
	}
	return nil
}

func (config JobsConfig) bindEnvironmentVariables() error {
	return bindAll(map[string]string{
		"jobs.refresh_delay": "JOBS_REFRESH_DELAY",
		"jobs.apply_filters": "JOBS_APPLY_FILTERS",
	})
}

type MetricsConfig struct {
	Port int `mapstructure:"port"`
}

func (config MetricsConfig) validate() error {
	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("invalid metrics port: %d", config.Port)
	}
	return nil
}

func (config MetricsConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("metrics.port", "METRICS_PORT")
}

func setDefaults() {
	viper.SetDefault("bot.max_messages_per_second", 25)
	viper.SetDefault("session.idle_timeout", 30*time.Minute)
	viper.SetDefault("session.sweep_interval", time.Minute)
	viper.SetDefault("chat.reply_delay", time.Second)
	viper.SetDefault("jobs.refresh_delay", time.Second)
	viper.SetDefault("jobs.apply_filters", false)
	viper.SetDefault("metrics.port", 8080)
}
