package config

import (
	"fmt"
	"strings"
)

type BotConfig struct {
	Token                string  `mapstructure:"token"`
	MaxMessagesPerSecond float32 `mapstructure:"max_messages_per_second"`
}

func (config BotConfig) validate() error {

	var missingFields []string

	if config.Token == "" {
		missingFields = append(missingFields, "token")
	}

	if config.MaxMessagesPerSecond <= 0 {
		missingFields = append(missingFields, "max_messages_per_second")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing or invalid variables: %s", strings.Join(missingFields, ", "))
	}

	return nil
}

func (config BotConfig) bindEnvironmentVariables() error {
	return bindAll(map[string]string{
		"bot.token":                   "TOKEN",
		"bot.max_messages_per_second": "MAX_MESSAGES_PER_SECOND",
	})
}
