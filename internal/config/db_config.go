package config

import (
	"fmt"
	"github.com/spf13/viper"
)

const privateMemoryDatabase = ":memory:"

// DBConfig points at the sqlite database holding the read-only seed catalog.
type DBConfig struct {
	ConnectionString string `mapstructure:"connection_string"`
}

func (config DBConfig) validate() error {
	switch config.ConnectionString {
	case "":
		return fmt.Errorf("missing variable: db connection string")
	case privateMemoryDatabase:
		// every pooled connection would open its own empty catalog
		return fmt.Errorf("%s is not shared between connections, use file:<name>?mode=memory&cache=shared",
			privateMemoryDatabase)
	}
	return nil
}

func (config DBConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("db.connection_string", "DB_CONNECTION_STRING")
}
