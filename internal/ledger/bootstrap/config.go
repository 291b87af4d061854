package bootstrap

import (
	"fmt"
	"time"

	"github.com/somanmedha/banking-application/internal/ledger/application"
	"github.com/somanmedha/banking-application/internal/pkg/database"
	"github.com/somanmedha/banking-application/internal/pkg/env"
)

type LedgerConfig struct {
	DbSettings     database.PostgresSettings
	HttpPort       string
	LockTimeout    time.Duration
	DbLockTimeout  time.Duration
	MigrateOnStart bool
}

func DefaultLedgerConfig() LedgerConfig {
	return LedgerConfig{
		DbSettings: database.PostgresSettings{
			User:       "admin",
			Password:   "password",
			Host:       "localhost",
			Port:       "5432",
			DBName:     "ledger_db",
			SSlEnabled: false,
		},
		HttpPort:       ":8080",
		LockTimeout:    application.DefaultLockTimeout,
		DbLockTimeout:  application.DefaultLockTimeout,
		MigrateOnStart: false,
	}
}

// LoadLedgerConfig starts from the defaults and applies whatever the
// environment overrides.
func LoadLedgerConfig() (LedgerConfig, error) {
	cfg := DefaultLedgerConfig()

	env.TrySetFromEnv(env.EnvHttpPort, &cfg.HttpPort)
	env.TrySetFromEnv(env.EnvDatabaseHost, &cfg.DbSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &cfg.DbSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &cfg.DbSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &cfg.DbSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &cfg.DbSettings.DBName)

	if err := env.TrySetBoolFromEnv(env.EnvDatabaseSSLEnabled, &cfg.DbSettings.SSlEnabled); err != nil {
		return LedgerConfig{}, fmt.Errorf("invalid %s: %w", env.EnvDatabaseSSLEnabled, err)
	}

	if err := env.TrySetDurationFromEnv(env.EnvLedgerLockTimeout, &cfg.LockTimeout); err != nil {
		return LedgerConfig{}, fmt.Errorf("invalid %s: %w", env.EnvLedgerLockTimeout, err)
	}

	if err := env.TrySetDurationFromEnv(env.EnvDatabaseLockTime, &cfg.DbLockTimeout); err != nil {
		return LedgerConfig{}, fmt.Errorf("invalid %s: %w", env.EnvDatabaseLockTime, err)
	}

	if err := env.TrySetBoolFromEnv(env.EnvMigrateOnStart, &cfg.MigrateOnStart); err != nil {
		return LedgerConfig{}, fmt.Errorf("invalid %s: %w", env.EnvMigrateOnStart, err)
	}

	return cfg, nil
}
