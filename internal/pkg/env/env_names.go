package env

const (
	EnvHttpPort = "HTTP_PORT"

	EnvDatabaseHost       = "DB_HOST"
	EnvDatabasePort       = "DB_PORT"
	EnvDatabaseUser       = "DB_USER"
	EnvDatabasePassword   = "DB_PASSWORD"
	EnvDatabaseName       = "DB_NAME"
	EnvDatabaseSSLEnabled = "DB_SSL_ENABLED"
	EnvDatabaseLockTime   = "DB_LOCK_TIMEOUT"

	EnvLedgerLockTimeout = "LEDGER_LOCK_TIMEOUT"
	EnvMigrateOnStart    = "MIGRATE_ON_START"
)
