package config

import "time"

// Storage drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Defaults
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultEnvironment = "dev"
	DefaultServiceName = "newbot-ai"
	DefaultVersion     = "dev"

	DefaultDBMaxConns = 10
	DefaultSQLitePath = "data/rpg.sqlite3"

	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultAITimeout   = 20 * time.Second

	DefaultShopCacheSize     = 256
	DefaultShopRetentionDays = 7
)
