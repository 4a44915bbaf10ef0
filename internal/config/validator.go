package config

import (
	"fmt"
	"os"
	"strings"
)

// RequiredBotEnvVars lists the variables the Discord bot cannot start without
var RequiredBotEnvVars = []string{
	"DISCORD_TOKEN",
	"DISCORD_APP_ID",
	"API_KEY",
}

// ValidateEnv checks that every named variable is set
func ValidateEnv(required []string) error {
	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// Warnings returns non-fatal configuration issues worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string

	if !c.AIEnabled() {
		warnings = append(warnings, "OPENAI_API_KEY is not set - shop, encounters and flavor text will use built-in defaults")
	}
	if c.StorageDriver == DriverPostgres && c.DBPassword == "postgres" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the default value - please use a secure password")
	}
	if c.APIKey == "generate_with_openssl_rand_hex_32" {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	return warnings
}
