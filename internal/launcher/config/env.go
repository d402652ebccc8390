package config

import "os"

// parseEnv overrides config values with environment variables if they are set.
func parseEnv(config *Config) {
	if envDatabaseDSN := os.Getenv("DATABASE_DSN"); envDatabaseDSN != "" {
		config.DatabaseDSN = envDatabaseDSN
	}

	if envJavaVersion := os.Getenv("JAVA_VERSION"); envJavaVersion != "" {
		config.JavaVersion = envJavaVersion
	}
}
