package config

import (
	"os"
	"strconv"
)

type Config struct {
	App      AppConfig
	Logger   LoggerConfig
	Database DatabaseConfig
}

type AppConfig struct {
	AppEnv string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// DatabaseConfig selects the store backend. Driver is "sqlite" (file-backed, the
// default) or "postgres".
type DatabaseConfig struct {
	Driver          string
	SQLitePath      string
	Postgres        PostgresConfig
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func LoadEnv() *Config {
	return &Config{
		App: AppConfig{
			AppEnv: getEnv("APP_ENV", "production"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "warn"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", true),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "sqlite"),
			SQLitePath: getEnv("SQLITE_PATH", "electronics_components_shop.db"),
			Postgres: PostgresConfig{
				Host:     getEnv("POSTGRES_HOST", "localhost"),
				Port:     getEnv("POSTGRES_PORT", "5432"),
				User:     getEnv("POSTGRES_USER", "shop"),
				Password: getEnv("POSTGRES_PASSWORD", "shop"),
				DBName:   getEnv("POSTGRES_DB", "electronics_components_shop"),
				SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
			},
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 1),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 1),
			ConnMaxLifetime: getEnvInt("DB_CONN_MAX_LIFETIME", 0),
			ConnMaxIdleTime: getEnvInt("DB_CONN_MAX_IDLE_TIME", 0),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
