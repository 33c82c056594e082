package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config stores the application configuration. It is built once at process
// start and handed to the components that need it; there is no package-level
// instance.
type Config struct {
	MongoURI string
	DBName   string

	// Store connection timeouts. Each one is independently configurable.
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration

	LogLevel string
	LogPath  string

	DefaultListLimit  int
	MaxHistoryEntries int
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt gets an environment variable as int or returns a default value.
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvMillis reads a millisecond count from the environment.
func getEnvMillis(key string, fallbackMS int) time.Duration {
	return time.Duration(getEnvInt(key, fallbackMS)) * time.Millisecond
}

// Load loads configuration from environment variables (via .env file) or defaults.
func Load() *Config {
	// godotenv.Load() will not override existing env vars.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on existing environment variables and defaults.")
	}

	return &Config{
		MongoURI:               getEnv("MONGO_URI", ""),
		DBName:                 getEnv("DB_NAME", "songs_db"),
		ConnectTimeout:         getEnvMillis("DB_CONNECT_TIMEOUT_MS", 5000),
		ServerSelectionTimeout: getEnvMillis("DB_SERVER_SELECTION_TIMEOUT_MS", 5000),
		SocketTimeout:          getEnvMillis("DB_SOCKET_TIMEOUT_MS", 5000),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogPath:                getEnv("LOG_PATH", ""),
		DefaultListLimit:       getEnvInt("DEFAULT_LIST_LIMIT", 50),
		MaxHistoryEntries:      getEnvInt("MAX_HISTORY_ENTRIES", 100),
	}
}
