// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, browser backend, speech, and storage

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Browser contains headless rendering backend configuration
	Browser BrowserConfig

	// Speech contains speech synthesis configuration
	Speech SpeechConfig

	// Storage contains episode and media storage configuration
	Storage StorageConfig

	// Logging contains log output configuration
	Logging LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// PublicBaseURL is the externally reachable base URL, used in feed
	// enclosure and audio proxy links
	PublicBaseURL string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// BrowserConfig holds headless rendering backend configuration
type BrowserConfig struct {
	// WebSocketURL is the managed browser pool endpoint. Empty means the
	// rendering backend is unavailable and JS-heavy pages cannot be scraped.
	WebSocketURL string

	// ConnectTimeout is the session connection bound in seconds
	ConnectTimeout int

	// NavigateTimeout is the page navigation bound in seconds
	NavigateTimeout int

	// MaxRetries is how many times a rate-limited session creation is retried
	MaxRetries int

	// RetryDelay is the fixed backoff between retries in seconds
	RetryDelay int
}

// SpeechConfig holds speech synthesis configuration
type SpeechConfig struct {
	// LanguageCode is the synthesis language (e.g. "en-US")
	LanguageCode string

	// DefaultVoice is the voice used when a segment has none assigned
	DefaultVoice string
}

// StorageConfig holds episode and media storage configuration
type StorageConfig struct {
	// DatabasePath is the SQLite database file for shows and episodes
	DatabasePath string

	// MediaDir is the directory audio files are written to
	MediaDir string
}

// LoggingConfig holds log output configuration
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error")
	Level string

	// FilePath enables rotating file output when non-empty
	FilePath string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:          getEnvOrDefault("PORT", "8000"),
			PublicBaseURL: getEnvOrDefault("PUBLIC_BASE_URL", "http://localhost:8000"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
		},
		Browser: BrowserConfig{
			WebSocketURL:    getEnvOrDefault("BROWSER_WS_URL", ""),
			ConnectTimeout:  getEnvAsIntOrDefault("BROWSER_CONNECT_TIMEOUT", 15),
			NavigateTimeout: getEnvAsIntOrDefault("BROWSER_NAVIGATE_TIMEOUT", 30),
			MaxRetries:      getEnvAsIntOrDefault("BROWSER_MAX_RETRIES", 2),
			RetryDelay:      getEnvAsIntOrDefault("BROWSER_RETRY_DELAY", 5),
		},
		Speech: SpeechConfig{
			LanguageCode: getEnvOrDefault("SPEECH_LANGUAGE", "en-US"),
			DefaultVoice: getEnvOrDefault("SPEECH_DEFAULT_VOICE", "en-US-Neural2-J"),
		},
		Storage: StorageConfig{
			DatabasePath: getEnvOrDefault("DATABASE_PATH", "anoncast.db"),
			MediaDir:     getEnvOrDefault("MEDIA_DIR", "media"),
		},
		Logging: LoggingConfig{
			Level:    getEnvOrDefault("LOG_LEVEL", "info"),
			FilePath: getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Browser.ConnectTimeout < 1 {
		return errors.New("browser connect timeout must be at least 1 second")
	}

	if c.Browser.NavigateTimeout < 1 {
		return errors.New("browser navigate timeout must be at least 1 second")
	}

	if c.Browser.MaxRetries < 0 {
		return errors.New("browser max retries cannot be negative")
	}

	if c.Storage.DatabasePath == "" {
		return errors.New("database path cannot be empty")
	}

	return nil
}
