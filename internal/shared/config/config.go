package config

import (
	"fmt"
	"strconv"
	"time"

	"starsystem-server/internal/shared/utils"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	Frontend  FrontendConfig
	Logging   LoggingConfig
	RateLimit RateLimitConfig
	Galaxy    GalaxyConfig
}

type RedisConfig struct {
	Enabled  bool
	URL      string
	Host     string
	Port     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type ServerConfig struct {
	Port         string
	URL          string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type FrontendConfig struct {
	URL       string
	CORSDebug bool
}

type LoggingConfig struct {
	Level      string
	Format     string
	JSONFormat bool
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	BurstSize         int
	TrustProxy        bool
}

// GalaxyConfig holds the defaults applied to galaxy build requests that
// leave a field unset.
type GalaxyConfig struct {
	Width               int
	Height              int
	Depth               int
	Density             float64
	InitiallyDiscovered int
	Workers             int
	MaxCells            int
}

var GlobalConfig *Config

func Init() error {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	config, err := load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := config.validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	GlobalConfig = config
	return nil
}

func load() (*Config, error) {
	config := &Config{
		Server:    loadServerConfig(),
		Redis:     loadRedisConfig(),
		Frontend:  loadFrontendConfig(),
		Logging:   loadLoggingConfig(),
		RateLimit: loadRateLimitConfig(),
		Galaxy:    loadGalaxyConfig(),
	}

	return config, nil
}

func loadRedisConfig() RedisConfig {
	enabled := utils.GetEnv("REDIS_ENABLED", "false") == "true"
	db, _ := strconv.Atoi(utils.GetEnv("REDIS_DB", "0"))
	ttl, _ := strconv.Atoi(utils.GetEnv("REDIS_CACHE_TTL_MINUTES", "60"))

	return RedisConfig{
		Enabled:  enabled,
		URL:      utils.GetEnv("REDIS_URL", ""),
		Host:     utils.GetEnv("REDIS_HOST", "localhost"),
		Port:     utils.GetEnv("REDIS_PORT", "6379"),
		Password: utils.GetEnv("REDIS_PASSWORD", ""),
		DB:       db,
		CacheTTL: time.Duration(ttl) * time.Minute,
	}
}

func loadServerConfig() ServerConfig {
	readTimeout, _ := strconv.Atoi(utils.GetEnv("SERVER_READ_TIMEOUT_SECONDS", "15"))
	writeTimeout, _ := strconv.Atoi(utils.GetEnv("SERVER_WRITE_TIMEOUT_SECONDS", "15"))
	idleTimeout, _ := strconv.Atoi(utils.GetEnv("SERVER_IDLE_TIMEOUT_SECONDS", "60"))

	return ServerConfig{
		Port:         utils.GetEnv("SERVER_PORT", "8080"),
		URL:          utils.GetEnv("SERVER_URL", "http://localhost:8080"),
		Environment:  utils.GetEnv("ENVIRONMENT", "development"),
		ReadTimeout:  time.Duration(readTimeout) * time.Second,
		WriteTimeout: time.Duration(writeTimeout) * time.Second,
		IdleTimeout:  time.Duration(idleTimeout) * time.Second,
	}
}

func loadFrontendConfig() FrontendConfig {
	corsDebug := utils.GetEnv("CORS_DEBUG", "") == "true"

	return FrontendConfig{
		URL:       utils.GetEnv("FRONTEND_URL", "http://localhost:3000"),
		CORSDebug: corsDebug,
	}
}

func loadLoggingConfig() LoggingConfig {
	environment := utils.GetEnv("ENVIRONMENT", "development")
	jsonFormat := environment == "production"

	return LoggingConfig{
		Level:      utils.GetEnv("LOG_LEVEL", "debug"),
		Format:     utils.GetEnv("LOG_FORMAT", "text"),
		JSONFormat: jsonFormat,
	}
}

func loadRateLimitConfig() RateLimitConfig {
	enabled := utils.GetEnv("RATE_LIMIT_ENABLED", "true") == "true"
	requestsPerSecond, _ := strconv.ParseFloat(utils.GetEnv("RATE_LIMIT_REQUESTS_PER_SECOND", "10"), 64)
	burstSize, _ := strconv.Atoi(utils.GetEnv("RATE_LIMIT_BURST_SIZE", "20"))

	return RateLimitConfig{
		Enabled:           enabled,
		RequestsPerSecond: requestsPerSecond,
		BurstSize:         burstSize,
		TrustProxy:        utils.GetEnvBool("RATE_LIMIT_TRUST_PROXY", false),
	}
}

func loadGalaxyConfig() GalaxyConfig {
	return GalaxyConfig{
		Width:               utils.GetEnvInt("GALAXY_WIDTH", 10),
		Height:              utils.GetEnvInt("GALAXY_HEIGHT", 10),
		Depth:               utils.GetEnvInt("GALAXY_DEPTH", 1),
		Density:             utils.GetEnvFloat("GALAXY_DENSITY", 0.7),
		InitiallyDiscovered: utils.GetEnvInt("GALAXY_INITIALLY_DISCOVERED", 5),
		Workers:             utils.GetEnvInt("GALAXY_WORKERS", 8),
		MaxCells:            utils.GetEnvInt("GALAXY_MAX_CELLS", 100000),
	}
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	if c.Server.URL == "" {
		return fmt.Errorf("SERVER_URL is required")
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS_PER_SECOND must be positive")
	}

	if c.RateLimit.Enabled && c.RateLimit.BurstSize <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST_SIZE must be positive")
	}

	// zero disables expiry in both cache backends
	if c.Redis.CacheTTL < 0 {
		return fmt.Errorf("REDIS_CACHE_TTL_MINUTES cannot be negative")
	}

	if c.Galaxy.Width <= 0 || c.Galaxy.Height <= 0 || c.Galaxy.Depth <= 0 {
		return fmt.Errorf("GALAXY_WIDTH, GALAXY_HEIGHT and GALAXY_DEPTH must be positive")
	}

	if c.Galaxy.Density < 0 || c.Galaxy.Density > 1 {
		return fmt.Errorf("GALAXY_DENSITY must be between 0 and 1")
	}

	if c.Galaxy.Workers <= 0 {
		return fmt.Errorf("GALAXY_WORKERS must be positive")
	}

	if c.Galaxy.MaxCells <= 0 {
		return fmt.Errorf("GALAXY_MAX_CELLS must be positive")
	}

	return nil
}
