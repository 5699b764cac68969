package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Nawaf-Almansour/prep-manger/pkg/database"
)

// APIConfig describes the upstream Prep Manager REST API.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
}

type KafkaConfig struct {
	Brokers       []string
	ActivityTopic string
	ChangesTopic  string
	ConsumerGroup string
}

type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// Config holds the dashboard configuration
type Config struct {
	ServiceName    string
	Environment    string
	LogLevel       string
	HTTPPort       string
	MetricsPort    string
	JaegerEndpoint string
	AllowedOrigins string

	API      APIConfig
	Redis    RedisConfig
	Database database.Config
	Kafka    KafkaConfig
	Session  SessionConfig

	CacheTTL       time.Duration
	DefaultLocale  string
	Location       *time.Location
	LoginRateLimit int
}

// IsDevelopment reports whether the dashboard runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load reads an optional .env file and then the environment.
func Load() *Config {
	_ = godotenv.Load()

	env := getEnv("ENVIRONMENT", "development")

	loc, err := time.LoadLocation(getEnv("TIMEZONE", "Local"))
	if err != nil {
		loc = time.Local
	}

	return &Config{
		ServiceName:    getEnv("OTEL_SERVICE_NAME", "prep-dashboard"),
		Environment:    env,
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		HTTPPort:       getEnv("HTTP_PORT", "8000"),
		MetricsPort:    getEnv("METRICS_PORT", "9100"),
		JaegerEndpoint: getEnv("JAEGER_ENDPOINT", ""),
		AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		API: APIConfig{
			BaseURL: strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:5000/api/v1"), "/"),
			Timeout: getDuration("API_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Database: database.Config{
			DSN:      getEnv("DATABASE_URL", ""),
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "prep_dashboard"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Kafka: KafkaConfig{
			Brokers:       splitList(getEnv("KAFKA_BROKERS", "")),
			ActivityTopic: getEnv("KAFKA_ACTIVITY_TOPIC", "prep.activity"),
			ChangesTopic:  getEnv("KAFKA_CHANGES_TOPIC", "prep.changes"),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "prep-dashboard"),
		},
		Session: SessionConfig{
			CookieName: getEnv("SESSION_COOKIE", "prep_session"),
			TTL:        getDuration("SESSION_TTL", 7*24*time.Hour),
			Secure:     env == "production",
		},
		CacheTTL:       getDuration("CACHE_TTL", 30*time.Second),
		DefaultLocale:  getEnv("DEFAULT_LOCALE", "en"),
		Location:       loc,
		LoginRateLimit: getInt("LOGIN_RATE_LIMIT", 10),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
