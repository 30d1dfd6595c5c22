package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config хранит всю конфигурацию приложения.
type Config struct {
	AppName string
	Port    string

	API     APIConfig
	Session SessionConfig
	Web     WebConfig

	RabbitMQ     RabbitMQConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// APIConfig - удаленный REST API с предложениями.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	TTL     time.Duration
	MaxSize int64
}

type WebConfig struct {
	// PropertyRenderTimeout - сколько страница предложения ждет загрузку,
	// прежде чем отдать экран загрузки.
	PropertyRenderTimeout time.Duration
	CookieSecure          bool
	CORSAllowedOrigins    []string
}

// RabbitMQConfig - публикация событий активности. Пустой URL отключает публикацию.
type RabbitMQConfig struct {
	URL      string
	Exchange string
}

func (c RabbitMQConfig) Enabled() bool {
	return c.URL != ""
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// LoadConfig загружает конфигурацию из переменных окружения.
// .env файл необязателен: без него используются переменные окружения процесса.
func LoadConfig(envPath ...string) (*Config, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		AppName: getEnv("APP_NAME", "six-cities"),
		Port:    getEnv("PORT", "8080"),
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "https://10.react.pages.academy/six-cities"),
			Timeout: getEnvAsDuration("API_TIMEOUT", 5*time.Second),
		},
		Session: SessionConfig{
			TTL:     getEnvAsDuration("SESSION_TTL", 24*time.Hour),
			MaxSize: int64(getEnvAsInt("SESSION_MAX_SIZE", 10000)),
		},
		Web: WebConfig{
			PropertyRenderTimeout: getEnvAsDuration("PROPERTY_RENDER_TIMEOUT", 3*time.Second),
			CookieSecure:          getEnvAsBool("COOKIE_SECURE", false),
			CORSAllowedOrigins:    getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		RabbitMQ: RabbitMQConfig{
			URL:      getEnv("RABBITMQ_URL", ""),
			Exchange: getEnv("RABBITMQ_EXCHANGE", "six-cities.activity"),
		},
	}

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnv("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnv("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return value
}

// getEnvAsDuration понимает формат time.ParseDuration ("5s", "1h30m").
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil || value <= 0 {
		log.Printf("Warning: Environment variable %s (value: %s) is not a positive duration. Using default value: %s\n", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(valueStr) == "" {
		return defaultValue
	}
	var result []string
	for _, item := range strings.Split(valueStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
