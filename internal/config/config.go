package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Telegram Telegram `validate:"required"`

	Postgres Postgres `validate:"required"`

	Cache Cache `validate:"required"`

	// Пустой список брокеров отключает публикацию событий
	Kafka Kafka
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Telegram struct {
	Token               string `validate:"required"`
	CashierID           int64  `validate:"required"`
	ChannelID           int64  `validate:"required"`
	ComplaintsChannelID int64  `validate:"required"`
	Restaurant          string `validate:"required"`

	PollTimeout      time.Duration `validate:"gte=0"`
	CallbackDebounce time.Duration `validate:"gte=0"`
}

type Kafka struct {
	Brokers      []string      `validate:"omitempty,dive,hostname_port"`
	Topic        string        `validate:"required_with=Brokers"`
	BatchTimeout time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

// Cache настраивает LRU кэш журнала заказов для HTTP API
type Cache struct {
	Capacity int           `validate:"gt=0"`
	TTL      time.Duration `validate:"gt=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

// File is the optional settings file pointed to by CONFIG_PATH.
// Environment variables take precedence over it.
type File struct {
	Token               string `yaml:"token"`
	CashierID           int64  `yaml:"cashier_id"`
	ChannelID           int64  `yaml:"channel_id"`
	ComplaintsChannelID int64  `yaml:"complaints_channel_id"`
	Restaurant          string `yaml:"restaurant"`
}

func New() (Config, error) {
	file, err := loadFile(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: envList("ALLOWED_CORS_ORIGINS", "http://localhost:3000"),
		},

		Telegram: Telegram{
			Token:               env("TELEGRAM_TOKEN", file.Token),
			CashierID:           envInt64("CASHIER_ID", file.CashierID),
			ChannelID:           envInt64("CHANNEL_ID", file.ChannelID),
			ComplaintsChannelID: envInt64("COMPLAINTS_CHANNEL_ID", file.ComplaintsChannelID),
			Restaurant:          env("RESTAURANT_NAME", file.Restaurant),

			PollTimeout:      envDuration("TELEGRAM_POLL_TIMEOUT", 60*time.Second),
			CallbackDebounce: envDuration("CALLBACK_DEBOUNCE", 2*time.Second),
		},

		Kafka: Kafka{
			Brokers:      envList("KAFKA_BROKERS", ""),
			Topic:        env("KAFKA_TOPIC", "order-events"),
			BatchTimeout: envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "restaurant_orders"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},
	}

	if cfg.Telegram.Restaurant == "" {
		cfg.Telegram.Restaurant = "default"
	}
	// Жалобы уходят в канал заказов, если отдельный чат не задан
	if cfg.Telegram.ComplaintsChannelID == 0 {
		cfg.Telegram.ComplaintsChannelID = cfg.Telegram.ChannelID
	}

	return cfg, nil
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func loadFile(path string) (File, error) {
	var f File
	if path == "" {
		return f, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("failed to parse config file: %w", err)
	}
	return f, nil
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envList(key string, fallback string) []string {
	var res []string
	for _, v := range strings.Split(env(key, fallback), ",") {
		if v = strings.TrimSpace(v); v != "" {
			res = append(res, v)
		}
	}
	return res
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
