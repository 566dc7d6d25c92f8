package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"icecream/internal/adapters/out/redis"
	"icecream/internal/core/application/usecases/commands"
	"icecream/internal/jobs"
)

// Storage backends selectable through STORAGE.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// Storage is StoragePostgres or StorageMemory.
	Storage string

	OrderMaxQuantity int
	DeliveryRadiusKm int

	// KafkaHost is a comma-separated broker list; empty disables the Kafka publisher.
	KafkaHost              string
	KafkaOrderChangedTopic string

	// RabbitMQURL empty disables the RabbitMQ publisher.
	RabbitMQURL      string
	RabbitMQExchange string

	// RedisAddr empty disables the statistics cache.
	RedisAddr          string
	StatisticsCacheTTL time.Duration

	StalePendingAfter    time.Duration
	StalePendingSchedule string

	SeedSampleData bool

	LogLevel logrus.Level
}

// KafkaBrokers splits KafkaHost into broker addresses.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// LoadConfig reads envFile when it exists and then builds the configuration from the
// environment. Every malformed value is reported.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var p parser
	config := Config{
		HTTPPort:               p.str("HTTP_PORT", "8080"),
		DBHost:                 p.str("DB_HOST", "localhost"),
		DBPort:                 p.str("DB_PORT", "5432"),
		DBUser:                 p.str("DB_USER", "postgres"),
		DBPassword:             p.str("DB_PASSWORD", ""),
		DBName:                 p.str("DB_NAME", "icecream"),
		DBSslMode:              p.str("DB_SSLMODE", "disable"),
		Storage:                strings.ToLower(p.str("STORAGE", StoragePostgres)),
		OrderMaxQuantity:       p.positive("ORDER_MAX_QUANTITY", commands.DefaultMaxOrderQuantity),
		DeliveryRadiusKm:       p.positive("DELIVERY_RADIUS_KM", commands.DefaultDeliveryRadiusKm),
		KafkaHost:              p.str("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: p.str("KAFKA_ORDER_CHANGED_TOPIC", "icecream.orders"),
		RabbitMQURL:            p.str("RABBITMQ_URL", ""),
		RabbitMQExchange:       p.str("RABBITMQ_EXCHANGE", "icecream.orders"),
		RedisAddr:              p.str("REDIS_ADDR", ""),
		StatisticsCacheTTL:     p.duration("STATISTICS_CACHE_TTL", redis.DefaultStatisticsTTL),
		StalePendingAfter:      p.duration("STALE_PENDING_AFTER", 30*time.Minute),
		StalePendingSchedule:   p.str("STALE_PENDING_SCHEDULE", jobs.DefaultStalePendingSchedule),
		SeedSampleData:         p.boolean("SEED_SAMPLE_DATA", true),
		LogLevel:               p.level("LOG_LEVEL", logrus.InfoLevel),
	}

	if config.Storage != StoragePostgres && config.Storage != StorageMemory {
		p.fail("STORAGE", fmt.Errorf("%q is neither %q nor %q", config.Storage, StoragePostgres, StorageMemory))
	}

	if err := errors.Join(p.errs...); err != nil {
		return Config{}, err
	}
	return config, nil
}

// OrderPolicy returns the shop rules configured for order placement.
func (c Config) OrderPolicy() commands.OrderPolicy {
	return commands.OrderPolicy{
		MaxOrderQuantity: c.OrderMaxQuantity,
		DeliveryRadiusKm: c.DeliveryRadiusKm,
	}
}

type parser struct {
	errs []error
}

func (p *parser) fail(key string, err error) {
	p.errs = append(p.errs, fmt.Errorf("invalid %s: %w", key, err))
}

func (p *parser) str(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func (p *parser) integer(key string, fallback int) int {
	raw := p.str(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(key, err)
		return fallback
	}
	return v
}

func (p *parser) positive(key string, fallback int) int {
	v := p.integer(key, fallback)
	if v <= 0 {
		p.fail(key, fmt.Errorf("%d is not positive", v))
		return fallback
	}
	return v
}

func (p *parser) duration(key string, fallback time.Duration) time.Duration {
	raw := p.str(key, "")
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		p.fail(key, err)
		return fallback
	}
	if v <= 0 {
		p.fail(key, fmt.Errorf("%s is not positive", v))
		return fallback
	}
	return v
}

func (p *parser) boolean(key string, fallback bool) bool {
	raw := p.str(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail(key, err)
		return fallback
	}
	return v
}

func (p *parser) level(key string, fallback logrus.Level) logrus.Level {
	raw := p.str(key, "")
	if raw == "" {
		return fallback
	}
	v, err := logrus.ParseLevel(raw)
	if err != nil {
		p.fail(key, err)
		return fallback
	}
	return v
}
