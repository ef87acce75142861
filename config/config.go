package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const (
	CartEventsTopic  = "cart-events"
	OrderEventsTopic = "order-events"

	// WriterBatchTimeout caps how long a synchronous publish waits for its
	// batch to fill; kafka-go's default is a full second.
	WriterBatchTimeout = 10 * time.Millisecond
)

// CartSettings is everything cart-svc reads from the environment.
type CartSettings struct {
	Addr            string
	BackendURL      string
	TrackingBaseURL string
	PollInterval    time.Duration
	HTTPTimeout     time.Duration
	ProductCacheTTL time.Duration
	IdempotencyTTL  time.Duration
	SessionIdleTTL  time.Duration
}

func LoadCartSettings() CartSettings {
	return CartSettings{
		Addr:            GetEnv("CART_SVC_ADDR", ":8084"),
		BackendURL:      GetEnv("BACKEND_URL", "http://localhost:5000"),
		TrackingBaseURL: GetEnv("TRACKING_BASE_URL", "http://localhost:5173"),
		PollInterval:    GetDuration("POLL_INTERVAL", 5*time.Second),
		HTTPTimeout:     GetDuration("HTTP_TIMEOUT", 10*time.Second),
		ProductCacheTTL: GetDuration("PRODUCT_CACHE_TTL", 5*time.Minute),
		IdempotencyTTL:  GetDuration("IDEMPOTENCY_TTL", 15*time.Minute),
		SessionIdleTTL:  GetDuration("SESSION_IDLE_TTL", 30*time.Minute),
	}
}

type HistorySettings struct {
	Addr      string
	StatusTTL time.Duration
}

func LoadHistorySettings() HistorySettings {
	return HistorySettings{
		Addr:      GetEnv("HISTORY_SVC_ADDR", ":8085"),
		StatusTTL: GetDuration("STATUS_TTL", 7*24*time.Hour),
	}
}

type GatewaySettings struct {
	Addr          string
	CartSvcURL    string
	HistorySvcURL string
	BackendURL    string
	Timeout       time.Duration
}

func LoadGatewaySettings() GatewaySettings {
	return GatewaySettings{
		Addr:          GetEnv("GATEWAY_ADDR", ":8080"),
		CartSvcURL:    GetEnv("CART_SVC_URL", "http://localhost:8084"),
		HistorySvcURL: GetEnv("HISTORY_SVC_URL", "http://localhost:8085"),
		BackendURL:    GetEnv("BACKEND_URL", "http://localhost:5000"),
		Timeout:       GetDuration("HTTP_TIMEOUT", 30*time.Second),
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetDuration parses values such as "5s" or "250ms"; a malformed value falls back to the default.
func GetDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("config: invalid duration %s=%q, using %s", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: GetEnv("REDIS_HOST", "localhost") + ":" + GetEnv("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{GetEnv("KAFKA_BROKER", "localhost:9092")},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(GetEnv("KAFKA_BROKER", "localhost:9092")),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: WriterBatchTimeout,
	}
}
