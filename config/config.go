package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const (
	DefaultRelayTarget = "http://16.171.10.128:8081"
	DefaultAPIBaseURL  = "http://localhost:8888/api"
	DefaultAuditTopic  = "food-admin.audit"
	DefaultAuditGroup  = "food-admin.audit-tail"
)

// Console is the admin-console configuration, built once and handed to
// every component that needs it.
type Console struct {
	APIBaseURL     string
	Timeout        time.Duration
	AuthScheme     string
	SessionBackend string
	SessionFile    string
	KafkaBroker    string
	AuditTopic     string
	AuditGroup     string
}

type Relay struct {
	Addr      string
	TargetURL string
}

// Load reads a .env file from the working directory when one exists. A
// missing file is not an error; the process environment still applies.
func Load() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env not loaded: %v", err)
	}
}

func LoadConsole() Console {
	Load()
	return Console{
		APIBaseURL:     GetEnv("API_BASE_URL", DefaultAPIBaseURL),
		Timeout:        getDuration("API_TIMEOUT", 30*time.Second),
		AuthScheme:     GetEnv("AUTH_SCHEME", "Bearer"),
		SessionBackend: GetEnv("SESSION_BACKEND", "file"),
		SessionFile:    GetEnv("SESSION_FILE", defaultSessionFile()),
		KafkaBroker:    os.Getenv("KAFKA_BROKER"),
		AuditTopic:     GetEnv("AUDIT_TOPIC", DefaultAuditTopic),
		AuditGroup:     GetEnv("AUDIT_GROUP", DefaultAuditGroup),
	}
}

func LoadRelay() Relay {
	Load()
	return Relay{
		Addr:      GetEnv("RELAY_ADDR", ":8888"),
		TargetURL: GetEnv("RELAY_TARGET_URL", DefaultRelayTarget),
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration accepts Go duration strings ("15s") or a bare number of seconds.
func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Printf("config: invalid %s=%q, using %s", key, raw, defaultValue)
	return defaultValue
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".food-admin-state.json"
	}
	return filepath.Join(home, ".food-admin", "state.json")
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

	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

// NewKafkaReader joins groupID so every partition of the topic is read. A
// group with no committed offset starts at the newest message.
func NewKafkaReader(broker, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       topic,
		GroupID:     groupID,
		StartOffset: kafka.LastOffset,
		MinBytes:    1,
		MaxBytes:    10e6,
	})
}

// NewKafkaWriter hashes message keys, so messages sharing a key stay on one
// partition.
func NewKafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.Hash{},
	}
}
