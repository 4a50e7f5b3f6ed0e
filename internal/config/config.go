package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	DriverPostgres  = "postgres"
	DriverFirestore = "firestore"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Store     Store
	Postgres  Postgres
	Firestore Firestore

	Google Google
	Auth   Auth
	Export Export

	Kafka Kafka
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,numeric"`

	ReadTimeout  time.Duration `validate:"gte=0"`
	WriteTimeout time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Store struct {
	Driver string `validate:"required,oneof=postgres firestore"`
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

type Firestore struct {
	ProjectID string `validate:"required"`
}

// Google holds the service account used for Sheets, Drive and Firestore.
// An empty CredentialsFile falls back to application default credentials.
type Google struct {
	CredentialsFile string `validate:"omitempty,file"`
	CatalogSheetID  string `validate:"required"`

	RetryAttempts int           `validate:"gte=1"`
	RetryDelay    time.Duration `validate:"gt=0"`
}

type Auth struct {
	// ProjectID is the identity project whose ID tokens are accepted.
	ProjectID     string        `validate:"required"`
	AdminCacheTTL time.Duration `validate:"gt=0"`
}

type Export struct {
	FrontendURL      string   `validate:"required,url"`
	TitlePrefix      string   `validate:"required"`
	CommissionRate   string   `validate:"required,numeric"`
	CommissionExempt []string `validate:"dive,required"`
	// StockLocations are key:label pairs, e.g. "liron:לירון".
	StockLocations []string `validate:"min=1,dive,contains=:"`
	Timezone       string   `validate:"required,timezone"`
}

type Kafka struct {
	Enabled bool
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),

			ReadTimeout:  envDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: envDuration("HTTP_WRITE_TIMEOUT", 2*time.Minute),
		},

		Cors: CORS{
			AllowedOrigins: envList("ALLOWED_CORS_ORIGINS", "http://localhost:3000"),
		},

		Store: Store{
			Driver: env("STORE_DRIVER", DriverFirestore),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "shop"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Firestore: Firestore{
			ProjectID: env("FIRESTORE_PROJECT_ID", env("GOOGLE_PROJECT_ID", "")),
		},

		Google: Google{
			CredentialsFile: env("GOOGLE_APPLICATION_CREDENTIALS", ""),
			CatalogSheetID:  env("CATALOG_SPREADSHEET_ID", ""),

			RetryAttempts: envInt("GOOGLE_RETRY_ATTEMPTS", 3),
			RetryDelay:    envDuration("GOOGLE_RETRY_DELAY", 500*time.Millisecond),
		},

		Auth: Auth{
			ProjectID:     env("AUTH_PROJECT_ID", env("GOOGLE_PROJECT_ID", "")),
			AdminCacheTTL: envDuration("ADMIN_CACHE_TTL", 5*time.Minute),
		},

		Export: Export{
			FrontendURL:      env("FRONTEND_URL", "http://localhost:3000"),
			TitlePrefix:      env("EXPORT_TITLE_PREFIX", "shomron-tights"),
			CommissionRate:   env("COMMISSION_RATE", "0.1"),
			CommissionExempt: envList("COMMISSION_EXEMPT", "רבבה,יקיר"),
			StockLocations:   envList("STOCK_LOCATIONS", "liron:לירון,sharale:שהרלה"),
			Timezone:         env("TIMEZONE", "Asia/Jerusalem"),
		},

		Kafka: Kafka{
			Enabled: envBool("KAFKA_ENABLED", false),
			GroupID: env("KAFKA_GROUP_ID", "shop-admin"),
			Topic:   env("KAFKA_TOPIC", "shop-admin-events"),
			Brokers: envList("KAFKA_BROKERS", "localhost:9092"),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 500*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},
	}
}

// Validate checks the whole config, skipping sections of the store driver
// that is not in use and Kafka when it is disabled.
func (c Config) Validate() error {
	validate := validator.New()

	var skip []string
	switch c.Store.Driver {
	case DriverPostgres:
		skip = append(skip, "Firestore")
	case DriverFirestore:
		skip = append(skip, "Postgres")
	}
	if !c.Kafka.Enabled {
		skip = append(skip, "Kafka")
	}
	return validate.StructExcept(c, skip...)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
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

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
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

// envList splits a comma separated value, dropping empty items.
func envList(key string, fallback string) []string {
	var out []string
	for _, item := range strings.Split(env(key, fallback), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
