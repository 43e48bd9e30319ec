package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	BaseURL string // Public base URL used in emailed links (default: http://localhost:8080)
	Issuer  string // Issuer claim for access tokens (default: homefind)

	DatabaseFile string // Path to SQLite database file (default: ./homefind.db)
	PepperFile   string // Path to password hashing pepper file (default: ./pepper)
	SecretFile   string // Path to token signing secret file (default: ./secret)

	// BootstrapToken enables the first-run superadmin endpoint. Empty
	// leaves the endpoint disabled.
	BootstrapToken string

	SessionTTL     time.Duration // Session lifetime (default: 168h)
	AccessTokenTTL time.Duration // JWT access token lifetime (default: 24h)

	// Mail delivery. Provider is smtp, kafka, or none.
	MailProvider   string
	MailFrom       string // RFC 5322 sender, e.g. "HomeFind <no-reply@homefind.ng>"
	SMTPHost       string // host:port of the SMTPS server
	SMTPUser       string
	SMTPPassword   string
	SMTPCertPath   string
	SMTPSkipVerify bool
	KafkaBroker    string
	KafkaTopic     string
	KafkaUser      string
	KafkaPassword  string

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired session sweep interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		BaseURL: getEnvOrDefault("HOMEFIND_BASE_URL", "http://localhost:8080"),
		Issuer:  getEnvOrDefault("HOMEFIND_ISSUER", "homefind"),

		DatabaseFile: getEnvOrDefault("HOMEFIND_DATABASE_FILE", "homefind.db"),
		PepperFile:   getEnvOrDefault("HOMEFIND_PEPPER_FILE", "pepper"),
		SecretFile:   getEnvOrDefault("HOMEFIND_SECRET_FILE", "secret"),

		BootstrapToken: os.Getenv("BOOTSTRAP_TOKEN"),

		SessionTTL:     getEnvDurationOrDefault("HOMEFIND_SESSION_TTL", 7*24*time.Hour),
		AccessTokenTTL: getEnvDurationOrDefault("HOMEFIND_ACCESS_TOKEN_TTL", 24*time.Hour),

		MailProvider:   getEnvOrDefault("MAIL_PROVIDER", "none"),
		MailFrom:       getEnvOrDefault("MAIL_FROM", "HomeFind <no-reply@localhost>"),
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPassword:   os.Getenv("SMTP_PASSWORD"),
		SMTPCertPath:   os.Getenv("SMTP_CERT_PATH"),
		SMTPSkipVerify: getEnvBoolOrDefault("SMTP_SKIP_VERIFY", false),
		KafkaBroker:    os.Getenv("KAFKA_BROKER"),
		KafkaTopic:     getEnvOrDefault("KAFKA_MAIL_TOPIC", "homefind.mail"),
		KafkaUser:      os.Getenv("KAFKA_USER"),
		KafkaPassword:  os.Getenv("KAFKA_PASSWORD"),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
