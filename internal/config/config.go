package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// PusherConfig holds the four credentials for the hosted pub/sub relay.
// The realtime feature is disabled when any of them is missing.
type PusherConfig struct {
	AppID   string
	Key     string
	Secret  string
	Cluster string
}

func (p PusherConfig) Complete() bool {
	return p.AppID != "" && p.Key != "" && p.Secret != "" && p.Cluster != ""
}

type RedisConfig struct {
	URL      string
	Host     string
	Port     string
	Password string
	DB       int
}

func (r RedisConfig) Configured() bool {
	return r.URL != "" || (r.Host != "" && r.Port != "")
}

type EmailConfig struct {
	APIKey string
	Sender string
}

func (e EmailConfig) Complete() bool {
	return e.APIKey != "" && e.Sender != ""
}

type Config struct {
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	RefreshTTL  time.Duration
	AppURL      string
	AppEnv      string
	Port        string

	Pusher PusherConfig
	Redis  RedisConfig
	Email  EmailConfig

	NATSURL string

	RateLimitRPS   int
	RateLimitBurst int
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads the process environment into a validated Config. A .env file in
// the working directory is merged in first so local runs behave like the
// diagnostic script. Missing required variables are reported together in a
// single error so operators fix them in one pass.
func Load() (*Config, error) {
	// Best effort: absence of a .env file is the normal production case.
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTTTL:      GetEnvAsDuration("JWT_TTL", 24*time.Hour),
		RefreshTTL:  GetEnvAsDuration("REFRESH_TTL", 7*24*time.Hour),
		AppURL:      GetEnvAsString("APP_URL", "http://localhost:3000"),
		AppEnv:      GetEnvAsString("APP_ENV", "development"),
		Port:        GetEnvAsString("PORT", "8080"),
		Pusher: PusherConfig{
			AppID:   os.Getenv("PUSHER_APP_ID"),
			Key:     os.Getenv("PUSHER_KEY"),
			Secret:  os.Getenv("PUSHER_SECRET"),
			Cluster: os.Getenv("PUSHER_CLUSTER"),
		},
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			Host:     os.Getenv("REDIS_HOST"),
			Port:     os.Getenv("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       GetEnvAsInt("REDIS_DB", 0),
		},
		Email: EmailConfig{
			APIKey: os.Getenv("EMAIL_API_KEY"),
			Sender: os.Getenv("EMAIL_SENDER"),
		},
		NATSURL:        os.Getenv("NATS_URL"),
		RateLimitRPS:   GetEnvAsInt("RATE_LIMIT_RPS", 10),
		RateLimitBurst: GetEnvAsInt("RATE_LIMIT_BURST", 20),
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.JWTSecret == "" {
		// No development fallback secret. A process without a real secret
		// must not start serving.
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	switch cfg.AppEnv {
	case "development", "production", "test":
	default:
		return nil, fmt.Errorf("invalid APP_ENV %q: must be development, production or test", cfg.AppEnv)
	}

	// Optional feature groups only warn; the feature stays disabled.
	if !cfg.Pusher.Complete() {
		log.Println("Pusher configuration incomplete, realtime notifications disabled")
	}
	if !cfg.Redis.Configured() {
		log.Println("Redis not configured, unread-count caching disabled")
	}
	if !cfg.Email.Complete() {
		log.Println("Email configuration incomplete, notification emails disabled")
	}
	if cfg.NATSURL == "" {
		log.Println("NATS_URL not set, domain event publishing disabled")
	}

	return cfg, nil
}
