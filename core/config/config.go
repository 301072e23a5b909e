package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/Primesh-FL/FormSG/core/db"
)

type Config struct {
	OTel         OTelConfig
	WorkOS       WorkOSConfig
	Redis        RedisConfig
	Twilio       TwilioConfig
	Env          string `env:"FORMSG_ENV" envDefault:"development"`
	Port         string `env:"PORT" envDefault:"8080"`
	PublicURL    string `env:"PUBLIC_URL" envDefault:"http://localhost:8080"`
	DashboardURL string `env:"DASHBOARD_URL" envDefault:"http://localhost:3000"`
	DB           db.Config
}

type OTelConfig struct {
	Endpoint       string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Headers        string `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	ServiceName    string `env:"OTEL_SERVICE_NAME" envDefault:"formsg-api"`
	ServiceVersion string `env:"OTEL_SERVICE_VERSION" envDefault:"dev"`
}

type WorkOSConfig struct {
	APIKey      string `env:"WORKOS_API_KEY"`
	ClientID    string `env:"WORKOS_CLIENT_ID"`
	RedirectURI string `env:"WORKOS_REDIRECT_URI" envDefault:"http://localhost:8080/auth/callback"`
}

type RedisConfig struct {
	URL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	// Twilio delivery callbacks are fanned out on this stream.
	SmsStream       string `env:"REDIS_SMS_STREAM" envDefault:"sms_delivery_updates"`
	SmsStreamMaxLen int64  `env:"REDIS_SMS_STREAM_MAXLEN" envDefault:"100000"`
}

type TwilioConfig struct {
	AuthToken       string `env:"TWILIO_AUTH_TOKEN"`
	VerifySignature bool   `env:"TWILIO_VERIFY_SIGNATURE" envDefault:"false"`
}

type ServiceType string

const (
	ServiceTypeServer ServiceType = "server"
	ServiceTypeCLI    ServiceType = "cli"
)

// Load reads configuration from the environment.
// In development it first loads .env.<service> (falling back to .env) so
// local runs don't need exported variables.
func Load(serviceType ServiceType) (Config, error) {
	if getEnv("FORMSG_ENV", "development") == "development" {
		envFile := fmt.Sprintf(".env.%s", serviceType)
		if err := godotenv.Load(envFile); err != nil {
			_ = godotenv.Load(".env")
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing env: %w", err)
	}

	if serviceType == ServiceTypeServer {
		if !cfg.WorkOS.Enabled() {
			return Config{}, fmt.Errorf("WORKOS_API_KEY and WORKOS_CLIENT_ID are required")
		}
		if cfg.Twilio.VerifySignature && cfg.Twilio.AuthToken == "" {
			return Config{}, fmt.Errorf("TWILIO_AUTH_TOKEN is required when TWILIO_VERIFY_SIGNATURE is set")
		}
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func (c WorkOSConfig) Enabled() bool {
	return c.APIKey != "" && c.ClientID != ""
}

func (c TwilioConfig) SignatureVerificationEnabled() bool {
	return c.VerifySignature && c.AuthToken != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
