package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/osa911/cateringform/internal/logging"
)

// Mail providers
const (
	ProviderMailjet = "mailjet"
	ProviderResend  = "resend"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment  string `env:"ENV" envDefault:"development"`
	Port         string `env:"API_PORT" envDefault:"8080"`
	MaxBodyBytes int64  `env:"MAX_BODY_BYTES" envDefault:"65536"`

	// Logging Configuration
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string `env:"LOG_FILE"`
	LogMaxSize    int    `env:"LOG_MAX_SIZE" envDefault:"100"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAge     int    `env:"LOG_MAX_AGE" envDefault:"7"`
	LogRequests   bool   `env:"LOG_REQUESTS" envDefault:"false"`

	// CORS Configuration, comma separated
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// Reverse proxies (IPs or CIDRs) whose X-Forwarded-For / X-Real-IP
	// headers are believed. Empty trusts none.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// Rate Limits
	RateLimitRPS     float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst   int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
	ContactRateRPS   float64 `env:"CONTACT_RATE_RPS" envDefault:"1"`
	ContactRateBurst int     `env:"CONTACT_RATE_BURST" envDefault:"5"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPInsecure bool   `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"false"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"cateringform"`

	Mail MailConfig
}

// MailConfig holds the mail provider settings. Credentials are optional at
// load time; a missing key is reported per request.
type MailConfig struct {
	Provider string        `env:"MAIL_PROVIDER" envDefault:"mailjet"`
	Timeout  time.Duration `env:"MAIL_TIMEOUT" envDefault:"10s"`

	MailjetPublicKey  string `env:"MJ_APIKEY_PUBLIC"`
	MailjetPrivateKey string `env:"MJ_APIKEY_PRIVATE"`
	MailjetURL        string `env:"MAILJET_API_URL" envDefault:"https://api.mailjet.com/v3.1/send"`

	ResendAPIKey string `env:"RESEND_API_KEY"`

	RecipientEmail string `env:"CONTACT_RECIPIENT_EMAIL"`
	BCCEmail       string `env:"CONTACT_BCC_EMAIL"`
	SenderEmail    string `env:"CONTACT_SENDER_EMAIL"`
	SenderName     string `env:"CONTACT_SENDER_NAME"`
}

// IsProduction reports whether the service runs with ENV=production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Logging returns the logger settings
func (c *Config) Logging() *logging.Config {
	return &logging.Config{
		Level:      c.LogLevel,
		File:       c.LogFile,
		MaxSize:    c.LogMaxSize,
		MaxBackups: c.LogMaxBackups,
		MaxAge:     c.LogMaxAge,
		Requests:   c.LogRequests,
	}
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	envLocations := []string{".env"}

	// If ENV is set, try to load that specific file first
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		// godotenv.Load never overrides variables already set in the process
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	return Parse()
}

// Parse reads the configuration from the process environment only
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, logging.WrapError(err, "failed to parse config")
	}

	cfg.Mail.Provider = strings.ToLower(strings.TrimSpace(cfg.Mail.Provider))
	switch cfg.Mail.Provider {
	case ProviderMailjet, ProviderResend:
	default:
		return nil, logging.WrapError(logging.ErrInvalidConfig, fmt.Sprintf("unsupported MAIL_PROVIDER %q", cfg.Mail.Provider))
	}

	for i, origin := range cfg.AllowedOrigins {
		cfg.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	for i, proxy := range cfg.TrustedProxies {
		proxy = strings.TrimSpace(proxy)
		if !validProxy(proxy) {
			return nil, logging.WrapError(logging.ErrInvalidConfig, fmt.Sprintf("TRUSTED_PROXIES entry %q is not an IP or CIDR", proxy))
		}
		cfg.TrustedProxies[i] = proxy
	}

	if err := cfg.Logging().Validate(); err != nil {
		return nil, logging.WrapError(logging.ErrInvalidConfig, err.Error())
	}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			return nil, logging.WrapError(err, "failed to create log directory")
		}
	}

	return cfg, nil
}

func validProxy(s string) bool {
	if net.ParseIP(s) != nil {
		return true
	}
	_, _, err := net.ParseCIDR(s)
	return err == nil
}
