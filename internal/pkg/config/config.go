package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeout, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server        ServerConfig
	DB            DBConfig
	CORS          CORSConfig
	Log           LogConfig
	JWT           JWTConfig
	Cookie        CookieConfig
	ResponseToken ResponseTokenConfig
	Estimate      EstimateConfig
	SMTP          SMTPConfig
	Document      DocumentConfig
	Reconcile     ReconcileConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
	// File enables a rotated file sink next to stdout when set.
	File       string `envconfig:"LOG_FILE"`
	MaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"10"`
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"7"`
	MaxAgeDays int    `envconfig:"LOG_MAX_AGE_DAYS" default:"28"`
	Compress   bool   `envconfig:"LOG_COMPRESS" default:"true"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type ResponseTokenConfig struct {
	Secret   string        `envconfig:"RESPONSE_TOKEN_SECRET" required:"true"`
	Validity time.Duration `envconfig:"RESPONSE_TOKEN_VALIDITY" default:"720h"`
	// LinkBaseURL is the client app origin that hosts /quotation/respond.
	LinkBaseURL string `envconfig:"RESPONSE_LINK_BASE_URL" required:"true"`
}

const (
	EstimateModeLive = "live"
	EstimateModeMock = "mock"
)

type EstimateConfig struct {
	Mode         string        `envconfig:"ESTIMATE_MODE" default:"live"`
	BaseURL      string        `envconfig:"ESTIMATE_BASE_URL"`
	TokenURL     string        `envconfig:"ESTIMATE_TOKEN_URL"`
	ClientID     string        `envconfig:"ESTIMATE_CLIENT_ID"`
	ClientSecret string        `envconfig:"ESTIMATE_CLIENT_SECRET"`
	RefreshToken string        `envconfig:"ESTIMATE_REFRESH_TOKEN"`
	Timeout      time.Duration `envconfig:"ESTIMATE_TIMEOUT" default:"15s"`
	RatePerSec   float64       `envconfig:"ESTIMATE_RATE_PER_SEC" default:"5"`
	RateBurst    int           `envconfig:"ESTIMATE_RATE_BURST" default:"10"`
	// CustomItemPrice is charged for permits that are not in the catalog.
	CustomItemPrice string `envconfig:"ESTIMATE_CUSTOM_ITEM_PRICE" default:"0"`
	CustomItemRef   string `envconfig:"ESTIMATE_CUSTOM_ITEM_REF" default:""`
}

func (c EstimateConfig) FallbackPrice() (decimal.Decimal, error) {
	price, err := decimal.NewFromString(c.CustomItemPrice)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid ESTIMATE_CUSTOM_ITEM_PRICE: %w", err)
	}
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("ESTIMATE_CUSTOM_ITEM_PRICE must not be negative")
	}
	return price, nil
}

const (
	SMTPModeSMTP = "smtp"
	SMTPModeLog  = "log"
)

type SMTPConfig struct {
	Mode     string `envconfig:"SMTP_MODE" default:"smtp"`
	Host     string `envconfig:"SMTP_HOST" default:"localhost"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	User     string `envconfig:"SMTP_USER"`
	Password string `envconfig:"SMTP_PASSWORD"`
	From     string `envconfig:"SMTP_FROM" default:"quotations@localhost"`
	// StaffInbox receives a copy of each confirmation email when set.
	StaffInbox string `envconfig:"SMTP_STAFF_INBOX"`
}

const (
	DocumentModePDF  = "pdf"
	DocumentModeHTML = "html"
)

type DocumentConfig struct {
	Mode           string        `envconfig:"DOCUMENT_MODE" default:"pdf"`
	Timeout        time.Duration `envconfig:"DOCUMENT_TIMEOUT" default:"30s"`
	CompanyName    string        `envconfig:"DOCUMENT_COMPANY_NAME" default:"Environmental Consulting"`
	CompanyAddress string        `envconfig:"DOCUMENT_COMPANY_ADDRESS" default:""`
	CurrencySymbol string        `envconfig:"DOCUMENT_CURRENCY_SYMBOL" default:"PHP"`
}

type ReconcileConfig struct {
	Enabled   bool   `envconfig:"RECONCILE_ENABLED" default:"true"`
	Schedule  string `envconfig:"RECONCILE_SCHEDULE" default:"@every 15m"`
	BatchSize int    `envconfig:"RECONCILE_BATCH_SIZE" default:"50"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Estimate.Mode == EstimateModeLive && cfg.Estimate.BaseURL == "" {
		return Config{}, fmt.Errorf("ESTIMATE_BASE_URL is required when ESTIMATE_MODE=%s", EstimateModeLive)
	}
	if _, err := cfg.Estimate.FallbackPrice(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-staff-tokens",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		ResponseToken: ResponseTokenConfig{
			Secret:      "test-secret-key-for-response-links",
			Validity:    720 * time.Hour,
			LinkBaseURL: "http://localhost:3000",
		},
		Estimate: EstimateConfig{
			Mode:            EstimateModeMock,
			Timeout:         5 * time.Second,
			RatePerSec:      100,
			RateBurst:       100,
			CustomItemPrice: "0",
		},
		SMTP: SMTPConfig{
			Mode: SMTPModeLog,
			From: "quotations@example.com",
		},
		Document: DocumentConfig{
			Mode:           DocumentModeHTML,
			Timeout:        5 * time.Second,
			CompanyName:    "Test Consulting",
			CurrencySymbol: "PHP",
		},
		Reconcile: ReconcileConfig{
			Enabled:   false,
			Schedule:  "@every 1h",
			BatchSize: 10,
		},
	}
}
