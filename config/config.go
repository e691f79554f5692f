package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Stripe   StripeConfig   `mapstructure:"stripe"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Site     SiteConfig     `mapstructure:"site"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// AuthConfig configures bearer-token verification against the identity
// provider's signing secret.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

// StripeConfig configures the payment platform integration.
type StripeConfig struct {
	SecretKey             string  `mapstructure:"secret_key"`
	WebhookSecret         string  `mapstructure:"webhook_secret"`
	ApplicationFeePercent float64 `mapstructure:"application_fee_percent"` // 0 disables the platform fee
	AccountCountry        string  `mapstructure:"account_country"`         // ISO 3166-1 alpha-2
}

// AdminConfig holds privileged operation settings.
type AdminConfig struct {
	BootstrapSecret string `mapstructure:"bootstrap_secret"` // empty disables admin bootstrap
}

// SiteConfig holds the public web application base URL, used as the default
// onboarding return destination.
type SiteConfig struct {
	URL string `mapstructure:"url"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: MKT_.
// Nested keys use underscore: MKT_DATABASE_HOST, MKT_STRIPE_SECRET_KEY, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "marketplace")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("stripe.secret_key", "")
	v.SetDefault("stripe.webhook_secret", "")
	v.SetDefault("stripe.application_fee_percent", 0.0)
	v.SetDefault("stripe.account_country", "DK")
	v.SetDefault("admin.bootstrap_secret", "")
	v.SetDefault("site.url", "http://localhost:5173")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: MKT_DATABASE_HOST -> database.host
	v.SetEnvPrefix("MKT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configuration values that would otherwise only surface as
// request-time failures.
func (c *Config) Validate() error {
	if c.Stripe.ApplicationFeePercent < 0 || c.Stripe.ApplicationFeePercent > 100 {
		return fmt.Errorf("stripe.application_fee_percent must be between 0 and 100, got %v", c.Stripe.ApplicationFeePercent)
	}
	if len(c.Stripe.AccountCountry) != 2 {
		return fmt.Errorf("stripe.account_country must be a 2-letter ISO code, got %q", c.Stripe.AccountCountry)
	}
	if c.Admin.BootstrapSecret != "" && len(c.Admin.BootstrapSecret) < 16 {
		return fmt.Errorf("admin.bootstrap_secret must be at least 16 characters when set")
	}
	return nil
}
