package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/smsdesk/smsdesk/internal/types"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Postgres   PostgresConfig   `validate:"required"`
	Auth       AuthConfig       `validate:"required"`
	Contacts   ContactsConfig   `validate:"required"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Cache      CacheConfig
	Sentry     SentryConfig
	RBAC       RBACConfig
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required,oneof=local aws_lambda_api"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type PostgresConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	DBName         string `mapstructure:"dbname"`
	SSLMode        string `mapstructure:"sslmode"`
	MaxOpenConns   int    `mapstructure:"max_open_conns"`
	MaxIdleConns   int    `mapstructure:"max_idle_conns"`
	ConnectRetries uint64 `mapstructure:"connect_retries"`
}

type AuthConfig struct {
	Secret   string        `validate:"required"`
	TokenTTL time.Duration `mapstructure:"token_ttl"`
}

type ContactsConfig struct {
	// DefaultRegion is used to parse numbers that carry no international prefix
	// and is the only country new contacts may belong to.
	DefaultRegion   string `mapstructure:"default_region" validate:"required,len=2"`
	SampleFilePath  string `mapstructure:"sample_file_path" validate:"required"`
	ScopeBulkDelete bool   `mapstructure:"scope_bulk_delete"`
}

type RateLimitConfig struct {
	Enabled bool
	RPS     float64 `mapstructure:"rps"`
	Burst   int
}

type CacheConfig struct {
	Enabled bool
	TTL     time.Duration `mapstructure:"ttl"`
}

type SentryConfig struct {
	Enabled     bool
	DSN         string `mapstructure:"dsn"`
	Environment string
	SampleRate  float64 `mapstructure:"sample_rate"`
}

type RBACConfig struct {
	RolesConfigPath string `mapstructure:"roles_config_path"`
}

func NewConfig() (*Configuration, error) {
	// .env is optional, real environment variables win
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	v := viper.New()

	// Modify config paths to ensure config.yaml is found
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/smsdesk")

	// Set up environment variables support
	v.SetEnvPrefix("SMSDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()
	setDefaults(v)

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Error reading config file: %v\n", err)
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults registers every key so env-only deployments unmarshal correctly
func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", types.ModeLocal)
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", types.LogLevelInfo)
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "smsdesk")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.dbname", "smsdesk")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_open_conns", 10)
	v.SetDefault("postgres.max_idle_conns", 5)
	v.SetDefault("postgres.connect_retries", 5)
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.token_ttl", 30*24*time.Hour)
	v.SetDefault("contacts.default_region", types.DefaultCountry)
	v.SetDefault("contacts.sample_file_path", "assets/files/sample-contacts.csv")
	v.SetDefault("contacts.scope_bulk_delete", false)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.rps", 10)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", time.Minute)
	v.SetDefault("sentry.enabled", false)
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "local")
	v.SetDefault("sentry.sample_rate", 1.0)
	v.SetDefault("rbac.roles_config_path", "")
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development
// This is useful for running scripts, tests or other non-web applications
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Auth:       AuthConfig{TokenTTL: 30 * 24 * time.Hour},
		Contacts: ContactsConfig{
			DefaultRegion:  types.DefaultCountry,
			SampleFilePath: "assets/files/sample-contacts.csv",
		},
		Cache: CacheConfig{Enabled: true, TTL: time.Minute},
	}
}

func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		c.User,
		c.Password,
		c.DBName,
		c.Host,
		c.Port,
		c.SSLMode,
	)
}
