package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	DefaultEnvFile = ".env"
)

type Config struct {
	StorageType string         `validate:"oneof=postgres memory"`
	Postgres    PostgresConfig `validate:"-"`
	APIToken    string         `validate:"required"`
	LogLevel    string         `validate:"oneof=debug info warn error"`
}

type PostgresConfig struct {
	URL      string
	User     string
	Password string
	DB       string
	Host     string
	Port     int
	SSLMode  string

	MaxConns     int           `validate:"gt=0"`
	QueryTimeout time.Duration `validate:"gt=0"`
}

// GetDSN prefers DB_URL and otherwise assembles the URL from its parts.
func (pc PostgresConfig) GetDSN() string {
	if pc.URL != "" {
		return pc.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		pc.User,
		pc.Password,
		pc.Host,
		pc.Port,
		pc.DB,
		pc.SSLMode,
	)
}

func (pc PostgresConfig) hasDSN() bool {
	return pc.URL != "" || (pc.Host != "" && pc.User != "" && pc.DB != "")
}

// LoadConfig reads the environment, falling back to DefaultEnvFile for keys
// the environment does not set.
func LoadConfig() (Config, error) {
	return Load(DefaultEnvFile)
}

func Load(envFile string) (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("storage_type", StoragePostgres)
	v.SetDefault("log_level", "info")
	v.SetDefault("postgres_port", 5432)
	v.SetDefault("postgres_sslmode", "disable")
	v.SetDefault("db_max_conns", 4)
	v.SetDefault("db_query_timeout", 5*time.Second)

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("read %s: %w", envFile, err)
			}
		}
	}

	cfg := Config{
		StorageType: v.GetString("storage_type"),
		APIToken:    v.GetString("api_token"),
		LogLevel:    strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
		Postgres: PostgresConfig{
			URL:          v.GetString("db_url"),
			User:         v.GetString("postgres_user"),
			Password:     v.GetString("postgres_password"),
			DB:           v.GetString("postgres_db"),
			Host:         v.GetString("postgres_host"),
			Port:         v.GetInt("postgres_port"),
			SSLMode:      v.GetString("postgres_sslmode"),
			MaxConns:     v.GetInt("db_max_conns"),
			QueryTimeout: v.GetDuration("db_query_timeout"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := validate.Struct(c.Postgres); err != nil {
		return fmt.Errorf("invalid postgres config: %w", err)
	}
	if c.StorageType == StoragePostgres && !c.Postgres.hasDSN() {
		return errors.New("invalid postgres config: DB_URL or POSTGRES_HOST, POSTGRES_USER and POSTGRES_DB are required")
	}
	return nil
}
