package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Database Database `json:"database" mapstructure:"database"`
	Seed     Seed     `json:"seed" mapstructure:"seed"`
}

type Database struct {
	URLEnv string `json:"url_env" mapstructure:"url_env"`
	// Fallback pieces used when the URL environment variable is unset.
	// Each can be overridden by DB_HOST, DB_PORT and DB_NAME.
	Host string `json:"host" mapstructure:"host"`
	Port string `json:"port" mapstructure:"port"`
	Name string `json:"name" mapstructure:"name"`
}

type Seed struct {
	Users                  int `json:"users" mapstructure:"users"`
	Cooperatives           int `json:"cooperatives" mapstructure:"cooperatives"`
	ProductsPerCooperative int `json:"products_per_cooperative" mapstructure:"products_per_cooperative"`
	Transactions           int `json:"transactions" mapstructure:"transactions"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "MONGODB_URI"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "27017"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "sou9na"
	}
	if cfg.Seed.Users == 0 {
		cfg.Seed.Users = 1200
	}
	if cfg.Seed.Cooperatives == 0 {
		cfg.Seed.Cooperatives = 120
	}
	if cfg.Seed.ProductsPerCooperative == 0 {
		cfg.Seed.ProductsPerCooperative = 8
	}
	if cfg.Seed.Transactions == 0 {
		cfg.Seed.Transactions = 2000
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Seed.Users < 2 {
		return fmt.Errorf("seed.users must be at least 2 (one admin plus actors), got %d", c.Seed.Users)
	}
	if c.Seed.Cooperatives < 1 {
		return fmt.Errorf("seed.cooperatives must be positive, got %d", c.Seed.Cooperatives)
	}
	if c.Seed.ProductsPerCooperative < 1 {
		return fmt.Errorf("seed.products_per_cooperative must be positive, got %d", c.Seed.ProductsPerCooperative)
	}
	if c.Seed.Transactions < 1 {
		return fmt.Errorf("seed.transactions must be positive, got %d", c.Seed.Transactions)
	}
	return nil
}

// DatabaseURL resolves the MongoDB connection string. When the configured
// environment variable is unset it builds a local fallback URI from
// DB_HOST/DB_PORT/DB_NAME and reports that the fallback was used.
func (c *Config) DatabaseURL() (string, bool) {
	if uri := os.Getenv(c.Database.URLEnv); uri != "" {
		return uri, false
	}

	host := envOr("DB_HOST", c.Database.Host)
	port := envOr("DB_PORT", c.Database.Port)
	name := envOr("DB_NAME", c.Database.Name)

	return fmt.Sprintf("mongodb://%s:%s/%s", host, port, name), true
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MaskURI hides the password portion of a connection URI so credentials
// never reach log output.
func MaskURI(uri string) string {
	at := strings.LastIndex(uri, "@")
	if at < 0 {
		return uri
	}

	head := uri[:at]
	schemeEnd := strings.Index(head, "://")
	if schemeEnd < 0 {
		return uri
	}

	creds := head[schemeEnd+3:]
	colon := strings.Index(creds, ":")
	if colon < 0 {
		return uri
	}

	return head[:schemeEnd+3] + creds[:colon] + ":***" + uri[at:]
}
