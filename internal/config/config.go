package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/giftlane/souvenirs-backend/internal/platform/envutil"
)

type Config struct {
	Addr    string `yaml:"addr"`
	LogMode string `yaml:"log_mode"`
	DB      DB     `yaml:"db"`
}

type DB struct {
	// Driver is "postgres" or "sqlite". The sqlite driver is intended for
	// local development; Name is then the database file path.
	Driver   string `yaml:"driver"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

// Load reads an optional YAML file and applies environment overrides on
// top. A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Addr:    ":8080",
		LogMode: "development",
		DB: DB{
			Driver:  "postgres",
			Host:    "localhost",
			Port:    "5432",
			User:    "postgres",
			Name:    "souvenirs",
			SSLMode: "disable",
		},
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// fall through to env overrides
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.Addr = envutil.String("SERVER_ADDR", cfg.Addr)
	cfg.LogMode = envutil.String("LOG_MODE", cfg.LogMode)
	cfg.DB.Driver = envutil.String("DB_DRIVER", cfg.DB.Driver)
	cfg.DB.Host = envutil.String("DB_HOST", cfg.DB.Host)
	cfg.DB.Port = envutil.String("DB_PORT", cfg.DB.Port)
	cfg.DB.User = envutil.String("DB_USER", cfg.DB.User)
	cfg.DB.Password = envutil.String("DB_PASSWORD", cfg.DB.Password)
	cfg.DB.Name = envutil.String("DB_NAME", cfg.DB.Name)
	cfg.DB.SSLMode = envutil.String("DB_SSLMODE", cfg.DB.SSLMode)

	return cfg, nil
}

// DSN renders the postgres connection string. Ignored for sqlite.
func (d DB) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}
