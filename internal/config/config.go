package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service settings.
type Config struct {
	Port   int
	DB     DB
	Auth   Auth
	Report Report
}

// DB stores database connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN returns the postgres connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Auth stores login protection and session settings.
type Auth struct {
	MaxLoginAttempts int
	LockoutWindow    time.Duration
	SessionTTL       time.Duration
}

// Report stores analytics report settings.
type Report struct {
	Path string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:   envInt("PORT", defaultPort),
		DB:     defaultDB,
		Auth:   defaultAuth,
		Report: defaultReport,
	}

	cfg.DB.Host = envString("DB_HOST", cfg.DB.Host)
	cfg.DB.Port = envString("DB_PORT", cfg.DB.Port)
	cfg.DB.User = envString("DB_USER", cfg.DB.User)
	cfg.DB.Pass = envString("DB_PASS", cfg.DB.Pass)
	cfg.DB.Name = envString("DB_NAME", cfg.DB.Name)

	cfg.Auth.MaxLoginAttempts = envInt("MAX_LOGIN_ATTEMPTS", cfg.Auth.MaxLoginAttempts)
	cfg.Auth.LockoutWindow = envDuration("LOCKOUT_WINDOW", cfg.Auth.LockoutWindow)
	cfg.Auth.SessionTTL = envDuration("SESSION_TTL", cfg.Auth.SessionTTL)

	cfg.Report.Path = envString("REPORT_PATH", cfg.Report.Path)

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.StringVar(&cfg.Report.Path, "report-path", cfg.Report.Path, "path of the analytics report artifact")
	pflag.Parse()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Auth.MaxLoginAttempts <= 0 {
		return fmt.Errorf("invalid max login attempts: %d", c.Auth.MaxLoginAttempts)
	}
	if c.Auth.LockoutWindow <= 0 || c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("invalid auth windows: lockout=%v session=%v",
			c.Auth.LockoutWindow, c.Auth.SessionTTL)
	}
	return nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
