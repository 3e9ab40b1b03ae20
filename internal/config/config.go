package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultHTTPAddr         = ":8080"
	defaultDatabaseURL      = "file:rentalhub.db"
	defaultJWTSecret        = "change-me-jwt-secret"
	defaultJWTTTL           = "24h"
	defaultLoginMaxAttempts = "5"
	defaultLoginWindow      = "15m"
	defaultShutdownTimeout  = "10s"
	defaultCORSOrigins      = "http://localhost:3000,http://localhost:5173"
)

type Config struct {
	AppEnv   string         `yaml:"app_env"`
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Redis    RedisConfig    `yaml:"redis"`
	Log      LogConfig      `yaml:"log"`
}

type HTTPConfig struct {
	Addr               string        `yaml:"addr"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"`
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
	// Migrations runs the embedded SQL migrations instead of AutoMigrate.
	Migrations bool `yaml:"migrations"`
	Debug      bool `yaml:"debug"`
}

type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"`
	JWTTTL           time.Duration `yaml:"jwt_ttl"`
	LoginMaxAttempts int           `yaml:"login_max_attempts"`
	LoginWindow      time.Duration `yaml:"login_window"`
}

// RedisConfig enables the shared login limiter when URL is set.
type RedisConfig struct {
	URL string `yaml:"url"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads .env (if present), then the YAML file named by CONFIG_FILE (if
// set), then environment variables. Later sources win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.overrideWithEnv(); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func (c *Config) overrideWithEnv() error {
	c.AppEnv = strings.ToLower(strings.TrimSpace(getEnv("APP_ENV", orDefault(c.AppEnv, "dev"))))

	c.HTTP.Addr = strings.TrimSpace(getEnv("HTTP_ADDR", orDefault(c.HTTP.Addr, defaultHTTPAddr)))
	c.Database.URL = strings.TrimSpace(getEnv("DATABASE_URL", orDefault(c.Database.URL, defaultDatabaseURL)))
	c.Database.Migrations = parseBoolEnv("MIGRATIONS", strconv.FormatBool(c.Database.Migrations))
	c.Database.Debug = parseBoolEnv("DB_DEBUG", strconv.FormatBool(c.Database.Debug))
	c.Auth.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", orDefault(c.Auth.JWTSecret, defaultJWTSecret)))
	c.Redis.URL = strings.TrimSpace(getEnv("REDIS_URL", c.Redis.URL))
	c.Log.Level = getEnv("LOG_LEVEL", orDefault(c.Log.Level, "info"))
	c.Log.Format = getEnv("LOG_FORMAT", orDefault(c.Log.Format, "text"))

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" || len(c.HTTP.CORSAllowedOrigins) == 0 {
		c.HTTP.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", defaultCORSOrigins))
	}

	var err error
	if c.Auth.JWTTTL, err = parseDurationEnv("JWT_TTL", durationOr(c.Auth.JWTTTL, defaultJWTTTL)); err != nil {
		return err
	}
	if c.Auth.LoginWindow, err = parseDurationEnv("LOGIN_WINDOW", durationOr(c.Auth.LoginWindow, defaultLoginWindow)); err != nil {
		return err
	}
	if c.HTTP.ShutdownTimeout, err = parseDurationEnv("SHUTDOWN_TIMEOUT", durationOr(c.HTTP.ShutdownTimeout, defaultShutdownTimeout)); err != nil {
		return err
	}

	attempts := defaultLoginMaxAttempts
	if c.Auth.LoginMaxAttempts > 0 {
		attempts = strconv.Itoa(c.Auth.LoginMaxAttempts)
	}
	value := strings.TrimSpace(getEnv("LOGIN_MAX_ATTEMPTS", attempts))
	if c.Auth.LoginMaxAttempts, err = strconv.Atoi(value); err != nil {
		return fmt.Errorf("invalid LOGIN_MAX_ATTEMPTS value %q: %w", value, err)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return isProdLike(c.AppEnv)
}

func validateConfig(cfg *Config) error {
	if cfg.Auth.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.Auth.LoginWindow <= 0 {
		return fmt.Errorf("LOGIN_WINDOW must be > 0")
	}
	if cfg.Auth.LoginMaxAttempts <= 0 {
		return fmt.Errorf("LOGIN_MAX_ATTEMPTS must be > 0")
	}
	if cfg.HTTP.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be > 0")
	}
	if cfg.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.Auth.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func durationOr(d time.Duration, def string) string {
	if d > 0 {
		return d.String()
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
