package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultHTTPAddr         = ":8080"
	defaultJWTSecret        = "change-me-jwt-secret"
	defaultJWTAccessTTL     = "24h"
	defaultGeoIPBaseURL     = "http://ip-api.com"
	defaultGeoIPTimeout     = "3s"
	defaultWizardSessionTTL = "30m"
	defaultReminderInterval = "60s"
	defaultReminderWindow   = "1h"
	defaultUploadDir        = "./uploads"
	defaultUploadBaseURL    = "/uploads"
	defaultLogLevel         = "info"
	defaultLogFormat        = "console"
)

// Config is the validated runtime configuration, read once at startup.
type Config struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseURL string
	RedisAddr   string

	JWTSecret    string
	JWTAccessTTL time.Duration

	GeoIPBaseURL string
	GeoIPTimeout time.Duration

	WizardSessionTTL time.Duration

	ReminderInterval time.Duration
	ReminderWindow   time.Duration

	UploadDir     string
	UploadBaseURL string

	LogLevel  string
	LogFormat string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = getEnv("HTTP_ADDR", defaultHTTPAddr)
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.RedisAddr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.GeoIPBaseURL = strings.TrimRight(getEnv("GEOIP_BASE_URL", defaultGeoIPBaseURL), "/")
	cfg.UploadDir = getEnv("UPLOAD_DIR", defaultUploadDir)
	cfg.UploadBaseURL = strings.TrimRight(getEnv("UPLOAD_BASE_URL", defaultUploadBaseURL), "/")
	cfg.LogLevel = getEnv("LOG_LEVEL", defaultLogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", defaultLogFormat)

	var err error
	if cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL); err != nil {
		return nil, err
	}
	if cfg.GeoIPTimeout, err = parseDurationEnv("GEOIP_TIMEOUT", defaultGeoIPTimeout); err != nil {
		return nil, err
	}
	if cfg.WizardSessionTTL, err = parseDurationEnv("WIZARD_SESSION_TTL", defaultWizardSessionTTL); err != nil {
		return nil, err
	}
	if cfg.ReminderInterval, err = parseDurationEnv("REMINDER_INTERVAL", defaultReminderInterval); err != nil {
		return nil, err
	}
	if cfg.ReminderWindow, err = parseDurationEnv("REMINDER_WINDOW", defaultReminderWindow); err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.GeoIPTimeout <= 0 {
		return fmt.Errorf("GEOIP_TIMEOUT must be > 0")
	}
	if cfg.WizardSessionTTL <= 0 {
		return fmt.Errorf("WIZARD_SESSION_TTL must be > 0")
	}
	if cfg.ReminderInterval <= 0 {
		return fmt.Errorf("REMINDER_INTERVAL must be > 0")
	}

	if isProdLike(cfg.AppEnv) {
		if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
