package config

import (
	"fmt"

	"github.com/jellydator/validation"
	"github.com/kelseyhightower/envconfig"
	"gorm.io/gorm/logger"
)

const (
	CacheLRU     = "lru"
	CacheGoCache = "gocache"
	CacheNone    = "none"
)

type App struct {
	Port            string `envconfig:"API_PORT" default:"8080"`
	DBDriver        string `envconfig:"DB_DRIVER" default:"postgres"`
	DBConnectionURL string `envconfig:"DB_CONNECTION_URL" required:"true"`
	DBLogLevel      string `envconfig:"DB_LOG_LEVEL" default:"warn"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	CacheBackend    string `envconfig:"CACHE_BACKEND" default:"lru"`
	CacheSize       int    `envconfig:"CACHE_SIZE" default:"100000"`
	AddressVersion  uint8  `envconfig:"ADDRESS_VERSION" default:"23"`
	JWTSecret       string `envconfig:"JWT_SECRET"`
	GenesisFile     string `envconfig:"GENESIS_FILE"`
}

// NewApp reads the configuration from the environment.
func NewApp() (App, error) {
	var app App
	if err := envconfig.Process("", &app); err != nil {
		return App{}, fmt.Errorf("process environment: %w", err)
	}

	if err := app.Validate(); err != nil {
		return App{}, fmt.Errorf("validate config: %w", err)
	}

	return app, nil
}

func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Port, validation.Required),
		validation.Field(&a.DBDriver, validation.In("postgres", "sqlite")),
		validation.Field(&a.DBLogLevel, validation.In("silent", "error", "warn", "info")),
		validation.Field(&a.CacheBackend, validation.In(CacheLRU, CacheGoCache, CacheNone)),
		validation.Field(&a.CacheSize, validation.Required.When(a.CacheBackend == CacheLRU), validation.Min(1)),
	)
}

// GormLogLevel maps DB_LOG_LEVEL to the gorm logger level.
func (a App) GormLogLevel() logger.LogLevel {
	switch a.DBLogLevel {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
