package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	HTTP     HTTP
	Database Database
	Postgres Postgres
	SQLite   SQLite
	Redis    Redis
	Asynq    Asynq
	Bot      Bot
}

type App struct {
	Name     string     `env:"APP_NAME" envDefault:"deal-service"`
	Version  string     `env:"APP_VERSION" envDefault:"dev"`
	LogLevel slog.Level `env:"APP_LOG_LEVEL" envDefault:"INFO"`
	// MetricsNamespace — префикс всех метрик сервиса.
	MetricsNamespace string `env:"APP_METRICS_NAMESPACE" envDefault:"deal_service"`
}

type HTTP struct {
	ListenAddress        string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8000"`
	ProbeListenAddress   string        `env:"HTTP_PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricsListenAddress string        `env:"HTTP_METRICS_LISTEN_ADDRESS" envDefault:":9090"`
	ReadHeaderTimeout    time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout      time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogFieldMaxLen       int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"4096"`
}

type Database struct {
	// Driver: pgx (postgres) или sqlite.
	Driver string `env:"DB_DRIVER" envDefault:"pgx"`
	// AutoMigrate применяет схему при старте.
	AutoMigrate bool `env:"DB_AUTO_MIGRATE" envDefault:"false"`
}

type Bot struct {
	// Token пустой — уведомления в Telegram отключены.
	Token  string `env:"BOT_TOKEN" json:"-"`
	ChatID int64  `env:"BOT_CHAT_ID"`
	// AdminEnabled включает long polling и команды для администратора.
	AdminEnabled bool  `env:"BOT_ADMIN_ENABLED" envDefault:"false"`
	AdminID      int64 `env:"BOT_ADMIN_ID"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("PG_DSN is required for DB_DRIVER=%s", DriverPostgres)
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if c.Bot.Token != "" && c.Bot.ChatID == 0 {
		return fmt.Errorf("BOT_CHAT_ID is required when BOT_TOKEN is set")
	}

	if c.Bot.AdminEnabled && (c.Bot.Token == "" || c.Bot.AdminID == 0) {
		return fmt.Errorf("BOT_TOKEN and BOT_ADMIN_ID are required when BOT_ADMIN_ENABLED is set")
	}

	return nil
}
