package config

import "time"

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

type Postgres struct {
	DSN             string        `env:"PG_DSN" json:"-"`
	MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"PG_CONN_MAX_IDLE_TIME" envDefault:"1m"`
}

type SQLite struct {
	Path string `env:"SQLITE_PATH" envDefault:"deal_service.db"`
}
