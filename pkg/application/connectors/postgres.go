package connectors

import (
	"context"
	"log/slog"
	"net/url"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"deal_service/pkg/logx"
)

type Postgres struct {
	value           *sqlx.DB
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	init            sync.Once
}

func (p *Postgres) Client(ctx context.Context) *sqlx.DB {
	p.init.Do(func() {
		p.value = lo.Must(sqlx.ConnectContext(ctx, "pgx", p.DSN))

		p.value.SetMaxOpenConns(p.MaxOpenConns)
		p.value.SetMaxIdleConns(p.MaxIdleConns)
		p.value.SetConnMaxLifetime(p.ConnMaxLifetime)
		p.value.SetConnMaxIdleTime(p.ConnMaxIdleTime)

		logger(ctx).Info("postgres connected", p.target())
	})

	return p.value
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.Client(ctx).PingContext(ctx) //nolint:wrapcheck
}

func (p *Postgres) Close(ctx context.Context) {
	if p.value == nil {
		return
	}

	if err := p.value.Close(); err != nil {
		logger(ctx).Error("postgresClient.Close", logx.Error(err))
	}

	logger(ctx).Info("postgres disconnected", p.target())
}

// target описывает подключение без учётных данных.
func (p *Postgres) target() slog.Attr {
	u, err := url.Parse(p.DSN)
	if err != nil {
		return slog.String("database", "unparsable dsn")
	}

	return slog.Group("database", slog.String("host", u.Host), slog.String("name", u.Path))
}
