package connectors

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"deal_service/pkg/logx"
)

// SQLite is the single-file development database. Foreign keys are off by
// default in sqlite, so the DSN always enables them.
type SQLite struct {
	value *sqlx.DB
	Path  string
	init  sync.Once
}

func init() { //nolint:gochecknoinits
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

func SQLiteDSN(path string) string {
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_time_format=sqlite"
}

func (s *SQLite) Client(ctx context.Context) *sqlx.DB {
	s.init.Do(func() {
		s.value = lo.Must(sqlx.ConnectContext(ctx, "sqlite", SQLiteDSN(s.Path)))

		logger(ctx).Info("sqlite opened", slog.String("path", s.Path))
	})

	return s.value
}

func (s *SQLite) Ping(ctx context.Context) error {
	return s.Client(ctx).PingContext(ctx) //nolint:wrapcheck
}

func (s *SQLite) Close(ctx context.Context) {
	if err := s.value.Close(); err != nil {
		logger(ctx).Error("sqliteClient.Close", logx.Error(err))
	}

	logger(ctx).Info("sqlite closed", slog.String("path", s.Path))
}
