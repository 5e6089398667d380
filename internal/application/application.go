package application

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	"deal_service/internal/config"
	"deal_service/internal/domain/service/catalog"
	service "deal_service/internal/domain/service/deal"
	"deal_service/internal/infrastructure/events"
	"deal_service/internal/infrastructure/persistence"
	"deal_service/internal/server"
	"deal_service/internal/transport/bot"
	"deal_service/internal/worker"
	"deal_service/migrations"
	"deal_service/pkg/application/connectors"
	"deal_service/pkg/application/modules"
	"deal_service/pkg/logx"
	"deal_service/pkg/metrics"
	"deal_service/pkg/middlewarex"
	"deal_service/pkg/probe"
)

// Run поднимает все модули сервиса и ждёт их завершения. Остановка —
// отменой ctx.
func Run(ctx context.Context, cfg config.Config) error {
	registry := metrics.NewRegistry()

	// 1. Database
	db, dbCheck, closeDB := openDatabase(ctx, cfg)
	defer closeDB()

	if cfg.Database.AutoMigrate {
		if err := migrations.Apply(ctx, db, cfg.Database.Driver); err != nil {
			return fmt.Errorf("migrations.Apply: %w", err)
		}

		logger(ctx).Info("database schema applied")
	}

	// 2. Redis и очередь задач
	redis := &connectors.Redis{
		Username:       cfg.Redis.Username,
		Password:       cfg.Redis.Password,
		Address:        cfg.Redis.Address,
		DatabaseNumber: cfg.Redis.DB,
		PoolSize:       cfg.Redis.PoolSize,
		MinIdleConns:   cfg.Redis.MinIdleConns,
		DialTimeout:    cfg.Redis.DialTimeout,
	}
	redis.Client(ctx)
	defer redis.Close(ctx)

	asynqClient := &connectors.AsynqClient{
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		Address:  cfg.Redis.Address,
		DB:       cfg.Redis.DB,
	}
	defer asynqClient.Close(ctx)

	emitter := events.NewEmitter(asynqClient.Client(ctx), registry, events.Options{
		Queue:          cfg.Asynq.Queue,
		MaxRetry:       cfg.Asynq.MaxRetry,
		EnqueueTimeout: cfg.Asynq.EnqueueTimeout,
		Namespace:      cfg.App.MetricsNamespace,
	})

	// 3. Services
	dealService := service.NewDealService(persistence.NewDealRepository(db), emitter)
	catalogService := catalog.NewService(
		persistence.NewCompanyRepository(db),
		persistence.NewDistributorRepository(db),
		persistence.NewTagRepository(db),
	)

	srv := server.NewServer(
		server.NewDealServer(dealService),
		server.NewCatalogServer(catalogService),
	)

	httpServer := &http.Server{
		Addr: cfg.HTTP.ListenAddress,
		Handler: srv.Router(server.RouterOptions{
			Metrics:             middlewarex.NewHTTPMetrics(registry, cfg.App.MetricsNamespace),
			SensitiveDataMasker: logx.NewSensitiveDataMasker(),
			LogFieldMaxLen:      cfg.HTTP.LogFieldMaxLen,
		}),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	// 4. Modules
	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, httpServer)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
		Checks: map[string]probe.Check{
			"database": dbCheck,
			"redis":    redis.Ping,
		},
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.HTTP.MetricsListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	if cfg.Asynq.WorkerEnabled {
		notifier, err := newNotifier(cfg.Bot, cfg.HTTP.LogFieldMaxLen)
		if err != nil {
			return fmt.Errorf("newNotifier: %w", err)
		}

		dealEvents := worker.NewDealEvents(notifier, registry, worker.DealEventsOptions{
			Namespace: cfg.App.MetricsNamespace,
			DedupTTL:  cfg.Asynq.DedupTTL,
		})

		modules.AsynqServer{
			RedisUsername:   cfg.Redis.Username,
			RedisPassword:   cfg.Redis.Password,
			RedisAddress:    cfg.Redis.Address,
			RedisDB:         cfg.Redis.DB,
			Concurrency:     cfg.Asynq.Concurrency,
			ShutdownTimeout: cfg.Asynq.ShutdownTimeout,
			Logger:          newAsynqLogger(cfg.App.LogLevel),
		}.Run(ctx, g, modules.AsynqQueues{cfg.Asynq.Queue: 1}, dealEvents.Handlers()...)
	}

	if cfg.Bot.AdminEnabled {
		adminBot, err := bot.New(cfg.Bot.Token, cfg.Bot.AdminID, dealService)
		if err != nil {
			return fmt.Errorf("bot.New: %w", err)
		}

		g.Go(func() error {
			return adminBot.Run(ctx)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

func openDatabase(ctx context.Context, cfg config.Config) (*sqlx.DB, probe.Check, func()) {
	if cfg.Database.Driver == config.DriverSQLite {
		sqlite := &connectors.SQLite{Path: cfg.SQLite.Path}

		return sqlite.Client(ctx), sqlite.Ping, func() { sqlite.Close(ctx) }
	}

	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Postgres.ConnMaxIdleTime,
	}

	return pg.Client(ctx), pg.Ping, func() { pg.Close(ctx) }
}
