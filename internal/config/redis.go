package config

import "time"

type Redis struct {
	Address  string `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`
	Username string `env:"REDIS_USERNAME"`
	Password string `env:"REDIS_PASSWORD" json:"-"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	// PoolSize, MinIdleConns: пул клиента readiness-проверки.
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"4"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"1"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
}

type Asynq struct {
	Queue          string        `env:"ASYNQ_QUEUE" envDefault:"deals"`
	MaxRetry       int           `env:"ASYNQ_MAX_RETRY" envDefault:"5"`
	EnqueueTimeout time.Duration `env:"ASYNQ_ENQUEUE_TIMEOUT" envDefault:"5s"`
	// WorkerEnabled запускает обработчик событий в этом же процессе.
	WorkerEnabled   bool          `env:"ASYNQ_WORKER_ENABLED" envDefault:"true"`
	Concurrency     int           `env:"ASYNQ_CONCURRENCY" envDefault:"4"`
	ShutdownTimeout time.Duration `env:"ASYNQ_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	DedupTTL        time.Duration `env:"ASYNQ_DEDUP_TTL" envDefault:"1h"`
}
