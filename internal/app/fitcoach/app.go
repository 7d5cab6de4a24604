package fitcoach

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/cobusiness02/forgefyt/internal/cache"
	"github.com/cobusiness02/forgefyt/internal/collection"
	"github.com/cobusiness02/forgefyt/internal/config"
	"github.com/cobusiness02/forgefyt/internal/http/middlewarectx"
	"github.com/cobusiness02/forgefyt/internal/lib/jwt"
	"github.com/cobusiness02/forgefyt/internal/lib/rabbitmq"
	"github.com/cobusiness02/forgefyt/internal/lib/sl"
	"github.com/cobusiness02/forgefyt/internal/migrations"
	"github.com/cobusiness02/forgefyt/internal/notify"
	"github.com/cobusiness02/forgefyt/internal/storage"
)

const (
	shutdownTimeout = 15 * time.Second
	dispatchTimeout = 5 * time.Second
)

// App HTTP API вместе с подключениями к внешним системам.
type App struct {
	server     *http.Server
	logger     *slog.Logger
	db         *storage.Storage
	cache      *cache.Cache
	amqp       *amqp.Connection
	dispatcher *notify.Dispatcher
}

// New подключает хранилище, кэш и брокер, если они заданы в конфиге,
// собирает сервисы и маршруты. Без строки подключения к PostgreSQL
// данные хранятся в памяти процесса.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{logger: logger}
	if err := a.connect(ctx, cfg); err != nil {
		a.close()
		return nil, err
	}

	stores := MemoryStores()
	if a.db != nil {
		stores = PostgresStores(a.db)
	}

	clk := clock.New()
	opts := collection.Options{Clock: clk, CacheTTL: cfg.CacheTTL, Logger: logger}
	if a.cache != nil {
		opts.Cache = a.cache
	}

	var sink notify.Sink = notify.NewLogSink(logger)
	if a.amqp != nil {
		ch, err := rabbitmq.SetupChannel(a.amqp, rabbitmq.PushQueues(cfg.RabbitMQ))
		if err != nil {
			a.close()
			return nil, err
		}
		sink = notify.NewAMQPSink(ch, cfg.RabbitMQ.RoutingKey)
	}
	a.dispatcher = notify.NewDispatcher(logger, sink, dispatchTimeout)

	tokens := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	svc := NewServices(logger, stores, opts, tokens, a.dispatcher, cfg.IOS)
	if !cfg.SkipSeed {
		if err := svc.Seed(ctx); err != nil {
			a.close()
			return nil, err
		}
		logger.Info("seed data loaded")
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, svc, RouteOptions{
		Clock:   clk,
		Env:     cfg.Env,
		Limiter: middlewarectx.NewRateLimiter(cfg.Requests, cfg.Window),
	})

	a.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return a, nil
}

func (a *App) connect(ctx context.Context, cfg *config.Config) error {
	if cfg.StorageConnectionString != "" {
		db, err := storage.New(ctx, cfg.StorageConnectionString)
		if err != nil {
			return err
		}
		a.db = db
		if _, err = migrations.Run(db.DB, cfg.MigrationsPath, a.logger); err != nil {
			return err
		}
		a.logger.Info("using postgres storage")
	} else {
		a.logger.Info("using in-memory storage")
	}

	if cfg.AddressRedis != "" {
		c, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return err
		}
		a.cache = c
	}

	if cfg.RabbitMQ.URL != "" {
		conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.Retries, cfg.RetryDelay)
		if err != nil {
			return err
		}
		a.amqp = conn
	}
	return nil
}

// Run обслуживает запросы до отмены ctx, затем останавливает сервер,
// дожидается отправки уведомлений и закрывает подключения.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	if a.dispatcher != nil {
		a.dispatcher.Wait()
	}
	if a.amqp != nil {
		if err := a.amqp.Close(); err != nil {
			a.logger.Error("failed to close rabbitmq connection", sl.Err(err))
		}
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("failed to close redis", sl.Err(err))
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error("failed to close storage", sl.Err(err))
		}
	}
}
