// Package pushdispatcher читает очередь push-уведомлений и доставляет их.
package pushdispatcher

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/cobusiness02/forgefyt/internal/config"
	"github.com/cobusiness02/forgefyt/internal/lib/rabbitmq"
	"github.com/cobusiness02/forgefyt/internal/lib/sl"
	pushservice "github.com/cobusiness02/forgefyt/internal/services/push"
)

const workers = 4

// App потребитель очереди уведомлений.
type App struct {
	conn        *amqp.Connection
	ch          *amqp.Channel
	queue       string
	pushService *pushservice.Service
	logger      *slog.Logger
}

// New подключается к брокеру и объявляет очередь уведомлений.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.Retries, cfg.RetryDelay)
	if err != nil {
		return nil, err
	}

	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.PushQueues(cfg.RabbitMQ))
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &App{
		conn:        conn,
		ch:          ch,
		queue:       cfg.RabbitMQ.Queue,
		pushService: pushservice.New(logger, pushservice.NewLogGateway(logger)),
		logger:      logger,
	}, nil
}

// Run обрабатывает очередь до отмены ctx.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("push dispatcher consuming", slog.String("queue", a.queue))
	err := rabbitmq.ConsumerMessage(ctx, a.logger, a.ch, a.queue, workers, a.pushService.Deliver)
	if err != nil {
		a.logger.Error("failed to consume push queue", sl.Err(err))
	}

	a.logger.Info("push dispatcher shutting down gracefully")
	if closeErr := a.ch.Close(); closeErr != nil {
		a.logger.Error("failed to close channel", sl.Err(closeErr))
	}
	if closeErr := a.conn.Close(); closeErr != nil {
		a.logger.Error("failed to close connection", sl.Err(closeErr))
	}
	return err
}
