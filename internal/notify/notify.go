// Package notify доставляет push-уведомления на зарегистрированные
// устройства. Доставка выполняется асинхронно и не блокирует запрос.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/streadway/amqp"

	"github.com/cobusiness02/forgefyt/internal/lib/rabbitmq"
	"github.com/cobusiness02/forgefyt/internal/lib/sl"
	"github.com/cobusiness02/forgefyt/internal/models"
	"github.com/cobusiness02/forgefyt/internal/observability"
)

// Sink канал доставки уведомлений.
type Sink interface {
	Send(ctx context.Context, n models.Notification) error
	Name() string
}

// LogSink имитирует отправку в APNs: уведомление только пишется в лог.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink создаёт LogSink.
func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log}
}

// Name имя канала для метрик.
func (s *LogSink) Name() string { return "log" }

// Send пишет уведомление в лог.
func (s *LogSink) Send(_ context.Context, n models.Notification) error {
	s.log.Info("push notification delivered",
		slog.String("notification_id", n.ID),
		slog.String("user_id", n.UserID),
		slog.String("device", MaskToken(n.DeviceToken)),
		slog.String("title", n.Title),
	)
	return nil
}

// AMQPSink публикует уведомления в RabbitMQ для push-dispatcher.
type AMQPSink struct {
	mu         sync.Mutex
	ch         *amqp.Channel
	routingKey string
}

// NewAMQPSink создаёт AMQPSink поверх подготовленного канала.
func NewAMQPSink(ch *amqp.Channel, routingKey string) *AMQPSink {
	return &AMQPSink{ch: ch, routingKey: routingKey}
}

// Name имя канала для метрик.
func (s *AMQPSink) Name() string { return "amqp" }

// Send публикует уведомление. Канал amqp не потокобезопасен, публикации
// сериализуются. Ожидание очереди и самой публикации ограничено ctx.
func (s *AMQPSink) Send(ctx context.Context, n models.Notification) error {
	const op = "notify.AMQPSink.Send"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	done := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if err := ctx.Err(); err != nil {
			done <- err
			return
		}
		done <- rabbitmq.Publish(s.ch, rabbitmq.Message{ID: n.ID, RoutingKey: s.routingKey, Body: n})
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}
}

// Dispatcher отправляет уведомления в фоне с ограничением по времени.
type Dispatcher struct {
	log     *slog.Logger
	sink    Sink
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewDispatcher создаёт Dispatcher. timeout ограничивает одну отправку.
func NewDispatcher(log *slog.Logger, sink Sink, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Dispatcher{log: log, sink: sink, timeout: timeout}
}

// Dispatch запускает отправку и сразу возвращает управление.
// Ошибки доставки попадают в лог и метрики.
func (d *Dispatcher) Dispatch(n models.Notification) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		err := d.sink.Send(ctx, n)
		observability.RecordNotification(d.sink.Name(), err)
		if err != nil {
			d.log.Error("failed to dispatch notification",
				slog.String("notification_id", n.ID),
				slog.String("sink", d.sink.Name()),
				sl.Err(err),
			)
		}
	}()
}

// Wait дожидается завершения всех запущенных отправок.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// MaskToken оставляет первые 8 символов токена устройства.
func MaskToken(token string) string {
	if len(token) <= 8 {
		return token + "..."
	}
	return token[:8] + "..."
}
