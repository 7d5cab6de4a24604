// Package push доставляет уведомления из очереди на устройства.
package push

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cobusiness02/forgefyt/internal/lib/sl"
	"github.com/cobusiness02/forgefyt/internal/models"
	"github.com/cobusiness02/forgefyt/internal/notify"
	"github.com/cobusiness02/forgefyt/internal/observability"
)

// ErrNoDeviceToken сообщение без токена устройства доставить некуда.
var ErrNoDeviceToken = errors.New("notification has no device token")

// Gateway канал доставки до устройства.
type Gateway interface {
	Name() string
	Push(ctx context.Context, n models.Notification) error
}

// LogGateway имитирует APNs: доставка записывается в лог.
type LogGateway struct {
	log *slog.Logger
}

// NewLogGateway создаёт LogGateway.
func NewLogGateway(log *slog.Logger) *LogGateway {
	return &LogGateway{log: log}
}

// Name имя канала для метрик.
func (g *LogGateway) Name() string { return "apns" }

// Push пишет строку о доставке.
func (g *LogGateway) Push(_ context.Context, n models.Notification) error {
	g.log.Info("push delivered",
		slog.String("notification_id", n.ID),
		slog.String("user_id", n.UserID),
		slog.String("device_token", notify.MaskToken(n.DeviceToken)),
		slog.String("title", n.Title),
	)
	return nil
}

// Service разбирает сообщения очереди и передаёт их в Gateway.
type Service struct {
	gateway Gateway
	log     *slog.Logger
}

// New создаёт сервис доставки.
func New(log *slog.Logger, gateway Gateway) *Service {
	return &Service{gateway: gateway, log: log}
}

// Deliver обрабатывает одно сообщение очереди. Нераспознанное сообщение
// и сообщение без токена отбрасываются без ошибки, чтобы не крутиться
// в очереди. Ошибка канала доставки возвращается для повтора.
func (s *Service) Deliver(ctx context.Context, body []byte) error {
	const op = "push.Deliver"

	var n models.Notification
	if err := json.Unmarshal(body, &n); err != nil {
		s.log.Error("failed to unmarshal notification, dropped", sl.Err(err))
		return nil
	}
	if n.DeviceToken == "" {
		s.log.Warn("notification dropped",
			slog.String("notification_id", n.ID),
			sl.Err(ErrNoDeviceToken),
		)
		return nil
	}

	err := s.gateway.Push(ctx, n)
	observability.RecordNotification(s.gateway.Name(), err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
