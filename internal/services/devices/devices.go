// Package devices содержит логику iOS-клиента: регистрацию устройств
// для push-уведомлений, отправку уведомлений, конфигурацию приложения
// и выгрузку изменений для офлайн-синхронизации.
package devices

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/mod/semver"

	"github.com/cobusiness02/forgefyt/internal/collection"
	"github.com/cobusiness02/forgefyt/internal/config"
	"github.com/cobusiness02/forgefyt/internal/lib/sl"
	"github.com/cobusiness02/forgefyt/internal/models"
	"github.com/cobusiness02/forgefyt/internal/notify"
	"github.com/cobusiness02/forgefyt/internal/observability"
)

var (
	// ErrAlreadyRegistered у пользователя уже есть активная регистрация.
	ErrAlreadyRegistered = errors.New("device already registered")
	// ErrNoDevice у получателя нет активной регистрации.
	ErrNoDevice = errors.New("no device registration found for user")
)

// Platform единственная поддерживаемая платформа.
const Platform = "ios"

// UnknownVersion версия приложения или ОС, если клиент её не прислал.
const UnknownVersion = "unknown"

const registerAttempts = 3

// Collection коллекция регистраций устройств.
type Collection = collection.Collection[models.Device, *models.Device]

// Dispatcher фоновая доставка уведомлений.
type Dispatcher interface {
	Dispatch(n models.Notification)
}

// Schema описание регистрации устройства. У пользователя не больше
// одной активной регистрации.
func Schema() collection.Schema[models.Device] {
	return collection.Schema[models.Device]{
		Name: "devices",
		Fields: map[string]func(*models.Device) []string{
			"userId": func(d *models.Device) []string { return []string{d.OwnerID} },
		},
		Status: func(d *models.Device) string {
			if d.IsActive {
				return "active"
			}
			return "inactive"
		},
		Terminal:   "inactive",
		SoftDelete: func(d *models.Device) { d.IsActive = false },
		Constraints: []collection.Constraint[models.Device]{{
			Name:  "device",
			Scope: collection.Owner,
			Key:   func(d *models.Device) (string, bool) { return Platform, d.IsActive },
			Err:   ErrAlreadyRegistered,
		}},
		Defaults: func(d *models.Device, now time.Time) {
			d.RegisteredAt = now
			d.IsActive = true
			if d.Platform == "" {
				d.Platform = Platform
			}
			if d.AppVersion == "" {
				d.AppVersion = UnknownVersion
			}
			if d.OSVersion == "" {
				d.OSVersion = UnknownVersion
			}
		},
	}
}

// Registration результат регистрации устройства.
type Registration struct {
	Device          *models.Device
	UpgradeRequired bool
}

// Service сервис iOS-клиента.
type Service struct {
	log        *slog.Logger
	devices    *Collection
	dispatcher Dispatcher
	ios        config.IOS
	sync       SyncSources
}

// New создаёт сервис устройств.
func New(log *slog.Logger, devices *Collection, dispatcher Dispatcher, ios config.IOS, sources SyncSources) *Service {
	return &Service{log: log, devices: devices, dispatcher: dispatcher, ios: ios, sync: sources}
}

// Register заменяет регистрацию пользователя новой. upgradeRequired
// выставляется, если версия приложения ниже минимальной поддерживаемой.
func (s *Service) Register(ctx context.Context, userID string, req models.DeviceRequest) (*Registration, error) {
	const op = "devices.Register"

	var lastErr error
	for range registerAttempts {
		if _, err := s.removeAll(ctx, userID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		d, err := s.devices.Create(ctx, userID, models.Device{
			DeviceToken: req.DeviceToken,
			Platform:    req.Platform,
			AppVersion:  req.AppVersion,
			OSVersion:   req.OSVersion,
		})
		if err == nil {
			s.log.Info("device registered",
				slog.String("user_id", userID),
				slog.String("device_token", notify.MaskToken(d.DeviceToken)),
			)
			return &Registration{Device: d, UpgradeRequired: UpgradeRequired(d.AppVersion, s.ios.MinAppVersion)}, nil
		}
		if !errors.Is(err, collection.ErrConflict) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%s: %w", op, lastErr)
}

// Unregister удаляет все регистрации пользователя и сообщает, было ли что удалять.
func (s *Service) Unregister(ctx context.Context, userID string) (bool, error) {
	const op = "devices.Unregister"
	n, err := s.removeAll(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return n > 0, nil
}

func (s *Service) removeAll(ctx context.Context, userID string) (int, error) {
	existing, err := s.devices.Select(ctx, userID, collection.Filter{Status: collection.StatusAll})
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, d := range existing {
		err := s.devices.Remove(ctx, userID, d.ID)
		if errors.Is(err, collection.ErrNotFound) {
			continue
		}
		if err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// Send ставит уведомление в очередь доставки на активное устройство
// получателя. Без userId получателем считается отправитель.
func (s *Service) Send(ctx context.Context, sender string, req models.NotificationRequest) (*models.Notification, error) {
	const op = "devices.Send"

	target := req.UserID
	if target == "" {
		target = sender
	}
	found, err := s.devices.Lookup(ctx, collection.Filter{
		Predicates: []collection.Predicate{collection.Eq("userId", target)},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoDevice)
	}

	data := req.Data
	if data == nil {
		data = map[string]any{}
	}
	n := models.Notification{
		ID:          uuid.NewString(),
		UserID:      target,
		DeviceToken: found[0].DeviceToken,
		Title:       req.Title,
		Message:     req.Message,
		Data:        data,
		SentAt:      s.devices.Now(),
		Status:      "sent",
	}
	s.dispatcher.Dispatch(n)
	return &n, nil
}

// Health состояние сервиса для iOS-клиента.
type Health struct {
	Status            string            `json:"status"`
	Timestamp         time.Time         `json:"timestamp"`
	Version           string            `json:"version"`
	Platform          string            `json:"platform"`
	Services          map[string]string `json:"services"`
	RegisteredDevices int               `json:"registeredDevices"`
}

// Health считает активные регистрации. Ошибка хранилища не скрывается:
// обработчик отвечает unhealthy.
func (s *Service) Health(ctx context.Context) (*Health, error) {
	const op = "devices.Health"
	active, err := s.devices.Lookup(ctx, collection.Filter{})
	if err != nil {
		s.log.Error("failed to count devices", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	observability.SetRegisteredDevices(len(active))
	return &Health{
		Status:    "healthy",
		Timestamp: s.devices.Now(),
		Version:   APIVersion,
		Platform:  Platform,
		Services: map[string]string{
			"authentication":    "operational",
			"database":          "operational",
			"pushNotifications": "operational",
			"fileUpload":        "operational",
		},
		RegisteredDevices: len(active),
	}, nil
}

// UpgradeRequired сообщает, что версия приложения ниже минимальной.
// Нераспознанная версия обновления не требует.
func UpgradeRequired(appVersion, minVersion string) bool {
	v, minV := canonical(appVersion), canonical(minVersion)
	if !semver.IsValid(v) || !semver.IsValid(minV) {
		return false
	}
	return semver.Compare(v, minV) < 0
}

func canonical(version string) string {
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	return version
}
