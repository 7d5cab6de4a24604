package fitcoach

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cobusiness02/forgefyt/internal/collection"
	"github.com/cobusiness02/forgefyt/internal/config"
	"github.com/cobusiness02/forgefyt/internal/lib/jwt"
	"github.com/cobusiness02/forgefyt/internal/models"
	authservice "github.com/cobusiness02/forgefyt/internal/services/auth"
	clientservice "github.com/cobusiness02/forgefyt/internal/services/clients"
	coachservice "github.com/cobusiness02/forgefyt/internal/services/coaches"
	deviceservice "github.com/cobusiness02/forgefyt/internal/services/devices"
	workoutservice "github.com/cobusiness02/forgefyt/internal/services/workouts"
	"github.com/cobusiness02/forgefyt/internal/storage"
)

// Stores хранилища всех коллекций.
type Stores struct {
	Users    collection.Store[models.User]
	Clients  collection.Store[models.Client]
	Coaches  collection.Store[models.Coach]
	Workouts collection.Store[models.Workout]
	Devices  collection.Store[models.Device]
}

// MemoryStores хранилища в памяти процесса.
func MemoryStores() Stores {
	return Stores{
		Users:    collection.NewMemoryStore[models.User, *models.User](),
		Clients:  collection.NewMemoryStore[models.Client, *models.Client](),
		Coaches:  collection.NewMemoryStore[models.Coach, *models.Coach](),
		Workouts: collection.NewMemoryStore[models.Workout, *models.Workout](),
		Devices:  collection.NewMemoryStore[models.Device, *models.Device](),
	}
}

// PostgresStores хранилища документов в PostgreSQL. Имя коллекции
// в таблице совпадает с именем схемы.
func PostgresStores(db *storage.Storage) Stores {
	return Stores{
		Users:    storage.NewDocuments[models.User, *models.User](db, authservice.Schema().Name),
		Clients:  storage.NewDocuments[models.Client, *models.Client](db, clientservice.Schema().Name),
		Coaches:  storage.NewDocuments[models.Coach, *models.Coach](db, coachservice.Schema().Name),
		Workouts: storage.NewDocuments[models.Workout, *models.Workout](db, workoutservice.Schema().Name),
		Devices:  storage.NewDocuments[models.Device, *models.Device](db, deviceservice.Schema().Name),
	}
}

// Services сервисы всех групп маршрутов.
type Services struct {
	Auth     *authservice.Service
	Clients  *clientservice.Service
	Coaches  *coachservice.Service
	Workouts *workoutservice.Service
	Devices  *deviceservice.Service
	Tokens   jwt.Maker
}

// NewServices собирает коллекции поверх stores и сервисы поверх коллекций.
// opts общие для всех коллекций.
func NewServices(log *slog.Logger, stores Stores, opts collection.Options, tokens jwt.Maker, dispatcher deviceservice.Dispatcher, ios config.IOS) *Services {
	users := collection.New[models.User, *models.User](authservice.Schema(), stores.Users, opts)
	clients := collection.New[models.Client, *models.Client](clientservice.Schema(), stores.Clients, opts)
	coaches := collection.New[models.Coach, *models.Coach](coachservice.Schema(), stores.Coaches, opts)
	workouts := collection.New[models.Workout, *models.Workout](workoutservice.Schema(), stores.Workouts, opts)
	devices := collection.New[models.Device, *models.Device](deviceservice.Schema(), stores.Devices, opts)

	coachService := coachservice.New(log, coaches, clients, workouts)
	return &Services{
		Auth:     authservice.New(log, users, tokens, coachService),
		Clients:  clientservice.New(log, clients, workouts),
		Coaches:  coachService,
		Workouts: workoutservice.New(log, workouts, clients),
		Devices: deviceservice.New(log, devices, dispatcher, ios, deviceservice.SyncSources{
			Clients:  clients,
			Workouts: workouts,
			Users:    users,
		}),
		Tokens: tokens,
	}
}

// Seed записывает стартовые данные. Повторный запуск перезаписывает
// записи с теми же id.
func (s *Services) Seed(ctx context.Context) error {
	const op = "fitcoach.Seed"
	seeds := []func(context.Context) error{
		s.Auth.Seed,
		s.Coaches.Seed,
		s.Clients.Seed,
		s.Workouts.Seed,
	}
	for _, seed := range seeds {
		if err := seed(ctx); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return nil
}
