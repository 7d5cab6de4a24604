package devices

import (
	"context"
	"fmt"
	"time"

	"github.com/cobusiness02/forgefyt/internal/collection"
	"github.com/cobusiness02/forgefyt/internal/models"
)

// NextSyncAfter интервал до следующей синхронизации.
const NextSyncAfter = 5 * time.Minute

// ClientReader источник клиентов для синхронизации.
type ClientReader interface {
	Select(ctx context.Context, owner string, f collection.Filter) ([]models.Client, error)
}

// WorkoutReader источник тренировок для синхронизации.
type WorkoutReader interface {
	Select(ctx context.Context, owner string, f collection.Filter) ([]models.Workout, error)
}

// UserReader источник учётной записи пользователя.
type UserReader interface {
	Get(ctx context.Context, owner, id string) (*models.User, error)
}

// SyncSources коллекции, изменения которых выгружаются клиенту.
type SyncSources struct {
	Clients  ClientReader
	Workouts WorkoutReader
	Users    UserReader
}

// Changes изменённые и удалённые записи одной коллекции.
type Changes[T any] struct {
	Updated []T      `json:"updated"`
	Deleted []string `json:"deleted"`
}

// ProfileChanges изменение учётной записи, nil если её не меняли.
type ProfileChanges struct {
	Updated *models.UserView `json:"updated"`
}

// SyncData изменения с момента прошлой синхронизации.
type SyncData struct {
	Timestamp time.Time               `json:"timestamp"`
	Clients   Changes[models.Client]  `json:"clients"`
	Workouts  Changes[models.Workout] `json:"workouts"`
	Profile   ProfileChanges          `json:"profile"`
	NextSync  time.Time               `json:"-"`
}

// Sync выгружает записи, изменённые после since. Деактивированные
// клиенты и отменённые тренировки попадают в deleted.
func (s *Service) Sync(ctx context.Context, userID string, since time.Time) (*SyncData, error) {
	const op = "devices.Sync"

	now := s.devices.Now()
	all := collection.Filter{Status: collection.StatusAll}
	out := &SyncData{
		Timestamp: now,
		Clients:   Changes[models.Client]{Updated: []models.Client{}, Deleted: []string{}},
		Workouts:  Changes[models.Workout]{Updated: []models.Workout{}, Deleted: []string{}},
		NextSync:  now.Add(NextSyncAfter),
	}

	if s.sync.Clients != nil {
		cs, err := s.sync.Clients.Select(ctx, userID, all)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		for _, c := range cs {
			if !c.UpdatedAt.After(since) {
				continue
			}
			if c.Status == models.ClientInactive {
				out.Clients.Deleted = append(out.Clients.Deleted, c.ID)
				continue
			}
			out.Clients.Updated = append(out.Clients.Updated, c)
		}
	}

	if s.sync.Workouts != nil {
		ws, err := s.sync.Workouts.Select(ctx, userID, all)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		for _, w := range ws {
			if !w.UpdatedAt.After(since) {
				continue
			}
			if w.Status == models.WorkoutCancelled {
				out.Workouts.Deleted = append(out.Workouts.Deleted, w.ID)
				continue
			}
			out.Workouts.Updated = append(out.Workouts.Updated, w)
		}
	}

	if s.sync.Users != nil {
		u, err := s.sync.Users.Get(ctx, userID, userID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if u.UpdatedAt.After(since) {
			view := u.View()
			out.Profile.Updated = &view
		}
	}

	return out, nil
}
