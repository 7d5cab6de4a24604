// Package coaches содержит бизнес-логику профиля тренера: профиль
// и расписание, панель показателей, статистику за период и обзор клиентов.
package coaches

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cobusiness02/forgefyt/internal/collection"
	"github.com/cobusiness02/forgefyt/internal/models"
)

var (
	// ErrProfileExists у пользователя уже есть профиль тренера.
	ErrProfileExists = errors.New("coach profile already exists")
	// ErrInvalidSchedule ключи расписания не дни недели или у дня не хватает полей.
	ErrInvalidSchedule = errors.New("invalid schedule format")
)

// DefaultSessionRate стоимость одной тренировки нового тренера.
const DefaultSessionRate = 70

// Collection коллекция профилей тренеров.
type Collection = collection.Collection[models.Coach, *models.Coach]

// ClientReader источник клиентов тренера.
type ClientReader interface {
	Select(ctx context.Context, owner string, f collection.Filter) ([]models.Client, error)
}

// WorkoutReader источник тренировок тренера.
type WorkoutReader interface {
	Select(ctx context.Context, owner string, f collection.Filter) ([]models.Workout, error)
}

// Schema описание профиля тренера. На одного владельца один профиль.
func Schema() collection.Schema[models.Coach] {
	return collection.Schema[models.Coach]{
		Name:       "coaches",
		Status:     func(c *models.Coach) string { return string(c.Status) },
		Terminal:   string(models.CoachInactive),
		SoftDelete: func(c *models.Coach) { c.Status = models.CoachInactive },
		Constraints: []collection.Constraint[models.Coach]{{
			Name:  "owner",
			Scope: collection.Global,
			Key:   func(c *models.Coach) (string, bool) { return c.OwnerID, true },
			Err:   ErrProfileExists,
		}},
		Defaults: func(c *models.Coach, _ time.Time) {
			c.Status = models.CoachActive
			if c.Schedule == nil {
				c.Schedule = models.DefaultSchedule()
			}
			if c.SessionRate == 0 {
				c.SessionRate = DefaultSessionRate
			}
			if c.Certifications == nil {
				c.Certifications = []string{}
			}
		},
	}
}

// Service сервис профиля тренера.
type Service struct {
	log      *slog.Logger
	coaches  *Collection
	clients  ClientReader
	workouts WorkoutReader
}

// New создаёт сервис тренеров.
func New(log *slog.Logger, coaches *Collection, clients ClientReader, workouts WorkoutReader) *Service {
	return &Service{log: log, coaches: coaches, clients: clients, workouts: workouts}
}

// Profile возвращает профиль тренера владельца.
func (s *Service) Profile(ctx context.Context, owner string) (*models.Coach, error) {
	const op = "coaches.Profile"
	items, err := s.coaches.Select(ctx, owner, collection.Filter{Status: collection.StatusAll})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%s: %w", op, collection.ErrNotFound)
	}
	return &items[0], nil
}

// UpdateProfile применяет патч к профилю тренера.
func (s *Service) UpdateProfile(ctx context.Context, owner string, patch models.CoachPatch) (*models.Coach, error) {
	const op = "coaches.UpdateProfile"
	c, err := s.Profile(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	updated, err := s.coaches.Update(ctx, owner, c.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// Schedule возвращает недельное расписание тренера.
func (s *Service) Schedule(ctx context.Context, owner string) (models.Schedule, error) {
	const op = "coaches.Schedule"
	c, err := s.Profile(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c.Schedule, nil
}

// UpdateSchedule заменяет расписание целиком.
func (s *Service) UpdateSchedule(ctx context.Context, owner string, schedule models.Schedule) (models.Schedule, error) {
	const op = "coaches.UpdateSchedule"
	schedule = schedule.Lower()
	if schedule == nil || !schedule.Valid() {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidSchedule)
	}
	c, err := s.Profile(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	updated, err := s.coaches.Update(ctx, owner, c.ID, models.SchedulePatch{Schedule: schedule})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated.Schedule, nil
}

// Provision создаёт профиль тренера для нового пользователя с ролью coach.
// Специализация, опыт и сертификаты берутся из профиля пользователя.
func (s *Service) Provision(ctx context.Context, user models.User) error {
	const op = "coaches.Provision"
	if user.Role != models.RoleCoach {
		return nil
	}
	c := models.Coach{
		Name:           user.Name,
		Email:          user.Email,
		Specialization: stringField(user.Profile, "specialization"),
		Experience:     stringField(user.Profile, "experience"),
		Certifications: stringsField(user.Profile, "certifications"),
		Avatar:         user.Avatar,
	}
	created, err := s.coaches.Create(ctx, user.ID, c)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("coach profile provisioned", slog.String("coach_id", created.ID), slog.String("user_id", user.ID))
	return nil
}

func stringField(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return v
}

func stringsField(m map[string]any, key string) []string {
	switch v := m[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
