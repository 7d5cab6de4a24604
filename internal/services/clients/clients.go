// Package clients содержит бизнес-логику работы с клиентами тренера:
// выборку с поиском, создание, частичное обновление, деактивацию
// и расчёт прогресса по проведённым тренировкам.
package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/cobusiness02/forgefyt/internal/collection"
	"github.com/cobusiness02/forgefyt/internal/lib/period"
	"github.com/cobusiness02/forgefyt/internal/models"
)

// ErrEmailTaken адрес уже занят другим клиентом.
var ErrEmailTaken = errors.New("client email already exists")

// Collection коллекция клиентов.
type Collection = collection.Collection[models.Client, *models.Client]

// WorkoutReader источник тренировок для расчёта прогресса.
type WorkoutReader interface {
	Select(ctx context.Context, owner string, f collection.Filter) ([]models.Workout, error)
}

// Schema описание клиента для движка коллекций.
func Schema() collection.Schema[models.Client] {
	return collection.Schema[models.Client]{
		Name: "clients",
		Fields: map[string]func(*models.Client) []string{
			"name":   func(c *models.Client) []string { return []string{c.Name} },
			"email":  func(c *models.Client) []string { return []string{c.Email} },
			"goals":  func(c *models.Client) []string { return c.Goals },
			"status": func(c *models.Client) []string { return []string{string(c.Status)} },
		},
		Status:     func(c *models.Client) string { return string(c.Status) },
		Terminal:   string(models.ClientInactive),
		SoftDelete: func(c *models.Client) { c.Status = models.ClientInactive },
		Constraints: []collection.Constraint[models.Client]{{
			Name:  "email",
			Scope: collection.Global,
			Key:   func(c *models.Client) (string, bool) { return c.Email, c.Email != "" },
			Err:   ErrEmailTaken,
		}},
		Defaults: func(c *models.Client, now time.Time) {
			c.Status = models.ClientActive
			c.JoinDate = now
			if c.FitnessLevel == "" {
				c.FitnessLevel = models.FitnessBeginner
			}
			if c.Preferences == nil {
				c.Preferences = models.DefaultPreferences()
			}
			if c.Goals == nil {
				c.Goals = []string{}
			}
			c.Progress = models.ClientProgress{}
		},
	}
}

// ListParams параметры выборки клиентов.
type ListParams struct {
	Status string `query:"status" validate:"omitempty,oneof=active inactive all"`
	Search string `query:"search"`
	Page   *int   `query:"page" validate:"omitempty,min=1"`
	Limit  *int   `query:"limit" validate:"omitempty,min=1,max=100"`
}

// ProgressSummary показатели клиента за период.
type ProgressSummary struct {
	SessionsCompleted int     `json:"sessionsCompleted"`
	TotalHours        float64 `json:"totalHours"`
	AverageRating     float64 `json:"averageRating"`
}

// Session проведённая тренировка в отчёте о прогрессе.
type Session struct {
	Date     time.Time `json:"date"`
	Type     string    `json:"type"`
	Title    string    `json:"title"`
	Duration int       `json:"duration"`
	Rating   *int      `json:"rating"`
	Notes    string    `json:"notes"`
}

// ClientCard краткие сведения о клиенте.
type ClientCard struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Goals []string `json:"goals"`
}

// Progress отчёт о прогрессе клиента.
type Progress struct {
	Period         period.Period       `json:"-"`
	Client         ClientCard          `json:"client"`
	Progress       ProgressSummary     `json:"progress"`
	Measurements   models.Measurements `json:"measurements"`
	RecentSessions []Session           `json:"recentSessions"`
}

// Service сервис клиентов.
type Service struct {
	log      *slog.Logger
	clients  *Collection
	workouts WorkoutReader
}

// New создаёт сервис клиентов.
func New(log *slog.Logger, clients *Collection, workouts WorkoutReader) *Service {
	return &Service{log: log, clients: clients, workouts: workouts}
}

// List возвращает страницу клиентов тренера. Статус all выбирает
// и деактивированных клиентов, без статуса выбираются только активные.
func (s *Service) List(ctx context.Context, owner string, p ListParams) (collection.Page[models.Client], error) {
	const op = "clients.List"

	q := collection.Query{Filter: collection.Filter{Status: p.Status}}
	if p.Search != "" {
		q.Predicates = append(q.Predicates, collection.Search(p.Search, "name", "email", "goals"))
	}
	if p.Page != nil {
		q.Page = *p.Page
	}
	if p.Limit != nil {
		q.Limit = *p.Limit
	}

	page, err := s.clients.List(ctx, owner, q)
	if err != nil {
		return page, fmt.Errorf("%s: %w", op, err)
	}
	return page, nil
}

// Get возвращает клиента тренера, в том числе деактивированного.
func (s *Service) Get(ctx context.Context, owner, id string) (*models.Client, error) {
	const op = "clients.Get"
	c, err := s.clients.Get(ctx, owner, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// Create добавляет клиента.
func (s *Service) Create(ctx context.Context, owner string, req models.ClientRequest) (*models.Client, error) {
	const op = "clients.Create"
	c, err := s.clients.Create(ctx, owner, req.Client())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("client created", slog.String("client_id", c.ID), slog.String("coach_id", owner))
	return c, nil
}

// Update применяет патч к клиенту.
func (s *Service) Update(ctx context.Context, owner, id string, patch models.ClientPatch) (*models.Client, error) {
	const op = "clients.Update"
	c, err := s.clients.Update(ctx, owner, id, patch)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// Deactivate переводит клиента в статус inactive.
func (s *Service) Deactivate(ctx context.Context, owner, id string) (*models.Client, error) {
	const op = "clients.Deactivate"
	c, err := s.clients.SoftDelete(ctx, owner, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// Progress считает показатели клиента за период по завершённым
// тренировкам и возвращает две последние проведённые сессии.
func (s *Service) Progress(ctx context.Context, owner, id string, p period.Period) (*Progress, error) {
	const op = "clients.Progress"

	c, err := s.clients.Get(ctx, owner, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	done, err := s.workouts.Select(ctx, owner, collection.Filter{
		Status:     string(models.WorkoutCompleted),
		Predicates: []collection.Predicate{collection.Eq("clientId", c.ID)},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.clients.Now()
	var (
		summary      ProgressSummary
		minutes      int
		ratingSum    int
		ratingsCount int
		sessions     []Session
	)
	for i := range done {
		w := &done[i]
		at := SessionAt(w)
		sessions = append(sessions, Session{
			Date:     at,
			Type:     string(w.Type),
			Title:    w.Title,
			Duration: w.Duration,
			Rating:   w.Rating,
			Notes:    w.Notes,
		})
		if !p.Contains(now, at) {
			continue
		}
		summary.SessionsCompleted++
		minutes += w.Duration
		if w.Rating != nil {
			ratingSum += *w.Rating
			ratingsCount++
		}
	}
	summary.TotalHours = Round1(float64(minutes) / 60)
	if ratingsCount > 0 {
		summary.AverageRating = Round1(float64(ratingSum) / float64(ratingsCount))
	}

	sort.SliceStable(sessions, func(i, j int) bool { return sessions[i].Date.After(sessions[j].Date) })
	if len(sessions) > 2 {
		sessions = sessions[:2]
	}
	if sessions == nil {
		sessions = []Session{}
	}

	return &Progress{
		Period:         p,
		Client:         ClientCard{ID: c.ID, Name: c.Name, Goals: c.Goals},
		Progress:       summary,
		Measurements:   c.Measurements,
		RecentSessions: sessions,
	}, nil
}

// SessionAt момент тренировки: время завершения, если оно есть,
// иначе запланированные дата и время.
func SessionAt(w *models.Workout) time.Time {
	if w.CompletedAt != nil {
		return *w.CompletedAt
	}
	at, err := period.SessionTime(w.Date, w.Time)
	if err != nil {
		return w.CreatedAt
	}
	return at
}

// Round1 округляет до одного знака после запятой.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
