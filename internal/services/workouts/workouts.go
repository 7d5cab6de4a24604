// Package workouts содержит бизнес-логику тренировок: планирование
// с проверкой занятости слота, частичное обновление, отмену,
// календарь месяца и каталог шаблонов.
package workouts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cobusiness02/forgefyt/internal/collection"
	"github.com/cobusiness02/forgefyt/internal/models"
)

// ErrSlotTaken на это время у тренера уже есть тренировка.
var ErrSlotTaken = errors.New("workout slot already taken")

// UnknownClient имя клиента, если его не удалось определить.
const UnknownClient = "Unknown Client"

// Collection коллекция тренировок.
type Collection = collection.Collection[models.Workout, *models.Workout]

// ClientReader источник имён клиентов.
type ClientReader interface {
	Get(ctx context.Context, owner, id string) (*models.Client, error)
}

// Schema описание тренировки для движка коллекций. Список упорядочен
// по дате и времени начала.
func Schema() collection.Schema[models.Workout] {
	return collection.Schema[models.Workout]{
		Name: "workouts",
		Fields: map[string]func(*models.Workout) []string{
			"date":     func(w *models.Workout) []string { return []string{w.Date} },
			"month":    func(w *models.Workout) []string { return []string{monthOf(w.Date)} },
			"clientId": func(w *models.Workout) []string { return []string{w.ClientID} },
			"type":     func(w *models.Workout) []string { return []string{string(w.Type)} },
		},
		Status:     func(w *models.Workout) string { return string(w.Status) },
		Terminal:   string(models.WorkoutCancelled),
		SoftDelete: func(w *models.Workout) { w.Status = models.WorkoutCancelled },
		Less:       func(a, b *models.Workout) bool { return a.Slot() < b.Slot() },
		Constraints: []collection.Constraint[models.Workout]{{
			Name:  "slot",
			Scope: collection.Owner,
			Key: func(w *models.Workout) (string, bool) {
				return w.Slot(), w.Status != models.WorkoutCancelled
			},
			Err: ErrSlotTaken,
		}},
		Defaults: func(w *models.Workout, _ time.Time) {
			w.Status = models.WorkoutScheduled
			w.CompletedAt = nil
			w.Rating = nil
			w.Feedback = nil
			if w.Exercises == nil {
				w.Exercises = []models.Exercise{}
			}
		},
		OnUpdate: func(before, after *models.Workout, now time.Time) {
			if after.Status == models.WorkoutCompleted && before.Status != models.WorkoutCompleted && after.CompletedAt == nil {
				at := now
				after.CompletedAt = &at
			}
		},
	}
}

func monthOf(date string) string {
	if len(date) < 7 {
		return ""
	}
	return date[:7]
}

// NormalizeClock приводит время вида 9:05 к 09:05, чтобы слоты
// сравнивались и сортировались как строки.
func NormalizeClock(clock string) string {
	if len(clock) == 4 && clock[1] == ':' {
		return "0" + clock
	}
	return clock
}

// ListParams параметры выборки тренировок.
type ListParams struct {
	Date     string `query:"date" validate:"omitempty,datetime=2006-01-02"`
	ClientID string `query:"clientId"`
	Type     string `query:"type" validate:"omitempty,oneof=strength cardio flexibility sports rehabilitation"`
	Status   string `query:"status" validate:"omitempty,oneof=scheduled completed cancelled missed all"`
	Page     *int   `query:"page" validate:"omitempty,min=1"`
	Limit    *int   `query:"limit" validate:"omitempty,min=1,max=100"`
}

// Service сервис тренировок.
type Service struct {
	log      *slog.Logger
	workouts *Collection
	clients  ClientReader
}

// New создаёт сервис тренировок.
func New(log *slog.Logger, workouts *Collection, clients ClientReader) *Service {
	return &Service{log: log, workouts: workouts, clients: clients}
}

// List возвращает страницу тренировок тренера по фильтрам. Без статуса
// отменённые тренировки не выбираются.
func (s *Service) List(ctx context.Context, owner string, p ListParams) (collection.Page[models.Workout], error) {
	const op = "workouts.List"

	q := collection.Query{Filter: collection.Filter{Status: p.Status}}
	if p.Date != "" {
		q.Predicates = append(q.Predicates, collection.Eq("date", p.Date))
	}
	if p.ClientID != "" {
		q.Predicates = append(q.Predicates, collection.Eq("clientId", p.ClientID))
	}
	if p.Type != "" {
		q.Predicates = append(q.Predicates, collection.Eq("type", p.Type))
	}
	if p.Page != nil {
		q.Page = *p.Page
	}
	if p.Limit != nil {
		q.Limit = *p.Limit
	}

	page, err := s.workouts.List(ctx, owner, q)
	if err != nil {
		return page, fmt.Errorf("%s: %w", op, err)
	}
	return page, nil
}

// Get возвращает тренировку тренера.
func (s *Service) Get(ctx context.Context, owner, id string) (*models.Workout, error) {
	const op = "workouts.Get"
	w, err := s.workouts.Get(ctx, owner, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return w, nil
}

// Create планирует тренировку. Имя клиента берётся из запроса,
// затем из карточки клиента, иначе UnknownClient.
func (s *Service) Create(ctx context.Context, owner string, req models.WorkoutRequest) (*models.Workout, error) {
	const op = "workouts.Create"

	w := req.Workout()
	w.Time = NormalizeClock(w.Time)
	if w.ClientName == "" {
		w.ClientName = s.clientName(ctx, owner, w.ClientID)
	}

	created, err := s.workouts.Create(ctx, owner, w)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("workout scheduled",
		slog.String("workout_id", created.ID),
		slog.String("slot", created.Slot()),
	)
	return created, nil
}

// Update применяет патч к тренировке. При переходе в completed
// фиксируется время завершения.
func (s *Service) Update(ctx context.Context, owner, id string, patch models.WorkoutPatch) (*models.Workout, error) {
	const op = "workouts.Update"
	if patch.Time != nil {
		t := NormalizeClock(*patch.Time)
		patch.Time = &t
	}
	w, err := s.workouts.Update(ctx, owner, id, patch)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return w, nil
}

// Cancel переводит тренировку в статус cancelled.
func (s *Service) Cancel(ctx context.Context, owner, id string) (*models.Workout, error) {
	const op = "workouts.Cancel"
	w, err := s.workouts.SoftDelete(ctx, owner, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return w, nil
}

func (s *Service) clientName(ctx context.Context, owner, clientID string) string {
	if s.clients == nil {
		return UnknownClient
	}
	c, err := s.clients.Get(ctx, owner, clientID)
	if err != nil {
		return UnknownClient
	}
	return c.Name
}
