package workouts

import (
	"context"
	"fmt"

	"github.com/cobusiness02/forgefyt/internal/collection"
	"github.com/cobusiness02/forgefyt/internal/models"
)

// CalendarParams месяц и год календаря. Нулевые значения означают текущие.
type CalendarParams struct {
	Month int `query:"month" validate:"omitempty,min=1,max=12"`
	Year  int `query:"year" validate:"omitempty,min=2020,max=2030"`
}

// CalendarEntry тренировка в ячейке календаря.
type CalendarEntry struct {
	ID         string               `json:"id"`
	Title      string               `json:"title"`
	ClientName string               `json:"clientName"`
	Time       string               `json:"time"`
	Duration   int                  `json:"duration"`
	Type       models.WorkoutType   `json:"type"`
	Status     models.WorkoutStatus `json:"status"`
}

// CalendarSummary итоги месяца.
type CalendarSummary struct {
	TotalWorkouts int                          `json:"totalWorkouts"`
	ByType        map[models.WorkoutType]int   `json:"byType"`
	ByStatus      map[models.WorkoutStatus]int `json:"byStatus"`
}

// Calendar тренировки месяца, сгруппированные по дате.
type Calendar struct {
	Month   int                        `json:"month"`
	Year    int                        `json:"year"`
	Days    map[string][]CalendarEntry `json:"data"`
	Summary CalendarSummary            `json:"summary"`
}

// Calendar собирает тренировки тренера за месяц, включая отменённые.
func (s *Service) Calendar(ctx context.Context, owner string, p CalendarParams) (*Calendar, error) {
	const op = "workouts.Calendar"

	now := s.workouts.Now()
	if p.Month == 0 {
		p.Month = int(now.Month())
	}
	if p.Year == 0 {
		p.Year = now.Year()
	}

	items, err := s.workouts.Select(ctx, owner, collection.Filter{
		Status:     collection.StatusAll,
		Predicates: []collection.Predicate{collection.Eq("month", fmt.Sprintf("%04d-%02d", p.Year, p.Month))},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cal := &Calendar{
		Month: p.Month,
		Year:  p.Year,
		Days:  make(map[string][]CalendarEntry),
		Summary: CalendarSummary{
			TotalWorkouts: len(items),
			ByType:        make(map[models.WorkoutType]int, len(models.WorkoutTypes)),
			ByStatus:      make(map[models.WorkoutStatus]int, len(models.WorkoutStatuses)),
		},
	}
	for _, t := range models.WorkoutTypes {
		cal.Summary.ByType[t] = 0
	}
	for _, st := range models.WorkoutStatuses {
		cal.Summary.ByStatus[st] = 0
	}
	for _, w := range items {
		cal.Days[w.Date] = append(cal.Days[w.Date], CalendarEntry{
			ID:         w.ID,
			Title:      w.Title,
			ClientName: w.ClientName,
			Time:       w.Time,
			Duration:   w.Duration,
			Type:       w.Type,
			Status:     w.Status,
		})
		cal.Summary.ByType[w.Type]++
		cal.Summary.ByStatus[w.Status]++
	}
	return cal, nil
}
