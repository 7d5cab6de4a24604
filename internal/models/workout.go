package models

import (
	"slices"
	"time"
)

// WorkoutType вид тренировки.
type WorkoutType string

const (
	WorkoutStrength       WorkoutType = "strength"
	WorkoutCardio         WorkoutType = "cardio"
	WorkoutFlexibility    WorkoutType = "flexibility"
	WorkoutSports         WorkoutType = "sports"
	WorkoutRehabilitation WorkoutType = "rehabilitation"
)

// WorkoutTypes все виды тренировок в порядке отображения.
var WorkoutTypes = []WorkoutType{WorkoutStrength, WorkoutCardio, WorkoutFlexibility, WorkoutSports, WorkoutRehabilitation}

// UnmarshalJSON отклоняет виды вне перечисления.
func (t *WorkoutType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, t, WorkoutTypes)
}

// WorkoutStatus статус тренировки. cancelled является терминальным,
// completed фиксирует время завершения.
type WorkoutStatus string

const (
	WorkoutScheduled WorkoutStatus = "scheduled"
	WorkoutCompleted WorkoutStatus = "completed"
	WorkoutCancelled WorkoutStatus = "cancelled"
	WorkoutMissed    WorkoutStatus = "missed"
)

// WorkoutStatuses все статусы тренировки.
var WorkoutStatuses = []WorkoutStatus{WorkoutScheduled, WorkoutCompleted, WorkoutCancelled, WorkoutMissed}

// Valid сообщает, входит ли значение в перечисление.
func (s WorkoutStatus) Valid() bool {
	return slices.Contains(WorkoutStatuses, s)
}

// UnmarshalJSON отклоняет статусы вне перечисления.
func (s *WorkoutStatus) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s, WorkoutStatuses)
}

// Exercise упражнение внутри тренировки. Силовые упражнения заполняют
// подходы и повторы, кардио и растяжка заполняют длительность.
type Exercise struct {
	Name      string  `json:"name" validate:"required"`
	Sets      int     `json:"sets,omitempty" validate:"gte=0"`
	Reps      int     `json:"reps,omitempty" validate:"gte=0"`
	Weight    float64 `json:"weight,omitempty" validate:"gte=0"`
	RestTime  int     `json:"restTime,omitempty" validate:"gte=0"`
	Duration  int     `json:"duration,omitempty" validate:"gte=0"`
	Intensity string  `json:"intensity,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

// Workout запланированная или проведённая тренировка.
type Workout struct {
	Base
	ClientID    string        `json:"clientId"`
	ClientName  string        `json:"clientName"`
	Title       string        `json:"title"`
	Type        WorkoutType   `json:"type"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Duration    int           `json:"duration"`
	Status      WorkoutStatus `json:"status"`
	Location    string        `json:"location"`
	Exercises   []Exercise    `json:"exercises"`
	Notes       string        `json:"notes"`
	CompletedAt *time.Time    `json:"completedAt"`
	Rating      *int          `json:"rating"`
	Feedback    *string       `json:"feedback"`
}

// Slot ключ слота расписания: дата и время начала.
func (w *Workout) Slot() string {
	return w.Date + "T" + w.Time
}

// WorkoutRequest тело запроса на создание тренировки.
type WorkoutRequest struct {
	ClientID   string      `json:"clientId" validate:"required"`
	ClientName string      `json:"clientName,omitempty"`
	Title      string      `json:"title" validate:"required,min=2"`
	Type       WorkoutType `json:"type" validate:"required,oneof=strength cardio flexibility sports rehabilitation"`
	Date       string      `json:"date" validate:"required,datetime=2006-01-02"`
	Time       string      `json:"time" validate:"required,clock"`
	Duration   int         `json:"duration" validate:"required,min=15,max=180"`
	Location   string      `json:"location,omitempty"`
	Exercises  []Exercise  `json:"exercises,omitempty" validate:"dive"`
	Notes      string      `json:"notes,omitempty"`
}

// Workout переносит поля запроса в новую сущность.
func (r WorkoutRequest) Workout() Workout {
	return Workout{
		ClientID:   r.ClientID,
		ClientName: r.ClientName,
		Title:      r.Title,
		Type:       r.Type,
		Date:       r.Date,
		Time:       r.Time,
		Duration:   r.Duration,
		Location:   r.Location,
		Exercises:  r.Exercises,
		Notes:      r.Notes,
	}
}

// WorkoutPatch частичное обновление тренировки с закрытым набором полей.
type WorkoutPatch struct {
	Title     *string        `json:"title,omitempty" validate:"omitempty,min=2"`
	Type      *WorkoutType   `json:"type,omitempty" validate:"omitempty,oneof=strength cardio flexibility sports rehabilitation"`
	Date      *string        `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time      *string        `json:"time,omitempty" validate:"omitempty,clock"`
	Duration  *int           `json:"duration,omitempty" validate:"omitempty,min=15,max=180"`
	Status    *WorkoutStatus `json:"status,omitempty" validate:"omitempty,oneof=scheduled completed cancelled missed"`
	Location  *string        `json:"location,omitempty"`
	Exercises []Exercise     `json:"exercises,omitempty" validate:"omitempty,dive"`
	Notes     *string        `json:"notes,omitempty"`
	Rating    *int           `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Feedback  *string        `json:"feedback,omitempty" validate:"omitempty,max=1000"`
}

// Apply применяет заданные поля патча к тренировке.
func (p WorkoutPatch) Apply(w *Workout) {
	if p.Title != nil {
		w.Title = *p.Title
	}
	if p.Type != nil {
		w.Type = *p.Type
	}
	if p.Date != nil {
		w.Date = *p.Date
	}
	if p.Time != nil {
		w.Time = *p.Time
	}
	if p.Duration != nil {
		w.Duration = *p.Duration
	}
	if p.Status != nil {
		w.Status = *p.Status
	}
	if p.Location != nil {
		w.Location = *p.Location
	}
	if p.Exercises != nil {
		w.Exercises = p.Exercises
	}
	if p.Notes != nil {
		w.Notes = *p.Notes
	}
	if p.Rating != nil {
		w.Rating = p.Rating
	}
	if p.Feedback != nil {
		w.Feedback = p.Feedback
	}
}

// Template шаблон тренировки из каталога.
type Template struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Type      WorkoutType `json:"type"`
	Duration  int         `json:"duration"`
	Exercises []Exercise  `json:"exercises"`
}
