package models

import (
	"slices"
	"strings"
	"time"
)

// ClientStatus статус клиента. inactive является терминальным.
type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
)

var clientStatuses = []ClientStatus{ClientActive, ClientInactive}

// Valid сообщает, входит ли значение в перечисление.
func (s ClientStatus) Valid() bool {
	return slices.Contains(clientStatuses, s)
}

// UnmarshalJSON отклоняет статусы вне перечисления.
func (s *ClientStatus) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s, clientStatuses)
}

// FitnessLevel уровень подготовки клиента.
type FitnessLevel string

const (
	FitnessBeginner     FitnessLevel = "beginner"
	FitnessIntermediate FitnessLevel = "intermediate"
	FitnessAdvanced     FitnessLevel = "advanced"
)

// UnmarshalJSON отклоняет уровни вне перечисления.
func (l *FitnessLevel) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, l, []FitnessLevel{FitnessBeginner, FitnessIntermediate, FitnessAdvanced})
}

// EmergencyContact контакт для экстренной связи.
type EmergencyContact struct {
	Name         string `json:"name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Relationship string `json:"relationship,omitempty"`
}

// Measurements антропометрия клиента: рост в см, вес в кг, процент жира.
type Measurements struct {
	Height      float64    `json:"height,omitempty"`
	Weight      float64    `json:"weight,omitempty"`
	BodyFat     float64    `json:"bodyFat,omitempty"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
}

// Preferences предпочтения клиента по тренировкам.
type Preferences struct {
	WorkoutTime     string   `json:"workoutTime"`
	WorkoutDuration int      `json:"workoutDuration"`
	Intensity       string   `json:"intensity"`
	WorkoutTypes    []string `json:"workoutTypes"`
}

// DefaultPreferences предпочтения нового клиента, если они не переданы.
func DefaultPreferences() *Preferences {
	return &Preferences{
		WorkoutTime:     "morning",
		WorkoutDuration: 60,
		Intensity:       "moderate",
		WorkoutTypes:    []string{"cardio"},
	}
}

// ClientProgress накопленные счётчики прогресса.
type ClientProgress struct {
	SessionsCompleted int        `json:"sessionsCompleted"`
	TotalHours        float64    `json:"totalHours"`
	AverageRating     float64    `json:"averageRating"`
	LastSession       *time.Time `json:"lastSession"`
}

// Client клиент тренера.
type Client struct {
	Base
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	DateOfBirth      *string          `json:"dateOfBirth"`
	Avatar           *string          `json:"avatar"`
	Status           ClientStatus     `json:"status"`
	JoinDate         time.Time        `json:"joinDate"`
	Goals            []string         `json:"goals"`
	FitnessLevel     FitnessLevel     `json:"fitnessLevel"`
	MedicalNotes     string           `json:"medicalNotes"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
	Measurements     Measurements     `json:"measurements"`
	Preferences      *Preferences     `json:"preferences"`
	Progress         ClientProgress   `json:"progress"`
}

// ClientRequest тело запроса на создание клиента.
type ClientRequest struct {
	Name             string            `json:"name" validate:"required,min=2"`
	Email            string            `json:"email" validate:"required,email"`
	Phone            string            `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	DateOfBirth      *string           `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Goals            []string          `json:"goals,omitempty"`
	FitnessLevel     FitnessLevel      `json:"fitnessLevel,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	MedicalNotes     string            `json:"medicalNotes,omitempty" validate:"max=1000"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
	Measurements     *Measurements     `json:"measurements,omitempty"`
	Preferences      *Preferences      `json:"preferences,omitempty"`
}

// Client переносит поля запроса в новую сущность. Служебные поля
// и значения по умолчанию выставляет сервис.
func (r ClientRequest) Client() Client {
	c := Client{
		Name:         r.Name,
		Email:        NormalizeEmail(r.Email),
		Phone:        r.Phone,
		DateOfBirth:  r.DateOfBirth,
		Goals:        r.Goals,
		FitnessLevel: r.FitnessLevel,
		MedicalNotes: r.MedicalNotes,
		Preferences:  r.Preferences,
	}
	if r.EmergencyContact != nil {
		c.EmergencyContact = *r.EmergencyContact
	}
	if r.Measurements != nil {
		c.Measurements = *r.Measurements
	}
	return c
}

// ClientPatch частичное обновление клиента. Набор полей закрыт:
// всё, чего здесь нет, обновить нельзя.
type ClientPatch struct {
	Name             *string           `json:"name,omitempty" validate:"omitempty,min=2"`
	Email            *string           `json:"email,omitempty" validate:"omitempty,email"`
	Phone            *string           `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	DateOfBirth      *string           `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Goals            []string          `json:"goals,omitempty"`
	FitnessLevel     *FitnessLevel     `json:"fitnessLevel,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	MedicalNotes     *string           `json:"medicalNotes,omitempty" validate:"omitempty,max=1000"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
	Measurements     *Measurements     `json:"measurements,omitempty"`
	Preferences      *Preferences      `json:"preferences,omitempty"`
}

// Apply применяет заданные поля патча к клиенту.
func (p ClientPatch) Apply(c *Client) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = NormalizeEmail(*p.Email)
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.DateOfBirth != nil {
		c.DateOfBirth = p.DateOfBirth
	}
	if p.Goals != nil {
		c.Goals = p.Goals
	}
	if p.FitnessLevel != nil {
		c.FitnessLevel = *p.FitnessLevel
	}
	if p.MedicalNotes != nil {
		c.MedicalNotes = *p.MedicalNotes
	}
	if p.EmergencyContact != nil {
		c.EmergencyContact = *p.EmergencyContact
	}
	if p.Measurements != nil {
		c.Measurements = *p.Measurements
	}
	if p.Preferences != nil {
		c.Preferences = p.Preferences
	}
}

// NormalizeEmail приводит адрес к каноническому виду перед сравнением.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
