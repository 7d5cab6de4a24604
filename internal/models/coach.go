package models

import (
	"slices"
	"strings"
)

// Weekdays допустимые ключи недельного расписания.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// DaySchedule рабочие часы тренера в конкретный день недели.
type DaySchedule struct {
	Start     *string `json:"start"`
	End       *string `json:"end"`
	Available *bool   `json:"available"`
}

// Schedule недельное расписание, ключ день недели в нижнем регистре.
type Schedule map[string]DaySchedule

// CoachStatus признак активности профиля тренера.
type CoachStatus string

const (
	CoachActive   CoachStatus = "active"
	CoachInactive CoachStatus = "inactive"
)

// Coach профиль тренера. Владелец профиля пользователь с ролью coach.
type Coach struct {
	Base
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Specialization string      `json:"specialization"`
	Experience     string      `json:"experience"`
	Certifications []string    `json:"certifications"`
	Avatar         *string     `json:"avatar"`
	Bio            string      `json:"bio"`
	SessionRate    float64     `json:"sessionRate"`
	Schedule       Schedule    `json:"schedule"`
	Status         CoachStatus `json:"status"`
}

// DefaultSchedule расписание нового тренера.
func DefaultSchedule() Schedule {
	day := func(start, end string, available bool) DaySchedule {
		return DaySchedule{Start: &start, End: &end, Available: &available}
	}
	return Schedule{
		"monday":    day("06:00", "20:00", true),
		"tuesday":   day("06:00", "20:00", true),
		"wednesday": day("06:00", "20:00", true),
		"thursday":  day("06:00", "20:00", true),
		"friday":    day("06:00", "18:00", true),
		"saturday":  day("08:00", "16:00", true),
		"sunday":    day("10:00", "14:00", false),
	}
}

// CoachPatch частичное обновление профиля тренера.
type CoachPatch struct {
	Name           *string  `json:"name,omitempty" validate:"omitempty,min=2"`
	Bio            *string  `json:"bio,omitempty" validate:"omitempty,max=500"`
	Specialization *string  `json:"specialization,omitempty" validate:"omitempty,min=2"`
	Experience     *string  `json:"experience,omitempty" validate:"omitempty,min=1"`
	Certifications []string `json:"certifications,omitempty"`
}

// Apply применяет заданные поля патча к профилю.
func (p CoachPatch) Apply(c *Coach) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Bio != nil {
		c.Bio = *p.Bio
	}
	if p.Specialization != nil {
		c.Specialization = *p.Specialization
	}
	if p.Experience != nil {
		c.Experience = *p.Experience
	}
	if p.Certifications != nil {
		c.Certifications = p.Certifications
	}
}

// Valid проверяет, что все ключи являются днями недели, а у каждого дня
// заданы начало, конец и доступность.
func (s Schedule) Valid() bool {
	for day, hours := range s {
		if !slices.Contains(Weekdays, day) {
			return false
		}
		if hours.Start == nil || hours.End == nil || hours.Available == nil {
			return false
		}
	}
	return true
}

// Lower возвращает копию расписания с днями недели в нижнем регистре.
func (s Schedule) Lower() Schedule {
	if s == nil {
		return nil
	}
	out := make(Schedule, len(s))
	for day, hours := range s {
		out[strings.ToLower(day)] = hours
	}
	return out
}

// SchedulePatch замена недельного расписания целиком.
type SchedulePatch struct {
	Schedule Schedule
}

// Apply заменяет расписание тренера.
func (p SchedulePatch) Apply(c *Coach) {
	c.Schedule = p.Schedule
}
