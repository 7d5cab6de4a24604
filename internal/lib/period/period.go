// Package period содержит отчётные периоды статистики и разбор
// даты и времени тренировки.
package period

import (
	"fmt"
	"strings"
	"time"
)

// Period отчётный период, отсчитываемый назад от текущего момента.
type Period string

const (
	Week    Period = "week"
	Month   Period = "month"
	Quarter Period = "quarter"
	Year    Period = "year"
)

// Parse разбирает название периода. Пустая строка означает месяц.
func Parse(s string) (Period, error) {
	switch p := Period(strings.ToLower(s)); p {
	case "":
		return Month, nil
	case Week, Month, Quarter, Year:
		return p, nil
	default:
		return "", fmt.Errorf("unknown period %q", s)
	}
}

// Start начало периода, заканчивающегося в now.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case Week:
		return now.AddDate(0, 0, -7)
	case Quarter:
		return now.AddDate(0, -3, 0)
	case Year:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}

// Contains сообщает, попадает ли t в период (Start(now), now].
func (p Period) Contains(now, t time.Time) bool {
	return t.After(p.Start(now)) && !t.After(now)
}

// SessionTime момент начала тренировки по дате YYYY-MM-DD и времени HH:MM в UTC.
func SessionTime(date, clock string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("period.SessionTime: %w", err)
	}
	return t, nil
}

// WeekStart полночь понедельника недели, содержащей t.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameMonth сообщает, относятся ли a и b к одному календарному месяцу.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
