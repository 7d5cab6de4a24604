package coaches

import (
	"context"
	"fmt"
	"time"

	"github.com/cobusiness02/forgefyt/internal/models"
)

// Fixtures стартовый профиль тренера с id 1.
func Fixtures(now time.Time) []models.Coach {
	return []models.Coach{{
		Base: models.Base{
			ID:        "1",
			OwnerID:   "1",
			CreatedAt: time.Date(2024, time.January, 15, 8, 0, 0, 0, time.UTC),
			UpdatedAt: now,
		},
		Name:           "John Coach",
		Email:          "coach@fitcoachpro.com",
		Specialization: "Weight Training",
		Experience:     "5 years",
		Certifications: []string{"NASM", "ACE"},
		Bio:            "Experienced personal trainer specializing in strength training and body composition.",
		SessionRate:    DefaultSessionRate,
		Schedule:       models.DefaultSchedule(),
		Status:         models.CoachActive,
	}}
}

// Seed записывает стартовый профиль тренера.
func (s *Service) Seed(ctx context.Context) error {
	const op = "coaches.Seed"
	if err := s.coaches.Seed(ctx, Fixtures(s.coaches.Now())...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
