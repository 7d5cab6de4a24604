package auth

import (
	"context"
	"fmt"

	"github.com/cobusiness02/forgefyt/internal/lib/password"
	"github.com/cobusiness02/forgefyt/internal/models"
)

// Seed записывает стартовые учётные записи тренера и администратора.
// Пароли хэшируются при каждом запуске.
func (s *Service) Seed(ctx context.Context) error {
	const op = "auth.Seed"

	coachHash, err := password.GetHash("coach123")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	adminHash, err := password.GetHash("admin123")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	users := []models.User{
		{
			Base:         models.Base{ID: "1", OwnerID: "1"},
			Email:        "coach@fitcoachpro.com",
			PasswordHash: coachHash,
			Role:         models.RoleCoach,
			Name:         "John Coach",
			Profile: map[string]any{
				"specialization": "Weight Training",
				"experience":     "5 years",
				"certifications": []any{"NASM", "ACE"},
			},
			IsActive: true,
		},
		{
			Base:         models.Base{ID: "2", OwnerID: "2"},
			Email:        "admin@fitcoachpro.com",
			PasswordHash: adminHash,
			Role:         models.RoleAdmin,
			Name:         "Admin User",
			Profile: map[string]any{
				"department":  "Platform Management",
				"permissions": []any{"all"},
			},
			IsActive: true,
		},
	}
	if err := s.users.Seed(ctx, users...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
