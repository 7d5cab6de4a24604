package clients

import (
	"context"
	"fmt"
	"time"

	"github.com/cobusiness02/forgefyt/internal/models"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func tsp(s string) *time.Time {
	t := ts(s)
	return &t
}

func strp(s string) *string { return &s }

// Fixtures стартовые клиенты тренера с id 1.
func Fixtures(now time.Time) []models.Client {
	return []models.Client{
		{
			Base:         models.Base{ID: "1", OwnerID: "1", CreatedAt: ts("2024-01-15T08:00:00Z"), UpdatedAt: now},
			Name:         "Sarah Johnson",
			Email:        "sarah.johnson@email.com",
			Phone:        "+1-555-0123",
			DateOfBirth:  strp("1990-05-15"),
			Status:       models.ClientActive,
			JoinDate:     ts("2024-01-15T08:00:00Z"),
			Goals:        []string{"Weight Loss", "Strength Building"},
			FitnessLevel: models.FitnessIntermediate,
			MedicalNotes: "No known allergies or conditions",
			EmergencyContact: models.EmergencyContact{
				Name: "John Johnson", Phone: "+1-555-0124", Relationship: "Spouse",
			},
			Measurements: models.Measurements{Height: 165, Weight: 68, BodyFat: 22, LastUpdated: tsp("2024-10-15T08:00:00Z")},
			Preferences: &models.Preferences{
				WorkoutTime: "morning", WorkoutDuration: 60, Intensity: "high", WorkoutTypes: []string{"strength", "cardio"},
			},
			Progress: models.ClientProgress{
				SessionsCompleted: 45, TotalHours: 67.5, AverageRating: 4.8, LastSession: tsp("2024-10-28T09:00:00Z"),
			},
		},
		{
			Base:         models.Base{ID: "2", OwnerID: "1", CreatedAt: ts("2024-02-01T08:00:00Z"), UpdatedAt: now},
			Name:         "Mike Wilson",
			Email:        "mike.wilson@email.com",
			Phone:        "+1-555-0125",
			DateOfBirth:  strp("1985-08-22"),
			Status:       models.ClientActive,
			JoinDate:     ts("2024-02-01T08:00:00Z"),
			Goals:        []string{"Muscle Building", "Athletic Performance"},
			FitnessLevel: models.FitnessAdvanced,
			MedicalNotes: "Previous knee injury - avoid high impact exercises",
			EmergencyContact: models.EmergencyContact{
				Name: "Lisa Wilson", Phone: "+1-555-0126", Relationship: "Spouse",
			},
			Measurements: models.Measurements{Height: 180, Weight: 85, BodyFat: 15, LastUpdated: tsp("2024-10-20T08:00:00Z")},
			Preferences: &models.Preferences{
				WorkoutTime: "evening", WorkoutDuration: 75, Intensity: "high", WorkoutTypes: []string{"strength", "flexibility"},
			},
			Progress: models.ClientProgress{
				SessionsCompleted: 38, TotalHours: 57, AverageRating: 4.9, LastSession: tsp("2024-10-29T18:00:00Z"),
			},
		},
		{
			Base:         models.Base{ID: "3", OwnerID: "1", CreatedAt: ts("2024-03-10T08:00:00Z"), UpdatedAt: now},
			Name:         "Emma Davis",
			Email:        "emma.davis@email.com",
			Phone:        "+1-555-0127",
			DateOfBirth:  strp("1992-12-10"),
			Status:       models.ClientActive,
			JoinDate:     ts("2024-03-10T08:00:00Z"),
			Goals:        []string{"Weight Loss", "Flexibility"},
			FitnessLevel: models.FitnessBeginner,
			MedicalNotes: "Asthma - keep inhaler nearby",
			EmergencyContact: models.EmergencyContact{
				Name: "Robert Davis", Phone: "+1-555-0128", Relationship: "Father",
			},
			Measurements: models.Measurements{Height: 160, Weight: 72, BodyFat: 28, LastUpdated: tsp("2024-10-10T08:00:00Z")},
			Preferences: &models.Preferences{
				WorkoutTime: "afternoon", WorkoutDuration: 45, Intensity: "moderate", WorkoutTypes: []string{"cardio", "flexibility"},
			},
			Progress: models.ClientProgress{
				SessionsCompleted: 28, TotalHours: 35, AverageRating: 4.6, LastSession: tsp("2024-10-27T14:00:00Z"),
			},
		},
	}
}

// Seed записывает стартовых клиентов.
func (s *Service) Seed(ctx context.Context) error {
	const op = "clients.Seed"
	if err := s.clients.Seed(ctx, Fixtures(s.clients.Now())...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
