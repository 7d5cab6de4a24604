package workouts

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

// Fixtures стартовые тренировки тренера с id 1 на 2024-11-01.
func Fixtures(now time.Time) []models.Workout {
	return []models.Workout{
		{
			Base:       models.Base{ID: "1", OwnerID: "1", CreatedAt: ts("2024-10-28T08:00:00Z"), UpdatedAt: now},
			ClientID:   "1",
			ClientName: "Sarah Johnson",
			Title:      "Upper Body Strength",
			Type:       models.WorkoutStrength,
			Date:       "2024-11-01",
			Time:       "09:00",
			Duration:   60,
			Status:     models.WorkoutScheduled,
			Location:   "Gym Floor A",
			Exercises: []models.Exercise{
				{Name: "Bench Press", Sets: 3, Reps: 10, Weight: 60, RestTime: 90},
				{Name: "Rows", Sets: 3, Reps: 12, Weight: 50, RestTime: 60},
				{Name: "Shoulder Press", Sets: 3, Reps: 8, Weight: 30, RestTime: 90},
			},
			Notes: "Focus on form and controlled movements",
		},
		{
			Base:       models.Base{ID: "2", OwnerID: "1", CreatedAt: ts("2024-10-29T08:00:00Z"), UpdatedAt: now},
			ClientID:   "2",
			ClientName: "Mike Wilson",
			Title:      "Leg Day Power",
			Type:       models.WorkoutStrength,
			Date:       "2024-11-01",
			Time:       "11:00",
			Duration:   75,
			Status:     models.WorkoutScheduled,
			Location:   "Gym Floor B",
			Exercises: []models.Exercise{
				{Name: "Squats", Sets: 4, Reps: 8, Weight: 100, RestTime: 120},
				{Name: "Deadlifts", Sets: 3, Reps: 6, Weight: 120, RestTime: 180},
				{Name: "Leg Press", Sets: 3, Reps: 12, Weight: 200, RestTime: 90},
			},
			Notes: "Watch knee positioning during squats",
		},
		{
			Base:       models.Base{ID: "3", OwnerID: "1", CreatedAt: ts("2024-10-30T08:00:00Z"), UpdatedAt: now},
			ClientID:   "3",
			ClientName: "Emma Davis",
			Title:      "Cardio & Flexibility",
			Type:       models.WorkoutCardio,
			Date:       "2024-11-01",
			Time:       "14:00",
			Duration:   45,
			Status:     models.WorkoutScheduled,
			Location:   "Cardio Area",
			Exercises: []models.Exercise{
				{Name: "Treadmill", Duration: 20, Intensity: "moderate", Notes: "Keep heart rate at 140-150 bpm"},
				{Name: "Stretching Routine", Duration: 15, Intensity: "low", Notes: "Focus on hamstrings and hip flexors"},
				{Name: "Cool Down Walk", Duration: 10, Intensity: "low", Notes: "Gradual heart rate reduction"},
			},
			Notes: "Remember to keep inhaler nearby",
		},
	}
}

// Seed записывает стартовые тренировки.
func (s *Service) Seed(ctx context.Context) error {
	const op = "workouts.Seed"
	if err := s.workouts.Seed(ctx, Fixtures(s.workouts.Now())...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
