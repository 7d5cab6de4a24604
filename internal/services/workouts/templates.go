package workouts

import "github.com/cobusiness02/forgefyt/internal/models"

// Templates каталог шаблонов тренировок.
func Templates() []models.Template {
	return []models.Template{
		{
			ID:       "1",
			Name:     "Upper Body Strength",
			Type:     models.WorkoutStrength,
			Duration: 60,
			Exercises: []models.Exercise{
				{Name: "Bench Press", Sets: 3, Reps: 10, RestTime: 90},
				{Name: "Rows", Sets: 3, Reps: 12, RestTime: 60},
				{Name: "Shoulder Press", Sets: 3, Reps: 8, RestTime: 90},
				{Name: "Pull-ups", Sets: 3, Reps: 6, RestTime: 120},
			},
		},
		{
			ID:       "2",
			Name:     "HIIT Cardio",
			Type:     models.WorkoutCardio,
			Duration: 30,
			Exercises: []models.Exercise{
				{Name: "Burpees", Duration: 30, RestTime: 30},
				{Name: "Mountain Climbers", Duration: 30, RestTime: 30},
				{Name: "Jump Squats", Duration: 30, RestTime: 30},
				{Name: "High Knees", Duration: 30, RestTime: 30},
			},
		},
		{
			ID:       "3",
			Name:     "Flexibility & Mobility",
			Type:     models.WorkoutFlexibility,
			Duration: 45,
			Exercises: []models.Exercise{
				{Name: "Dynamic Warm-up", Duration: 10},
				{Name: "Hip Flexor Stretch", Duration: 60, Sets: 2},
				{Name: "Hamstring Stretch", Duration: 60, Sets: 2},
				{Name: "Shoulder Mobility", Duration: 60, Sets: 2},
			},
		},
	}
}
