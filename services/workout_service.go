package services

import (
	"errors"
	"time"

	"github.com/benasja/workout-sub000/config"
	"github.com/benasja/workout-sub000/models"
)

type SetInput struct {
	Exercise string   `json:"exercise" binding:"required"`
	WeightKg float64  `json:"weight_kg"`
	Reps     int      `json:"reps" binding:"required"`
	RPE      *float64 `json:"rpe"`
}

type WorkoutInput struct {
	StartedAt time.Time  `json:"started_at" binding:"required"`
	EndedAt   *time.Time `json:"ended_at"`
	Notes     string     `json:"notes"`
	Sets      []SetInput `json:"sets"`
}

func CreateWorkout(userID uint, in WorkoutInput) (*models.Workout, error) {
	w := models.Workout{
		UserID:    userID,
		StartedAt: in.StartedAt,
		EndedAt:   in.EndedAt,
		Notes:     in.Notes,
	}
	for _, s := range in.Sets {
		if s.WeightKg < 0 || s.Reps <= 0 {
			return nil, errors.New("set weight must be non-negative and reps positive")
		}
		w.Sets = append(w.Sets, models.WorkoutSet{
			Exercise: s.Exercise,
			WeightKg: s.WeightKg,
			Reps:     s.Reps,
			RPE:      s.RPE,
		})
	}
	if err := config.DB.Create(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func ListWorkouts(userID uint, from, to time.Time) ([]models.Workout, error) {
	var workouts []models.Workout
	err := config.DB.
		Preload("Sets").
		Where("user_id = ? AND started_at BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("started_at DESC").
		Find(&workouts).Error
	return workouts, err
}

func DeleteWorkout(userID, workoutID uint) error {
	var w models.Workout
	if err := config.DB.Where("id = ? AND user_id = ?", workoutID, userID).First(&w).Error; err != nil {
		return err
	}
	if err := config.DB.Where("workout_id = ?", w.ID).Delete(&models.WorkoutSet{}).Error; err != nil {
		return err
	}
	return config.DB.Delete(&w).Error
}

// EstimateOneRepMax uses the Epley formula. Reps of 1 returns the weight
// itself; bodyweight sets (weight 0) estimate as 0.
func EstimateOneRepMax(weightKg float64, reps int) float64 {
	if weightKg <= 0 || reps <= 0 {
		return 0
	}
	if reps == 1 {
		return weightKg
	}
	return round2(weightKg * (1 + float64(reps)/30.0))
}

type ExerciseRecord struct {
	Exercise string    `json:"exercise"`
	BestE1RM float64   `json:"best_e1rm"`
	WeightKg float64   `json:"weight_kg"`
	Reps     int       `json:"reps"`
	SetAt    time.Time `json:"set_at"`
}

// PersonalRecords returns each exercise's best estimated 1RM across all sets.
func PersonalRecords(userID uint) ([]ExerciseRecord, error) {
	var sets []models.WorkoutSet
	err := config.DB.
		Joins("JOIN workouts ON workouts.id = workout_sets.workout_id").
		Where("workouts.user_id = ?", userID).
		Select("workout_sets.*, workouts.started_at").
		Find(&sets).Error
	if err != nil {
		return nil, err
	}

	best := map[string]ExerciseRecord{}
	for _, s := range sets {
		e1rm := EstimateOneRepMax(s.WeightKg, s.Reps)
		if e1rm <= 0 {
			continue
		}
		if cur, ok := best[s.Exercise]; !ok || e1rm > cur.BestE1RM {
			best[s.Exercise] = ExerciseRecord{
				Exercise: s.Exercise,
				BestE1RM: e1rm,
				WeightKg: s.WeightKg,
				Reps:     s.Reps,
				SetAt:    s.CreatedAt,
			}
		}
	}

	out := make([]ExerciseRecord, 0, len(best))
	for _, r := range best {
		out = append(out, r)
	}
	return out, nil
}
