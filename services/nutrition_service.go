package services

import (
	"errors"

	"github.com/benasja/workout-sub000/config"
	"github.com/benasja/workout-sub000/models"
	"github.com/benasja/workout-sub000/scoring"
	"github.com/benasja/workout-sub000/utils"

	"gorm.io/gorm"
)

var ErrProfileIncomplete = errors.New("profile is missing height, weight, birthday or sex")

func GetNutritionGoals(userID uint) (*models.NutritionGoals, error) {
	var goals models.NutritionGoals
	if err := config.DB.Where("user_id = ?", userID).First(&goals).Error; err != nil {
		return nil, err
	}
	return &goals, nil
}

// RecomputeNutritionGoals derives targets from the user's physical profile
// and stored activity/goal preferences, replacing any manual override.
func RecomputeNutritionGoals(user *models.User) (*models.NutritionGoals, error) {
	if user.Height <= 0 || user.Weight <= 0 || user.Birthday.IsZero() || user.Sex == "" {
		return nil, ErrProfileIncomplete
	}

	targets, err := scoring.ComputeNutritionGoals(
		scoring.PhysicalProfile{
			WeightKg: user.Weight,
			HeightCm: user.Height,
			Age:      utils.CalculateAge(user.Birthday),
			Sex:      scoring.Sex(user.Sex),
		},
		scoring.ActivityLevel(user.ActivityLevel),
		scoring.GoalType(user.FitnessGoal),
	)
	if err != nil {
		return nil, err
	}

	goals := models.NutritionGoals{
		UserID:        user.ID,
		Calories:      targets.Calories,
		Protein:       targets.ProteinG,
		Carbs:         targets.CarbsG,
		Fat:           targets.FatG,
		BMR:           targets.BMR,
		TDEE:          targets.TDEE,
		ActivityLevel: user.ActivityLevel,
		Goal:          user.FitnessGoal,
		Manual:        false,
	}
	if err := upsertNutritionGoals(&goals); err != nil {
		return nil, err
	}
	return &goals, nil
}

type ManualGoalsInput struct {
	Calories float64 `json:"calories" binding:"required"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// OverrideNutritionGoals accepts user-entered targets after checking that
// the macro calories stay within tolerance of the stated calorie goal.
func OverrideNutritionGoals(userID uint, in ManualGoalsInput) (*models.NutritionGoals, error) {
	if err := scoring.ValidateManualGoals(in.Calories, in.Protein, in.Carbs, in.Fat); err != nil {
		return nil, err
	}

	goals := models.NutritionGoals{
		UserID:   userID,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
		Manual:   true,
	}

	// Carry over the computed context if it exists.
	var existing models.NutritionGoals
	if err := config.DB.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		goals.BMR = existing.BMR
		goals.TDEE = existing.TDEE
		goals.ActivityLevel = existing.ActivityLevel
		goals.Goal = existing.Goal
	}

	if err := upsertNutritionGoals(&goals); err != nil {
		return nil, err
	}
	return &goals, nil
}

func upsertNutritionGoals(goals *models.NutritionGoals) error {
	var existing models.NutritionGoals
	err := config.DB.Where("user_id = ?", goals.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return config.DB.Create(goals).Error
	}
	if err != nil {
		return err
	}
	goals.ID = existing.ID
	goals.CreatedAt = existing.CreatedAt
	return config.DB.Save(goals).Error
}
