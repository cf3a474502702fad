package scoring

import (
	"errors"
	"fmt"
	"math"
)

// Calories per gram of each macronutrient.
const (
	kcalPerGramProtein = 4.0
	kcalPerGramCarb    = 4.0
	kcalPerGramFat     = 9.0
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

func (a ActivityLevel) Multiplier() (float64, error) {
	switch a {
	case ActivitySedentary:
		return 1.2, nil
	case ActivityLight:
		return 1.375, nil
	case ActivityModerate:
		return 1.55, nil
	case ActivityActive:
		return 1.725, nil
	case ActivityVeryActive:
		return 1.9, nil
	}
	return 0, fmt.Errorf("unknown activity level %q", string(a))
}

type GoalType string

const (
	GoalCut      GoalType = "cut"
	GoalMaintain GoalType = "maintain"
	GoalBulk     GoalType = "bulk"
)

type macroSplit struct {
	proteinPct, carbPct, fatPct float64 // sum to 100
}

func (g GoalType) plan() (calorieDelta float64, split macroSplit, err error) {
	switch g {
	case GoalCut:
		return -500, macroSplit{40, 30, 30}, nil
	case GoalMaintain:
		return 0, macroSplit{25, 45, 30}, nil
	case GoalBulk:
		return 300, macroSplit{30, 45, 25}, nil
	}
	return 0, macroSplit{}, fmt.Errorf("unknown goal %q", string(g))
}

type PhysicalProfile struct {
	WeightKg float64
	HeightCm float64
	Age      int
	Sex      Sex
}

// MacroTargets are the derived daily targets. Gram fields stay unrounded so
// that protein*4 + carbs*4 + fat*9 reproduces Calories exactly; rounding is
// a display concern.
type MacroTargets struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`

	BMR  float64 `json:"bmr"`
	TDEE float64 `json:"tdee"`
}

// ComputeBMR implements Mifflin-St Jeor. Height in cm, weight in kg.
func ComputeBMR(p PhysicalProfile) (float64, error) {
	if p.HeightCm <= 0 || p.WeightKg <= 0 || p.Age <= 0 {
		return 0, errors.New("height, weight and age must be positive")
	}
	// Sanity checks to avoid garbage input
	if p.HeightCm < 50 || p.HeightCm > 250 || p.WeightKg < 10 || p.WeightKg > 400 || p.Age > 120 {
		return 0, errors.New("height/weight/age out of plausible range")
	}

	base := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	switch p.Sex {
	case SexMale:
		return base + 5, nil
	case SexFemale:
		return base - 161, nil
	}
	return 0, fmt.Errorf("unknown sex %q", string(p.Sex))
}

// ComputeNutritionGoals derives daily calorie and macro targets:
// BMR -> TDEE via the activity multiplier -> goal calorie adjustment ->
// fixed macro percentage split at 4/4/9 kcal per gram.
func ComputeNutritionGoals(p PhysicalProfile, activity ActivityLevel, goal GoalType) (*MacroTargets, error) {
	bmr, err := ComputeBMR(p)
	if err != nil {
		return nil, err
	}
	mult, err := activity.Multiplier()
	if err != nil {
		return nil, err
	}
	delta, split, err := goal.plan()
	if err != nil {
		return nil, err
	}

	tdee := bmr * mult
	calories := tdee + delta
	if calories < 0 {
		calories = 0
	}

	return &MacroTargets{
		Calories: calories,
		ProteinG: calories * split.proteinPct / 100 / kcalPerGramProtein,
		CarbsG:   calories * split.carbPct / 100 / kcalPerGramCarb,
		FatG:     calories * split.fatPct / 100 / kcalPerGramFat,
		BMR:      bmr,
		TDEE:     tdee,
	}, nil
}

// manualGoalTolerance is how far (fractionally) macro-derived calories may
// drift from the stated calorie goal before a manual override is rejected.
const manualGoalTolerance = 0.20

// ValidateManualGoals accepts user-entered targets only when the calories
// implied by the macros land within 20% of the stated calorie goal.
func ValidateManualGoals(calories, proteinG, carbsG, fatG float64) error {
	if calories <= 0 || proteinG < 0 || carbsG < 0 || fatG < 0 {
		return errors.New("calories must be positive and macros non-negative")
	}
	macroCals := proteinG*kcalPerGramProtein + carbsG*kcalPerGramCarb + fatG*kcalPerGramFat
	if math.Abs(macroCals-calories) > manualGoalTolerance*calories {
		return fmt.Errorf(
			"macros add up to %.0f kcal, which is more than %.0f%% away from the %.0f kcal goal",
			macroCals, manualGoalTolerance*100, calories)
	}
	return nil
}
