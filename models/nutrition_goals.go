package models

import "gorm.io/gorm"

// NutritionGoals holds each user's daily calorie and macro targets.
type NutritionGoals struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null"`

	Calories float64 // kcal
	Protein  float64 // g
	Carbs    float64 // g
	Fat      float64 // g

	BMR           float64
	TDEE          float64
	ActivityLevel string `gorm:"size:20"`
	Goal          string `gorm:"size:10"` // cut | maintain | bulk
	Manual        bool   // true when the user overrode the computed targets
}
