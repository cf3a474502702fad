package models

import (
	"time"

	"gorm.io/gorm"
)

// FuelLog is one food entry with its nutrition snapshot.
type FuelLog struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	AteAt  time.Time `gorm:"index;not null"`

	Label    string `gorm:"not null"`
	Meal     string `gorm:"size:20"` // "Breakfast"|"Lunch"|"Dinner"|"Snack"
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64

	PhotoURL    string
	PhotoLabels string // comma-sep Rekognition labels
}
