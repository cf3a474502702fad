package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged training session.
type Workout struct {
	gorm.Model
	UserID    uint `gorm:"index;not null"`
	StartedAt time.Time
	EndedAt   *time.Time
	Notes     string
	Sets      []WorkoutSet
}

// WorkoutSet is a single set within a session.
type WorkoutSet struct {
	gorm.Model
	WorkoutID uint `gorm:"index;not null"`

	Exercise string  `gorm:"not null"`
	WeightKg float64 // 0 for bodyweight movements
	Reps     int
	RPE      *float64
}
