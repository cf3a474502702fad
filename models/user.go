package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	UserID         string `gorm:"uniqueIndex;size:64"`
	Email          string `gorm:"uniqueIndex;not null"`
	Password       string `gorm:"not null"`
	FirstName      string
	LastName       string
	Birthday       time.Time
	Sex            string  `gorm:"size:10"` // "male" | "female"
	Height         float64 // cm
	Weight         float64 // kg
	ActivityLevel  string  `gorm:"size:20"` // sedentary .. very_active
	FitnessGoal    string  `gorm:"size:10"` // cut | maintain | bulk
	ProfilePicture string
	MFAEnabled     bool
	MFACode        string
	ResetToken     string
	ResetTokenExp  time.Time
	Onboarded      bool
	Disabled       bool `gorm:"default:false"`
}
