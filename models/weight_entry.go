package models

import (
	"time"

	"gorm.io/gorm"
)

type WeightEntry struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	LoggedAt time.Time `gorm:"index;not null"`
	WeightKg float64
	Note     string
}
