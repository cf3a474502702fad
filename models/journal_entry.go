package models

import (
	"time"

	"gorm.io/gorm"
)

// JournalEntry is the user's daily lifestyle log, one per calendar day.
// The linked score fields are snapshots backfilled from DailyPerformance
// so correlation queries don't need a join.
type JournalEntry struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"`

	Alcohol     bool
	LateMeal    bool
	HighStress  bool
	Supplements bool
	Notes       string `gorm:"type:text"`

	RecoveryScore *float64
	SleepScore    *float64
	HRV           *float64
	RHR           *float64
}
