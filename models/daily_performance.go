package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyPerformance is the persisted output of the scoring pipeline,
// one row per user per day. Recomputed in place when the day's sample changes.
type DailyPerformance struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"`

	// Nil when that scorer had nothing to compute for the day; a stored 0
	// is a genuine clamped score, never a placeholder.
	RecoveryScore *int // 0..100
	SleepScore    *int // 0..100

	HRV *float64
	RHR *float64

	// Deltas versus the rolling baseline at computation time.
	HRVDelta *float64
	RHRDelta *float64

	QualityScore    *int
	EfficiencyScore *int
	TimingScore     *int
}
