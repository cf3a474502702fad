package models

import (
	"time"

	"gorm.io/gorm"
)

// BiometricSample is one day's worth of wearable readings for a user.
// Nullable fields stay nil when the device didn't report that metric.
type BiometricSample struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"` // truncated to local midnight

	HRV *float64 // ms (rMSSD)
	RHR *float64 // bpm

	TimeAsleepMin   *float64
	DeepSleepMin    *float64
	RemSleepMin     *float64
	CoreSleepMin    *float64
	SleepEfficiency *float64 // 0..1
	HeartRateDipPct *float64 // % drop of sleeping HR below daytime RHR

	Bedtime  *time.Time
	WakeTime *time.Time
}
