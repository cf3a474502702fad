package services

import (
	"context"
	"time"

	"github.com/benasja/workout-sub000/models"
	"github.com/benasja/workout-sub000/scoring"

	"gorm.io/gorm"
)

// baselineWindowDays is how far back the rolling personal baseline looks.
const baselineWindowDays = 14

// BaselineService computes rolling personal averages from stored biometric
// samples.
type BaselineService struct{ db *gorm.DB }

func NewBaselineService(db *gorm.DB) *BaselineService { return &BaselineService{db: db} }

// BaselineFor averages the 14 days strictly before `date`. Metrics with no
// history stay zero, which the scorers treat as "no baseline".
func (s *BaselineService) BaselineFor(ctx context.Context, userID uint, date time.Time) (scoring.Baseline, error) {
	from := dayStart(date).AddDate(0, 0, -baselineWindowDays)
	to := dayStart(date).Add(-time.Nanosecond)

	var rows []models.BiometricSample
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return scoring.Baseline{}, err
	}

	var b scoring.Baseline
	var hrvSum, rhrSum, asleepSum, bedSum float64
	var hrvN, rhrN, asleepN, bedN int

	for _, r := range rows {
		if r.HRV != nil {
			hrvSum += *r.HRV
			hrvN++
		}
		if r.RHR != nil {
			rhrSum += *r.RHR
			rhrN++
		}
		if r.TimeAsleepMin != nil {
			asleepSum += *r.TimeAsleepMin
			asleepN++
		}
		if r.Bedtime != nil {
			bedSum += scoring.MinutesAfterNoon(*r.Bedtime)
			bedN++
		}
	}

	if hrvN > 0 {
		b.HRV = hrvSum / float64(hrvN)
	}
	if rhrN > 0 {
		b.RHR = rhrSum / float64(rhrN)
	}
	if asleepN > 0 {
		b.TimeAsleepMin = asleepSum / float64(asleepN)
	}
	if bedN > 0 {
		b.BedtimeMinutes = bedSum / float64(bedN)
	}
	b.Days = len(rows)

	return b, nil
}
