package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/benasja/workout-sub000/models"
	"github.com/benasja/workout-sub000/scoring"

	"gorm.io/gorm"
)

type AnalyticsService struct{ db *gorm.DB }

func NewAnalyticsService(db *gorm.DB) *AnalyticsService { return &AnalyticsService{db: db} }

// ---------- Weekly Overview ----------

type WeeklyOverviewResponse struct {
	WeekStart string `json:"week_start"`
	Mode      string `json:"mode"` // chart|detailed
	Days      any    `json:"days"`
}

type DayChart struct {
	Date   string           `json:"date"`
	Scores map[string]*int  `json:"scores"` // nil = no data that day
}

type DayDetailed struct {
	Date          string   `json:"date"`
	RecoveryScore *int     `json:"recovery_score"`
	SleepScore    *int     `json:"sleep_score"`
	HRV           *float64 `json:"hrv"`
	RHR           *float64 `json:"rhr"`
	HRVDelta      *float64 `json:"hrv_delta"`
	RHRDelta      *float64 `json:"rhr_delta"`
}

func (s *AnalyticsService) WeeklyOverview(
	ctx context.Context, userID uint, weekStart time.Time, mode string,
) (*WeeklyOverviewResponse, error) {

	if mode != "chart" && mode != "detailed" {
		return nil, errors.New("mode must be 'chart' or 'detailed'")
	}

	from := dayStart(weekStart)
	to := from.AddDate(0, 0, 6)

	var rows []models.DailyPerformance
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, dayEnd(to)).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	idx := map[string]models.DailyPerformance{}
	for _, r := range rows {
		idx[r.Date.Format("2006-01-02")] = r
	}

	out := &WeeklyOverviewResponse{
		WeekStart: from.Format("2006-01-02"),
		Mode:      mode,
	}

	if mode == "chart" {
		var days []DayChart
		for i := 0; i < 7; i++ {
			key := from.AddDate(0, 0, i).Format("2006-01-02")
			day := DayChart{Date: key, Scores: map[string]*int{"recovery": nil, "sleep": nil}}
			if dp, ok := idx[key]; ok {
				day.Scores["recovery"] = dp.RecoveryScore
				day.Scores["sleep"] = dp.SleepScore
			}
			days = append(days, day)
		}
		out.Days = days
		return out, nil
	}

	var days []DayDetailed
	for i := 0; i < 7; i++ {
		key := from.AddDate(0, 0, i).Format("2006-01-02")
		day := DayDetailed{Date: key}
		if dp, ok := idx[key]; ok {
			day.RecoveryScore = dp.RecoveryScore
			day.SleepScore = dp.SleepScore
			day.HRV = dp.HRV
			day.RHR = dp.RHR
			day.HRVDelta = dp.HRVDelta
			day.RHRDelta = dp.RHRDelta
		}
		days = append(days, day)
	}
	out.Days = days
	return out, nil
}

// ---------- Correlations ----------

// Correlations ranks every metric x factor comparison with enough data.
func (s *AnalyticsService) Correlations(ctx context.Context, userID uint, from, to time.Time) ([]scoring.FactorComparison, error) {
	days, err := s.journalDays(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return scoring.CompareAll(days), nil
}

// CompareFactor runs a single comparison. scoring.ErrInsufficientData when
// either group is under the minimum sample size.
func (s *AnalyticsService) CompareFactor(
	ctx context.Context, userID uint, from, to time.Time,
	metric scoring.Metric, factor scoring.Factor,
) (*scoring.FactorComparison, error) {
	days, err := s.journalDays(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return scoring.CompareFactor(days, metric, factor)
}

func (s *AnalyticsService) journalDays(ctx context.Context, userID uint, from, to time.Time) ([]scoring.DayRecord, error) {
	var entries []models.JournalEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return JournalDayRecords(entries), nil
}

// JournalDayRecords flattens journal rows into the comparator's view.
func JournalDayRecords(entries []models.JournalEntry) []scoring.DayRecord {
	days := make([]scoring.DayRecord, 0, len(entries))
	for _, e := range entries {
		days = append(days, scoring.DayRecord{
			Recovery:    e.RecoveryScore,
			Sleep:       e.SleepScore,
			HRV:         e.HRV,
			RHR:         e.RHR,
			Alcohol:     e.Alcohol,
			LateMeal:    e.LateMeal,
			HighStress:  e.HighStress,
			Supplements: e.Supplements,
		})
	}
	return days
}

// ---------- internals ----------

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// startOfWeek normalizes to the Monday of t's week, local midnight.
func startOfWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return dayStart(t).AddDate(0, 0, -(wd - 1))
}
