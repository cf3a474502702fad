package services

import (
	"errors"
	"time"

	"github.com/benasja/workout-sub000/config"
	"github.com/benasja/workout-sub000/models"

	"gorm.io/gorm"
)

type JournalInput struct {
	Alcohol     bool   `json:"alcohol"`
	LateMeal    bool   `json:"late_meal"`
	HighStress  bool   `json:"high_stress"`
	Supplements bool   `json:"supplements"`
	Notes       string `json:"notes"`
}

// UpsertJournalEntry writes the day's entry (one per calendar day) and
// backfills the linked score snapshot from that day's performance row so
// correlation queries read from a single table.
func UpsertJournalEntry(userID uint, date time.Time, in JournalInput) (*models.JournalEntry, error) {
	start := dayStart(date)

	entry := models.JournalEntry{
		UserID:      userID,
		Date:        start,
		Alcohol:     in.Alcohol,
		LateMeal:    in.LateMeal,
		HighStress:  in.HighStress,
		Supplements: in.Supplements,
		Notes:       in.Notes,
	}

	var perf models.DailyPerformance
	err := config.DB.Where("user_id = ? AND date = ?", userID, start).First(&perf).Error
	if err == nil {
		snapshotScores(&entry, &perf)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		Assign(entry).
		FirstOrCreate(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// snapshotScores copies the day's scored metrics onto the journal row.
// Metrics the scorers never produced stay nil so the correlation comparator
// only sees real observations.
func snapshotScores(entry *models.JournalEntry, perf *models.DailyPerformance) {
	if perf.RecoveryScore != nil {
		rec := float64(*perf.RecoveryScore)
		entry.RecoveryScore = &rec
	}
	if perf.SleepScore != nil {
		slp := float64(*perf.SleepScore)
		entry.SleepScore = &slp
	}
	entry.HRV = perf.HRV
	entry.RHR = perf.RHR
}

func GetJournalEntry(userID uint, date time.Time) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, dayStart(date)).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func ListJournalEntries(userID uint, from, to time.Time) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	err := config.DB.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

func DeleteJournalEntry(userID uint, date time.Time) error {
	return config.DB.
		Where("user_id = ? AND date = ?", userID, dayStart(date)).
		Delete(&models.JournalEntry{}).Error
}
