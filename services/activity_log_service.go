package services

import (
	"time"

	"github.com/benasja/workout-sub000/config"
	"github.com/benasja/workout-sub000/models"

	"gorm.io/gorm"
)

func UpsertDailyActivity(userID uint, date time.Time, hydration, exercise float64) error {
	start := dayStart(date)

	log := models.DailyActivityLog{
		UserID:    userID,
		Date:      start,
		Hydration: hydration,
		Exercise:  exercise,
	}

	// Upsert by (user_id, date @ local midnight)
	return config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		Assign(log).
		FirstOrCreate(&log).Error
}

func GetDailyActivity(userID uint, date time.Time) (hydration, exercise float64, err error) {
	start := dayStart(date)

	var log models.DailyActivityLog
	err = config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		First(&log).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, 0, nil
		}
		return 0, 0, err
	}
	return log.Hydration, log.Exercise, nil
}
