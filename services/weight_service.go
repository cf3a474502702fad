package services

import (
	"errors"
	"log"
	"time"

	"github.com/benasja/workout-sub000/config"
	"github.com/benasja/workout-sub000/models"
)

func LogWeight(userID uint, loggedAt time.Time, weightKg float64, note string) (*models.WeightEntry, error) {
	if weightKg <= 0 {
		return nil, errors.New("weight must be positive")
	}
	entry := models.WeightEntry{
		UserID:   userID,
		LoggedAt: loggedAt,
		WeightKg: weightKg,
		Note:     note,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}

	// Keep the profile weight current, it feeds nutrition recomputes.
	if err := config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("weight", weightKg).Error; err != nil {
		log.Printf("profile weight sync failed for user %d: %v", userID, err)
	}

	return &entry, nil
}

func ListWeightEntries(userID uint, from, to time.Time) ([]models.WeightEntry, error) {
	var entries []models.WeightEntry
	err := config.DB.
		Where("user_id = ? AND logged_at BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("logged_at DESC").
		Find(&entries).Error
	return entries, err
}

func DeleteWeightEntry(userID, entryID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.WeightEntry{}).Error
}
