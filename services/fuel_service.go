package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/benasja/workout-sub000/config"
	"github.com/benasja/workout-sub000/models"
	"github.com/benasja/workout-sub000/utils"
)

type FuelInput struct {
	Label    string    `json:"label" binding:"required"`
	Meal     string    `json:"meal"`
	AteAt    time.Time `json:"ate_at"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	// Optional base64 data-URI photo; uploaded to S3 and labeled.
	Photo string `json:"photo"`
}

// LogFuel stores a food entry. A photo, when provided, gets uploaded and run
// through label detection; labeling failures don't block the log.
func LogFuel(userID uint, vision *VisionService, in FuelInput) (*models.FuelLog, error) {
	if in.Calories < 0 || in.Protein < 0 || in.Carbs < 0 || in.Fat < 0 {
		return nil, errors.New("nutrition values must be non-negative")
	}
	ateAt := in.AteAt
	if ateAt.IsZero() {
		ateAt = time.Now()
	}

	entry := models.FuelLog{
		UserID:   userID,
		AteAt:    ateAt,
		Label:    in.Label,
		Meal:     in.Meal,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
	}

	if in.Photo != "" {
		url, err := utils.UploadBase64Image(in.Photo, "fuel-photos")
		if err != nil {
			return nil, err
		}
		entry.PhotoURL = url

		if vision != nil {
			labels, err := vision.RecognizeLabels(in.Photo)
			if err != nil {
				log.Printf("fuel photo labeling failed: %v", err)
			} else {
				entry.PhotoLabels = strings.Join(labels, ",")
			}
		}
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func ListFuelByDate(userID uint, date time.Time) ([]models.FuelLog, error) {
	var entries []models.FuelLog
	err := config.DB.
		Where("user_id = ? AND ate_at BETWEEN ? AND ?", userID, dayStart(date), dayEnd(date)).
		Order("ate_at ASC").
		Find(&entries).Error
	return entries, err
}

func DeleteFuelLog(userID, entryID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.FuelLog{}).Error
}

type FuelDayTotals struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`

	Goal    *models.NutritionGoals `json:"goal,omitempty"`
	Percent map[string]float64     `json:"percent,omitempty"`
}

// FuelTotalsForDate sums the day's entries and, when goals exist, reports
// progress percentages against them.
func FuelTotalsForDate(userID uint, date time.Time) (*FuelDayTotals, error) {
	entries, err := ListFuelByDate(userID, date)
	if err != nil {
		return nil, err
	}

	totals := &FuelDayTotals{Date: dayStart(date).Format("2006-01-02")}
	for _, e := range entries {
		totals.Calories += e.Calories
		totals.Protein += e.Protein
		totals.Carbs += e.Carbs
		totals.Fat += e.Fat
	}

	if goals, err := GetNutritionGoals(userID); err == nil {
		totals.Goal = goals
		totals.Percent = map[string]float64{
			"calories": pct(totals.Calories, goals.Calories),
			"protein":  pct(totals.Protein, goals.Protein),
			"carbs":    pct(totals.Carbs, goals.Carbs),
			"fat":      pct(totals.Fat, goals.Fat),
		}
	}
	return totals, nil
}

func pct(actual, goal float64) float64 {
	if goal <= 0 {
		if actual <= 0 {
			return 0
		}
		return 100
	}
	return round2(actual / goal * 100)
}
