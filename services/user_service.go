package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/benasja/workout-sub000/config"
	"github.com/benasja/workout-sub000/models"
	"github.com/benasja/workout-sub000/utils"
)

type ProfileInput struct {
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Birthday       string  `json:"birthday"` // sent as YYYY-MM-DD
	Sex            string  `json:"sex"`
	Height         float64 `json:"height"`
	Weight         float64 `json:"weight"`
	ActivityLevel  string  `json:"activity_level"`
	FitnessGoal    string  `json:"fitness_goal"`
	ProfilePicture string  `json:"profile_picture"`
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
	}

	profile := map[string]interface{}{
		"id":              user.ID,
		"user_id":         user.UserID,
		"email":           user.Email,
		"first_name":      user.FirstName,
		"last_name":       user.LastName,
		"birthday":        user.Birthday.Format("2006-01-02"),
		"age":             age,
		"sex":             user.Sex,
		"height":          user.Height,
		"weight":          user.Weight,
		"activity_level":  user.ActivityLevel,
		"fitness_goal":    user.FitnessGoal,
		"profile_picture": user.ProfilePicture,
		"mfa_enabled":     user.MFAEnabled,
		"onboarded":       user.Onboarded,
	}

	if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
		profile["bmi"] = bmi
		profile["bmi_category"] = utils.BMICategory(bmi)
	}

	return profile, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Birthday != "" {
		if birthday, err := time.Parse("2006-01-02", input.Birthday); err == nil {
			user.Birthday = birthday
		}
	}
	if input.Sex != "" {
		user.Sex = input.Sex
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}
	if input.ActivityLevel != "" {
		user.ActivityLevel = input.ActivityLevel
	}
	if input.FitnessGoal != "" {
		user.FitnessGoal = input.FitnessGoal
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64Image(input.ProfilePicture, "profile-pictures")
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	return config.DB.Save(&user).Error
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func FindUserByID(userID uint) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, userID)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func DeleteUser(userID uint) error {
	var user models.User
	result := config.DB.First(&user, userID)
	if result.Error != nil {
		return result.Error
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}

type OnboardingInput struct {
	Birthday      string  `json:"birthday" binding:"required"`
	Sex           string  `json:"sex" binding:"required"`
	Height        float64 `json:"height" binding:"required"`
	Weight        float64 `json:"weight" binding:"required"`
	ActivityLevel string  `json:"activity_level" binding:"required"`
	FitnessGoal   string  `json:"fitness_goal" binding:"required"`
	ProfilePicture string `json:"profile_picture"`
	MFAEnabled    bool    `json:"mfa_enabled"`
}

// CompleteUserOnboarding fills in the physical profile and computes the
// user's initial nutrition goals from it.
func CompleteUserOnboarding(userID uint, in OnboardingInput) (*models.NutritionGoals, error) {
	var user models.User
	if err := config.DB.
		Where("id = ? AND disabled = ?", userID, false).
		First(&user).Error; err != nil {
		return nil, errors.New("user not found or disabled")
	}

	birthday, err := time.Parse("2006-01-02", in.Birthday)
	if err != nil {
		return nil, errors.New("birthday must be YYYY-MM-DD")
	}

	user.Birthday = birthday
	user.Sex = in.Sex
	user.Height = in.Height
	user.Weight = in.Weight
	user.ActivityLevel = in.ActivityLevel
	user.FitnessGoal = in.FitnessGoal
	user.MFAEnabled = in.MFAEnabled

	if in.ProfilePicture != "" {
		url, err := utils.UploadBase64Image(in.ProfilePicture, "profile-pictures")
		if err != nil {
			return nil, fmt.Errorf("failed to upload profile picture: %w", err)
		}
		user.ProfilePicture = url
	}

	goals, err := RecomputeNutritionGoals(&user)
	if err != nil {
		return nil, err
	}

	user.Onboarded = true
	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return goals, nil
}
