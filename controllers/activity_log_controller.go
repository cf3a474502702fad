package controllers

import (
	"net/http"
	"time"

	"github.com/benasja/workout-sub000/services"

	"github.com/gin-gonic/gin"
)

// UpdateDailyActivity handles manual updates for hydration and exercise for a day.
func UpdateDailyActivity(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	date, err := dateFromQuery(c, "date", time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	var body struct {
		Hydration float64 `json:"hydration"`
		Exercise  float64 `json:"exercise"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Hydration < 0 || body.Exercise < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hydration and exercise must be non-negative"})
		return
	}

	if err := services.UpsertDailyActivity(userID, date, body.Hydration, body.Exercise); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func GetDailyActivity(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	date, err := dateFromQuery(c, "date", time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	hydration, exercise, err := services.GetDailyActivity(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":      date.Format("2006-01-02"),
		"hydration": hydration,
		"exercise":  exercise,
	})
}
