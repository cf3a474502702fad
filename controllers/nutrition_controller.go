package controllers

import (
	"net/http"

	"github.com/benasja/workout-sub000/services"

	"github.com/gin-gonic/gin"
)

func GetNutritionGoals(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	goals, err := services.GetNutritionGoals(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no nutrition goals set"})
		return
	}
	c.JSON(http.StatusOK, goals)
}

// RecomputeNutritionGoals rebuilds targets from the stored physical profile,
// discarding any manual override.
func RecomputeNutritionGoals(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := services.FindUserByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	goals, err := services.RecomputeNutritionGoals(user)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}

// OverrideNutritionGoals accepts manual targets, rejecting macro/calorie
// mismatches beyond tolerance with a 422 naming the numbers.
func OverrideNutritionGoals(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.ManualGoalsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goals, err := services.OverrideNutritionGoals(userID, input)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}
