package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/benasja/workout-sub000/scoring"
	"github.com/benasja/workout-sub000/services"

	"github.com/gin-gonic/gin"
)

type PerformanceController struct {
	Svc *services.PerformanceService
}

func NewPerformanceController(svc *services.PerformanceService) *PerformanceController {
	return &PerformanceController{Svc: svc}
}

// UpsertSample stores a day's biometric readings and returns the recomputed
// scores. 422 when the sample carries nothing scoreable.
func (h *PerformanceController) UpsertSample(c *gin.Context) {
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

	var input services.SampleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	perf, findings, err := h.Svc.UpsertSample(c.Request.Context(), userID, date, input)
	if errors.Is(err, scoring.ErrNoData) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no scoreable data in sample"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"performance": perf, "findings": findings})
}

// GetPerformance returns one day's persisted scores, or a typed "no data"
// response when the day was never scored.
func (h *PerformanceController) GetPerformance(c *gin.Context) {
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

	perf, err := h.Svc.Get(c.Request.Context(), userID, date)
	if errors.Is(err, scoring.ErrNoData) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no data", "date": date.Format("2006-01-02")})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, perf)
}

func (h *PerformanceController) GetHistory(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	from, to, err := rangeFromQuery(c, 30)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.Svc.History(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
