package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/benasja/workout-sub000/scoring"
	"github.com/benasja/workout-sub000/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Svc *services.AnalyticsService
}

func NewAnalyticsController(svc *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Svc: svc}
}

func (h *AnalyticsController) GetWeeklyOverview(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	now := time.Now()
	weekStart := startOfWeek(now)
	if v := c.Query("week_start"); v != "" {
		if ws, err := time.ParseInLocation("2006-01-02", v, now.Location()); err == nil {
			weekStart = startOfWeek(ws)
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week_start"})
			return
		}
	}
	mode := c.DefaultQuery("mode", "detailed")

	out, err := h.Svc.WeeklyOverview(c.Request.Context(), userID, weekStart, mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetCorrelations ranks every metric x factor comparison with enough data.
func (h *AnalyticsController) GetCorrelations(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	from, to, err := rangeFromQuery(c, 90)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.Svc.Correlations(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"from":         from.Format("2006-01-02"),
		"to":           to.Format("2006-01-02"),
		"correlations": out,
	})
}

// GetFactorComparison runs one metric x factor comparison.
func (h *AnalyticsController) GetFactorComparison(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	factor := scoring.Factor(c.Param("factor"))
	metric := scoring.Metric(c.DefaultQuery("metric", string(scoring.MetricRecovery)))

	from, to, err := rangeFromQuery(c, 90)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.Svc.CompareFactor(c.Request.Context(), userID, from, to, metric, factor)
	if errors.Is(err, scoring.ErrInsufficientData) {
		c.JSON(http.StatusOK, gin.H{
			"status": "insufficient_data",
			"detail": fmt.Sprintf("need at least %d days per group", scoring.MinGroupSize),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// --- helpers ---

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case int64:
		return uint(id), true
	default:
		return 0, false
	}
}

// dateFromQuery parses a YYYY-MM-DD query param, defaulting when absent.
func dateFromQuery(c *gin.Context, key string, def time.Time) (time.Time, error) {
	v := c.Query(key)
	if v == "" {
		return def, nil
	}
	return time.ParseInLocation("2006-01-02", v, def.Location())
}

// rangeFromQuery parses from/to query params, defaulting to the trailing
// `defaultDays` window ending today.
func rangeFromQuery(c *gin.Context, defaultDays int) (time.Time, time.Time, error) {
	now := time.Now()

	to, err := dateFromQuery(c, "to", now)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid to date")
	}
	from, err := dateFromQuery(c, "from", to.AddDate(0, 0, -defaultDays))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid from date")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("`to` must be on/after `from`")
	}
	return from, to, nil
}

func startOfWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	tt := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return tt.AddDate(0, 0, -(wd - 1)) // Monday
}
