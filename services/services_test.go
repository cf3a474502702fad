package services

import (
	"testing"
	"time"

	"github.com/benasja/workout-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func TestSleepInputsFromSample_StageMinutesBecomePercentages(t *testing.T) {
	sample := &models.BiometricSample{
		TimeAsleepMin: fptr(480),
		DeepSleepMin:  fptr(96),
		RemSleepMin:   fptr(120),
	}

	in := SleepInputsFromSample(sample)

	require.NotNil(t, in.DeepSleepPct)
	require.NotNil(t, in.RemSleepPct)
	assert.InDelta(t, 20.0, *in.DeepSleepPct, 1e-9)
	assert.InDelta(t, 25.0, *in.RemSleepPct, 1e-9)
}

func TestSleepInputsFromSample_NoDurationLeavesStagesNil(t *testing.T) {
	sample := &models.BiometricSample{
		DeepSleepMin: fptr(90),
		RemSleepMin:  fptr(100),
	}

	in := SleepInputsFromSample(sample)

	assert.Nil(t, in.DeepSleepPct)
	assert.Nil(t, in.RemSleepPct)
	assert.Nil(t, in.TimeAsleepMin)
}

func TestEstimateOneRepMax(t *testing.T) {
	// Epley: 100kg x 5 -> 100 * (1 + 5/30)
	assert.InDelta(t, 116.67, EstimateOneRepMax(100, 5), 1e-9)
	assert.Equal(t, 100.0, EstimateOneRepMax(100, 1))
	assert.Equal(t, 0.0, EstimateOneRepMax(0, 10))
	assert.Equal(t, 0.0, EstimateOneRepMax(80, 0))
}

func TestStartOfWeek(t *testing.T) {
	// 2026-08-30 is a Sunday; its week starts Monday the 24th.
	sunday := time.Date(2026, 8, 30, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), startOfWeek(sunday))

	monday := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, startOfWeek(monday))
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2026, 3, 14, 13, 37, 11, 500, time.UTC)

	start := dayStart(at)
	end := dayEnd(at)

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), start)
	assert.True(t, end.After(at))
	assert.Equal(t, 14, end.Day())
	assert.True(t, end.Before(start.AddDate(0, 0, 1)))
}

func TestPct(t *testing.T) {
	assert.Equal(t, 50.0, pct(1000, 2000))
	assert.Equal(t, 0.0, pct(0, 0))
	assert.Equal(t, 100.0, pct(500, 0))
	assert.Equal(t, 104.17, pct(2500, 2400))
}

func TestJournalDayRecords(t *testing.T) {
	entries := []models.JournalEntry{
		{
			Alcohol:       true,
			Supplements:   true,
			RecoveryScore: fptr(62),
			HRV:           fptr(41.5),
		},
		{
			HighStress: true,
			SleepScore: fptr(88),
		},
	}

	days := JournalDayRecords(entries)

	require.Len(t, days, 2)
	assert.True(t, days[0].Alcohol)
	assert.True(t, days[0].Supplements)
	assert.False(t, days[0].LateMeal)
	require.NotNil(t, days[0].Recovery)
	assert.Equal(t, 62.0, *days[0].Recovery)
	assert.Nil(t, days[0].Sleep)

	assert.True(t, days[1].HighStress)
	require.NotNil(t, days[1].Sleep)
	assert.Equal(t, 88.0, *days[1].Sleep)
	assert.Nil(t, days[1].HRV)
}
