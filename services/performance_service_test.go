package services

import (
	"testing"
	"time"

	"github.com/benasja/workout-sub000/models"
	"github.com/benasja/workout-sub000/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A sample carrying HRV but no sleep fields must persist a nil sleep score,
// not a zero, all the way into the correlation comparator's view.
func TestRecoveryOnlyDayKeepsSleepScoreNil(t *testing.T) {
	sample := &models.BiometricSample{HRV: fptr(48)}
	baseline := scoring.Baseline{HRV: 50, RHR: 60, Days: 14}

	sleepRes, err := scoring.ComputeSleepScore(SleepInputsFromSample(sample), baseline)
	require.ErrorIs(t, err, scoring.ErrNoData)
	require.Nil(t, sleepRes)

	recRes, err := scoring.ComputeRecoveryScore(scoring.RecoveryInputs{HRV: sample.HRV}, baseline)
	require.NoError(t, err)

	perf := buildPerformance(1, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), sample, sleepRes, recRes)

	require.NotNil(t, perf.RecoveryScore)
	assert.Nil(t, perf.SleepScore)
	assert.Nil(t, perf.QualityScore)

	var entry models.JournalEntry
	snapshotScores(&entry, &perf)
	require.NotNil(t, entry.RecoveryScore)
	assert.Nil(t, entry.SleepScore)

	days := JournalDayRecords([]models.JournalEntry{entry})
	require.Len(t, days, 1)
	require.NotNil(t, days[0].Recovery)
	assert.Nil(t, days[0].Sleep)
}

// A clamped 0 from the scorer is a real observation and must survive as 0,
// distinguishable from the nil of an unscored day.
func TestClampedZeroScoreStaysZero(t *testing.T) {
	baseline := scoring.Baseline{HRV: 50, RHR: 60, Days: 14}
	recRes, err := scoring.ComputeRecoveryScore(scoring.RecoveryInputs{HRV: fptr(10), RHR: fptr(110)}, baseline)
	require.NoError(t, err)
	require.Equal(t, 0, recRes.FinalScore)

	perf := buildPerformance(1, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), &models.BiometricSample{}, nil, recRes)
	require.NotNil(t, perf.RecoveryScore)
	assert.Equal(t, 0, *perf.RecoveryScore)

	var entry models.JournalEntry
	snapshotScores(&entry, &perf)
	require.NotNil(t, entry.RecoveryScore)
	assert.Equal(t, 0.0, *entry.RecoveryScore)
}

func TestDayFindingsFlattensBothScorers(t *testing.T) {
	baseline := scoring.Baseline{HRV: 50, RHR: 60, Days: 14}

	sleepRes, err := scoring.ComputeSleepScore(SleepInputsFromSample(&models.BiometricSample{
		TimeAsleepMin:   fptr(460),
		SleepEfficiency: fptr(0.93),
	}), baseline)
	require.NoError(t, err)
	recRes, err := scoring.ComputeRecoveryScore(scoring.RecoveryInputs{HRV: fptr(50), RHR: fptr(60)}, baseline)
	require.NoError(t, err)

	msgs := dayFindings(sleepRes, recRes)
	assert.Equal(t, len(sleepRes.Findings)+len(recRes.Findings), len(msgs))
	for _, m := range msgs {
		assert.NotEmpty(t, m)
	}

	assert.Empty(t, dayFindings(nil, nil))
}

func TestScoredPayloadShape(t *testing.T) {
	score := 77
	perf := &models.DailyPerformance{UserID: 1, RecoveryScore: &score}

	payload := scoredPayload(perf, []string{"Readiness was good (77/100)."})

	assert.Equal(t, "performance.scored", payload["kind"])
	assert.Same(t, perf, payload["performance"])
	assert.Len(t, payload["findings"], 1)
}
