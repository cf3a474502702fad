package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func TestComputeSleepScore_GoodNight(t *testing.T) {
	// Worked example: efficiency 0.92, deep 18%, REM 22%, no HR dip data.
	in := SleepInputs{
		SleepEfficiency: fptr(0.92),
		DeepSleepPct:    fptr(18),
		RemSleepPct:     fptr(22),
	}

	res, err := ComputeSleepScore(in, Baseline{})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, res.FinalScore, 70)
	assert.LessOrEqual(t, res.FinalScore, 100)

	require.NotNil(t, res.QualityScore)
	assert.Equal(t, 100, *res.QualityScore) // both stages inside their ideal bands
	require.NotNil(t, res.EfficiencyScore)
	assert.Equal(t, 88, *res.EfficiencyScore)
	assert.Nil(t, res.TimingScore) // no bedtime reported

	assert.Len(t, res.Findings, 2)
}

func TestComputeSleepScore_WeightsSumWhenAllPresent(t *testing.T) {
	bed := time.Date(2025, 3, 10, 22, 30, 0, 0, time.Local)
	in := SleepInputs{
		SleepEfficiency: fptr(0.95),
		TimeAsleepMin:   fptr(450),
		DeepSleepPct:    fptr(18),
		RemSleepPct:     fptr(22),
		HeartRateDipPct: fptr(12),
		Bedtime:         &bed,
	}
	baseline := Baseline{
		TimeAsleepMin:  450,
		BedtimeMinutes: MinutesAfterNoon(bed),
		Days:           14,
	}

	res, err := ComputeSleepScore(in, baseline)
	require.NoError(t, err)

	// Every component maxed out: the 45/35/20 weights must recombine to 100.
	require.NotNil(t, res.QualityScore)
	require.NotNil(t, res.EfficiencyScore)
	require.NotNil(t, res.TimingScore)
	assert.Equal(t, 100, *res.QualityScore)
	assert.Equal(t, 100, *res.EfficiencyScore)
	assert.Equal(t, 100, *res.TimingScore)
	assert.Equal(t, 100, res.FinalScore)
}

func TestComputeSleepScore_NoData(t *testing.T) {
	_, err := ComputeSleepScore(SleepInputs{}, Baseline{})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestComputeSleepScore_ClampedAtZero(t *testing.T) {
	in := SleepInputs{
		SleepEfficiency: fptr(0.40),
		DeepSleepPct:    fptr(2),
		RemSleepPct:     fptr(4),
		TimeAsleepMin:   fptr(90),
	}

	res, err := ComputeSleepScore(in, Baseline{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.FinalScore, 0)
	assert.LessOrEqual(t, res.FinalScore, 100)
	require.NotNil(t, res.EfficiencyScore)
	assert.Less(t, *res.EfficiencyScore, bandFair)
}

func TestComputeSleepScore_TimingDrift(t *testing.T) {
	usual := time.Date(2025, 3, 1, 22, 30, 0, 0, time.Local)
	baseline := Baseline{BedtimeMinutes: MinutesAfterNoon(usual), Days: 14}

	cases := []struct {
		name    string
		bedtime time.Time
		want    int
	}{
		{"on schedule", time.Date(2025, 3, 10, 22, 45, 0, 0, time.Local), 100},
		{"within grace", time.Date(2025, 3, 10, 23, 0, 0, 0, time.Local), 100},
		{"one hour late", time.Date(2025, 3, 10, 23, 30, 0, 0, time.Local), 75},
		{"way off", time.Date(2025, 3, 11, 2, 0, 0, 0, time.Local), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bed := tc.bedtime
			res, err := ComputeSleepScore(SleepInputs{
				SleepEfficiency: fptr(0.90),
				Bedtime:         &bed,
			}, baseline)
			require.NoError(t, err)
			require.NotNil(t, res.TimingScore)
			assert.Equal(t, tc.want, *res.TimingScore)
		})
	}
}

func TestMinutesAfterNoon_CrossesMidnight(t *testing.T) {
	before := time.Date(2025, 3, 10, 23, 30, 0, 0, time.Local)
	after := time.Date(2025, 3, 11, 0, 30, 0, 0, time.Local)

	// 23:30 and 00:30 must be 60 minutes apart, not 23 hours.
	assert.InDelta(t, 60, MinutesAfterNoon(after)-MinutesAfterNoon(before), 1e-9)
}
