package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iptr(v int) *int { return &v }

func TestComputeRecoveryScore_AtBaseline(t *testing.T) {
	baseline := Baseline{HRV: 50, RHR: 60, Days: 14}
	in := RecoveryInputs{
		HRV:        fptr(50),
		RHR:        fptr(60),
		SleepScore: iptr(90),
	}

	res, err := ComputeRecoveryScore(in, baseline)
	require.NoError(t, err)

	require.NotNil(t, res.HRVScore)
	assert.Equal(t, 80, *res.HRVScore) // 1.0x baseline sits at 80/100
	require.NotNil(t, res.RHRScore)
	assert.Equal(t, 71, *res.RHRScore)
	require.NotNil(t, res.SleepScore)
	assert.Equal(t, 90, *res.SleepScore)

	// 80*0.50 + 71.43*0.25 + 90*0.25 ~= 80.4
	assert.Equal(t, 80, res.FinalScore)

	require.NotNil(t, res.HRVDelta)
	assert.InDelta(t, 0, *res.HRVDelta, 1e-9)
	require.NotNil(t, res.RHRDelta)
	assert.InDelta(t, 0, *res.RHRDelta, 1e-9)
}

func TestComputeRecoveryScore_SuppressedReadiness(t *testing.T) {
	baseline := Baseline{HRV: 60, RHR: 55, Days: 14}
	in := RecoveryInputs{
		HRV:        fptr(38), // ~0.63x baseline
		RHR:        fptr(66), // 1.2x baseline
		SleepScore: iptr(45),
	}

	res, err := ComputeRecoveryScore(in, baseline)
	require.NoError(t, err)

	assert.Less(t, res.FinalScore, 40)
	require.NotNil(t, res.HRVDelta)
	assert.InDelta(t, -22, *res.HRVDelta, 1e-9)

	// The HRV finding should carry the caution advice.
	var hrvFinding *Finding
	for i := range res.Findings {
		if res.Findings[i].Code == "recovery_hrv" {
			hrvFinding = &res.Findings[i]
		}
	}
	require.NotNil(t, hrvFinding)
	assert.Equal(t, Caution, hrvFinding.Severity)
}

func TestComputeRecoveryScore_NoBaselineDropsRatioComponents(t *testing.T) {
	// With no baseline history the HRV/RHR ratios are meaningless; the
	// whole weight shifts onto last night's sleep.
	in := RecoveryInputs{
		HRV:        fptr(55),
		RHR:        fptr(58),
		SleepScore: iptr(72),
	}

	res, err := ComputeRecoveryScore(in, Baseline{})
	require.NoError(t, err)

	assert.Nil(t, res.HRVScore)
	assert.Nil(t, res.RHRScore)
	assert.Equal(t, 72, res.FinalScore)
}

func TestComputeRecoveryScore_NoData(t *testing.T) {
	_, err := ComputeRecoveryScore(RecoveryInputs{}, Baseline{HRV: 50, RHR: 60})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestComputeRecoveryScore_Clamped(t *testing.T) {
	baseline := Baseline{HRV: 50, RHR: 60, Days: 14}

	high, err := ComputeRecoveryScore(RecoveryInputs{HRV: fptr(120), RHR: fptr(40)}, baseline)
	require.NoError(t, err)
	assert.Equal(t, 100, high.FinalScore)

	low, err := ComputeRecoveryScore(RecoveryInputs{HRV: fptr(10), RHR: fptr(110)}, baseline)
	require.NoError(t, err)
	assert.Equal(t, 0, low.FinalScore)
}
