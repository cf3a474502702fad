package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recoveryDays(with, without []float64, factor Factor) []DayRecord {
	var days []DayRecord
	for _, v := range with {
		d := DayRecord{Recovery: fptr(v)}
		switch factor {
		case FactorAlcohol:
			d.Alcohol = true
		case FactorLateMeal:
			d.LateMeal = true
		case FactorHighStress:
			d.HighStress = true
		case FactorSupplements:
			d.Supplements = true
		}
		days = append(days, d)
	}
	for _, v := range without {
		days = append(days, DayRecord{Recovery: fptr(v)})
	}
	return days
}

func TestCompareFactor_AlcoholExample(t *testing.T) {
	// 4 alcohol days (60,62,58,61) vs 6 clean days (80,82,79,81,78,83).
	days := recoveryDays(
		[]float64{60, 62, 58, 61},
		[]float64{80, 82, 79, 81, 78, 83},
		FactorAlcohol,
	)

	c, err := CompareFactor(days, MetricRecovery, FactorAlcohol)
	require.NoError(t, err)

	assert.InDelta(t, 60.25, c.MeanWith, 1e-9)
	assert.InDelta(t, 80.5, c.MeanWithout, 1e-9)
	assert.InDelta(t, 20.25, c.Difference, 1e-9)
	assert.InDelta(t, 1.708, c.StdDevWith, 0.001)
	assert.True(t, c.Significant)
	assert.Equal(t, 4, c.SampleWith)
	assert.Equal(t, 6, c.SampleWithout)
	assert.InDelta(t, 20.25/80.5*100, c.StrengthPct, 1e-9)
}

func TestCompareFactor_InsufficientData(t *testing.T) {
	// Two days per group is below the threshold no matter the values.
	days := recoveryDays([]float64{10, 90}, []float64{20, 80}, FactorAlcohol)

	_, err := CompareFactor(days, MetricRecovery, FactorAlcohol)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestCompareFactor_OneSmallGroupIsStillInsufficient(t *testing.T) {
	days := recoveryDays([]float64{60, 62}, []float64{80, 81, 79, 82}, FactorAlcohol)

	_, err := CompareFactor(days, MetricRecovery, FactorAlcohol)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestCompareFactor_SkipsDaysWithoutMetric(t *testing.T) {
	days := recoveryDays([]float64{60, 62, 58}, []float64{80, 81, 79}, FactorAlcohol)
	days = append(days, DayRecord{Alcohol: true}) // no recovery value linked

	c, err := CompareFactor(days, MetricRecovery, FactorAlcohol)
	require.NoError(t, err)
	assert.Equal(t, 3, c.SampleWith)
}

func TestCompareFactor_SymmetricUnderNegation(t *testing.T) {
	days := recoveryDays(
		[]float64{60, 62, 58, 61},
		[]float64{80, 82, 79, 81},
		FactorAlcohol,
	)

	orig, err := CompareFactor(days, MetricRecovery, FactorAlcohol)
	require.NoError(t, err)

	flipped := make([]DayRecord, len(days))
	for i, d := range days {
		d.Alcohol = !d.Alcohol
		flipped[i] = d
	}
	neg, err := CompareFactor(flipped, MetricRecovery, FactorAlcohol)
	require.NoError(t, err)

	assert.InDelta(t, -orig.Difference, neg.Difference, 1e-9)
	assert.InDelta(t, orig.MeanWith, neg.MeanWithout, 1e-9)
	assert.InDelta(t, orig.MeanWithout, neg.MeanWith, 1e-9)
}

func TestCompareAll_RankedByStrength(t *testing.T) {
	days := recoveryDays(
		[]float64{60, 62, 58, 61},
		[]float64{80, 82, 79, 81, 78, 83},
		FactorAlcohol,
	)
	// Give the same days a weak late-meal split on the sleep metric.
	for i := range days {
		days[i].Sleep = fptr(75 + float64(i%3))
		days[i].LateMeal = i%2 == 0
	}

	out := CompareAll(days)
	require.NotEmpty(t, out)

	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].StrengthPct, out[i].StrengthPct)
	}
	// The strong alcohol/recovery split must rank first.
	assert.Equal(t, MetricRecovery, out[0].Metric)
	assert.Equal(t, FactorAlcohol, out[0].Factor)
}
