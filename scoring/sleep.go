package scoring

import (
	"math"
	"time"
)

// Component weights. They sum to 100; when a component can't be computed its
// weight is redistributed proportionally across the rest.
const (
	sleepQualityWeight    = 45.0
	sleepEfficiencyWeight = 35.0
	sleepTimingWeight     = 20.0
)

// Deep and REM ideal bands, as a percentage of total sleep.
const (
	deepIdealLo = 13.0
	deepIdealHi = 23.0
	remIdealLo  = 18.0
	remIdealHi  = 27.0
	stageSlope  = 6.0 // points lost per percentage point outside the band
)

const (
	efficiencyFloor   = 0.70 // scores 0
	efficiencyTarget  = 0.95 // scores 100
	defaultSleepNeed  = 450.0 // minutes, used when no personal baseline exists
	bedtimeGraceMin   = 30.0  // deviation within this costs nothing
	bedtimeZeroAtMin  = 150.0 // deviation at which the timing score hits 0
	fullHRDipPct      = 10.0  // overnight HR dip considered fully restorative
)

// SleepInputs are the raw readings for one night. Nil means "not reported".
type SleepInputs struct {
	TimeAsleepMin   *float64
	DeepSleepPct    *float64
	RemSleepPct     *float64
	SleepEfficiency *float64 // 0..1
	HeartRateDipPct *float64
	Bedtime         *time.Time
	WakeTime        *time.Time
}

// SleepScoreResult is the computed breakdown for one night.
type SleepScoreResult struct {
	FinalScore int `json:"final_score"`

	// Component scores are nil when that component had no inputs.
	QualityScore    *int `json:"quality_score"`
	EfficiencyScore *int `json:"efficiency_score"`
	TimingScore     *int `json:"timing_score"`

	Findings []Finding `json:"findings"`
}

// ComputeSleepScore scores one night 0-100 from whatever inputs are present.
// Returns ErrNoData when no component can be computed at all.
func ComputeSleepScore(in SleepInputs, baseline Baseline) (*SleepScoreResult, error) {
	quality := restorativeQuality(in)
	efficiency := efficiencyDuration(in, baseline)
	timing := timingConsistency(in, baseline)

	final, ok := weightedComposite(
		[]*float64{quality, efficiency, timing},
		[]float64{sleepQualityWeight, sleepEfficiencyWeight, sleepTimingWeight},
	)
	if !ok {
		return nil, ErrNoData
	}

	res := &SleepScoreResult{FinalScore: roundScore(final)}

	if quality != nil {
		s := roundScore(*quality)
		res.QualityScore = &s
		res.Findings = append(res.Findings, componentFinding(
			"sleep_quality", "Restorative quality",
			"Deep and REM sleep were below their ideal ranges.", s))
	}
	if efficiency != nil {
		s := roundScore(*efficiency)
		res.EfficiencyScore = &s
		res.Findings = append(res.Findings, componentFinding(
			"sleep_efficiency", "Efficiency & duration",
			"You spent a large share of the night awake or slept well short of your need.", s))
	}
	if timing != nil {
		s := roundScore(*timing)
		res.TimingScore = &s
		res.Findings = append(res.Findings, componentFinding(
			"sleep_timing", "Timing & consistency",
			"Bedtime drifted well away from your usual schedule.", s))
	}

	return res, nil
}

// restorativeQuality averages the deep%, REM% and overnight HR dip sub-scores
// over whichever of them were reported. Nil when none were.
func restorativeQuality(in SleepInputs) *float64 {
	var parts []float64
	if in.DeepSleepPct != nil {
		parts = append(parts, bandScore(*in.DeepSleepPct, deepIdealLo, deepIdealHi, stageSlope))
	}
	if in.RemSleepPct != nil {
		parts = append(parts, bandScore(*in.RemSleepPct, remIdealLo, remIdealHi, stageSlope))
	}
	if in.HeartRateDipPct != nil {
		parts = append(parts, rampScore(*in.HeartRateDipPct, 0, fullHRDipPct))
	}
	if len(parts) == 0 {
		return nil
	}
	s := mean(parts)
	return &s
}

// efficiencyDuration blends sleep efficiency (60%) with time asleep versus
// the personal baseline need (40%). Either half can stand alone.
func efficiencyDuration(in SleepInputs, baseline Baseline) *float64 {
	var effScore, durScore *float64
	if in.SleepEfficiency != nil {
		s := rampScore(*in.SleepEfficiency, efficiencyFloor, efficiencyTarget)
		effScore = &s
	}
	if in.TimeAsleepMin != nil {
		need := baseline.TimeAsleepMin
		if need <= 0 {
			need = defaultSleepNeed
		}
		s := clampScore(*in.TimeAsleepMin / need * 100)
		durScore = &s
	}
	switch {
	case effScore != nil && durScore != nil:
		s := 0.6**effScore + 0.4**durScore
		return &s
	case effScore != nil:
		return effScore
	case durScore != nil:
		return durScore
	default:
		return nil
	}
}

// timingConsistency scores bedtime deviation from the rolling baseline
// bedtime. Needs both a reported bedtime and baseline history.
func timingConsistency(in SleepInputs, baseline Baseline) *float64 {
	if in.Bedtime == nil || baseline.BedtimeMinutes <= 0 {
		return nil
	}
	dev := math.Abs(MinutesAfterNoon(*in.Bedtime) - baseline.BedtimeMinutes)
	if dev <= bedtimeGraceMin {
		s := 100.0
		return &s
	}
	s := clampScore(100 - (dev-bedtimeGraceMin)*(100/(bedtimeZeroAtMin-bedtimeGraceMin)))
	return &s
}

// MinutesAfterNoon maps a clock time onto a scale that keeps typical
// bedtimes (evening through early morning) contiguous: 22:30 -> 630,
// 00:30 -> 750. Averaging raw minutes-after-midnight across a midnight
// crossing produces nonsense; this normalization avoids that.
func MinutesAfterNoon(t time.Time) float64 {
	m := float64(t.Hour()*60 + t.Minute())
	if m < 720 {
		m += 1440
	}
	return m - 720
}
