package scoring

// Recovery component weights. HRV dominates, as in the source product.
const (
	recoveryHRVWeight   = 50.0
	recoveryRHRWeight   = 25.0
	recoverySleepWeight = 25.0
)

// HRV ratio (today / baseline) mapping: 0.60x scores 0, 1.10x scores 100.
const (
	hrvRatioZero = 0.60
	hrvRatioFull = 1.10
)

// RHR ratio mapping, inverted: 1.25x baseline scores 0, 0.90x scores 100.
const (
	rhrRatioZero = 1.25
	rhrRatioFull = 0.90
)

type RecoveryInputs struct {
	HRV        *float64
	RHR        *float64
	SleepScore *int // last night's sleep score, when available
}

type RecoveryScoreResult struct {
	FinalScore int `json:"final_score"`

	HRVScore   *int `json:"hrv_score"`
	RHRScore   *int `json:"rhr_score"`
	SleepScore *int `json:"sleep_score"`

	// Raw deltas versus the baseline, for display.
	HRVDelta *float64 `json:"hrv_delta"`
	RHRDelta *float64 `json:"rhr_delta"`

	Findings []Finding `json:"findings"`
}

// ComputeRecoveryScore scores readiness 0-100 from HRV and RHR relative to
// the personal baseline, plus last night's sleep score. Components without
// inputs (or without baseline history, for the ratio components) drop out
// and their weight redistributes. ErrNoData when nothing is computable.
func ComputeRecoveryScore(in RecoveryInputs, baseline Baseline) (*RecoveryScoreResult, error) {
	var hrvScore, rhrScore, sleepScore *float64

	if in.HRV != nil && baseline.HRV > 0 {
		s := rampScore(*in.HRV/baseline.HRV, hrvRatioZero, hrvRatioFull)
		hrvScore = &s
	}
	if in.RHR != nil && baseline.RHR > 0 {
		s := rampScore(*in.RHR/baseline.RHR, rhrRatioZero, rhrRatioFull)
		rhrScore = &s
	}
	if in.SleepScore != nil {
		s := clampScore(float64(*in.SleepScore))
		sleepScore = &s
	}

	final, ok := weightedComposite(
		[]*float64{hrvScore, rhrScore, sleepScore},
		[]float64{recoveryHRVWeight, recoveryRHRWeight, recoverySleepWeight},
	)
	if !ok {
		return nil, ErrNoData
	}

	res := &RecoveryScoreResult{FinalScore: roundScore(final)}

	if hrvScore != nil {
		s := roundScore(*hrvScore)
		res.HRVScore = &s
		d := *in.HRV - baseline.HRV
		res.HRVDelta = &d
		res.Findings = append(res.Findings, componentFinding(
			"recovery_hrv", "Heart rate variability",
			"HRV is well below your baseline; consider an easier day.", s))
	}
	if rhrScore != nil {
		s := roundScore(*rhrScore)
		res.RHRScore = &s
		d := *in.RHR - baseline.RHR
		res.RHRDelta = &d
		res.Findings = append(res.Findings, componentFinding(
			"recovery_rhr", "Resting heart rate",
			"Resting heart rate is elevated versus your baseline.", s))
	}
	if sleepScore != nil {
		s := roundScore(*sleepScore)
		res.SleepScore = &s
		res.Findings = append(res.Findings, componentFinding(
			"recovery_sleep", "Last night's sleep",
			"Poor sleep is weighing on today's readiness.", s))
	}

	return res, nil
}
