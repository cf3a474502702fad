package scoring

import (
	"math"
	"sort"
)

// Metric is a journal-linked daily metric that can be compared across groups.
type Metric string

const (
	MetricRecovery Metric = "recovery"
	MetricSleep    Metric = "sleep"
	MetricHRV      Metric = "hrv"
	MetricRHR      Metric = "rhr"
)

// Factor is a boolean lifestyle flag from the daily journal.
type Factor string

const (
	FactorAlcohol     Factor = "alcohol"
	FactorLateMeal    Factor = "late_meal"
	FactorHighStress  Factor = "high_stress"
	FactorSupplements Factor = "supplements"
)

var (
	AllMetrics = []Metric{MetricRecovery, MetricSleep, MetricHRV, MetricRHR}
	AllFactors = []Factor{FactorAlcohol, FactorLateMeal, FactorHighStress, FactorSupplements}
)

// MinGroupSize is the minimum qualifying days each group needs before a
// comparison is reported.
const MinGroupSize = 3

// DayRecord is one journal day flattened for comparison. Nil metric values
// mean that day had no linked score for the metric.
type DayRecord struct {
	Recovery *float64
	Sleep    *float64
	HRV      *float64
	RHR      *float64

	Alcohol     bool
	LateMeal    bool
	HighStress  bool
	Supplements bool
}

func (d DayRecord) metricValue(m Metric) *float64 {
	switch m {
	case MetricRecovery:
		return d.Recovery
	case MetricSleep:
		return d.Sleep
	case MetricHRV:
		return d.HRV
	case MetricRHR:
		return d.RHR
	}
	return nil
}

func (d DayRecord) hasFactor(f Factor) bool {
	switch f {
	case FactorAlcohol:
		return d.Alcohol
	case FactorLateMeal:
		return d.LateMeal
	case FactorHighStress:
		return d.HighStress
	case FactorSupplements:
		return d.Supplements
	}
	return false
}

// FactorComparison quantifies how a metric differs on factor days versus
// factor-free days.
type FactorComparison struct {
	Metric Metric `json:"metric"`
	Factor Factor `json:"factor"`

	MeanWith    float64 `json:"mean_with"`
	MeanWithout float64 `json:"mean_without"`

	// Difference is meanWithout - meanWith: positive means the metric was
	// higher on days without the factor.
	Difference  float64 `json:"difference"`
	StdDevWith  float64 `json:"stddev_with"`
	StrengthPct float64 `json:"strength_pct"`

	// Significant uses the product's heuristic: |difference| exceeds one
	// sample standard deviation of the with-factor group. Deliberately not
	// a formal test.
	Significant bool `json:"significant"`

	SampleWith    int `json:"sample_with"`
	SampleWithout int `json:"sample_without"`
}

// CompareFactor partitions days by the factor, requiring MinGroupSize
// qualifying days (metric present) in each group. ErrInsufficientData
// otherwise, never an unstable statistic.
func CompareFactor(days []DayRecord, metric Metric, factor Factor) (*FactorComparison, error) {
	var with, without []float64
	for _, d := range days {
		v := d.metricValue(metric)
		if v == nil {
			continue
		}
		if d.hasFactor(factor) {
			with = append(with, *v)
		} else {
			without = append(without, *v)
		}
	}
	if len(with) < MinGroupSize || len(without) < MinGroupSize {
		return nil, ErrInsufficientData
	}

	meanWith := mean(with)
	meanWithout := mean(without)
	diff := meanWithout - meanWith
	sd := stdDev(with)

	denom := math.Max(meanWith, meanWithout)
	strength := 0.0
	if denom != 0 {
		strength = math.Abs(diff) / denom * 100
	}

	return &FactorComparison{
		Metric:        metric,
		Factor:        factor,
		MeanWith:      meanWith,
		MeanWithout:   meanWithout,
		Difference:    diff,
		StdDevWith:    sd,
		StrengthPct:   strength,
		Significant:   math.Abs(diff) > sd,
		SampleWith:    len(with),
		SampleWithout: len(without),
	}, nil
}

// CompareAll runs every metric x factor combination and returns the ones
// with enough data, ranked by correlation strength descending.
func CompareAll(days []DayRecord) []FactorComparison {
	var out []FactorComparison
	for _, m := range AllMetrics {
		for _, f := range AllFactors {
			c, err := CompareFactor(days, m, f)
			if err != nil {
				continue
			}
			out = append(out, *c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StrengthPct > out[j].StrengthPct
	})
	return out
}
