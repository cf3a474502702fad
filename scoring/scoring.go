// Package scoring holds the pure calculators behind the daily recovery and
// sleep scores, the journal correlation comparator, and the nutrition goal
// math. Everything here is side-effect free: callers load the inputs, the
// functions either return a result or a typed "not enough data" error.
package scoring

import (
	"errors"
	"math"
)

var (
	// ErrNoData means none of the inputs needed for a score were present.
	// Callers must surface a "no data" state instead of a fabricated score.
	ErrNoData = errors.New("no biometric data available for scoring")

	// ErrInsufficientData means a comparison group had fewer qualifying
	// days than the minimum sample size.
	ErrInsufficientData = errors.New("insufficient data for comparison")
)

// Baseline is the rolling personal average used to normalize raw readings.
// Zero-value fields mean "no history for this metric".
type Baseline struct {
	HRV            float64 // ms
	RHR            float64 // bpm
	TimeAsleepMin  float64
	BedtimeMinutes float64 // minutes after noon, see minutesAfterNoon
	Days           int     // how many days of history produced this baseline
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func roundScore(v float64) int { return int(math.Round(clampScore(v))) }

// bandScore gives 100 inside [lo, hi] and falls off linearly outside,
// losing `slope` points per unit of distance from the band.
func bandScore(v, lo, hi, slope float64) float64 {
	switch {
	case v < lo:
		return clampScore(100 - (lo-v)*slope)
	case v > hi:
		return clampScore(100 - (v-hi)*slope)
	default:
		return 100
	}
}

// rampScore maps v linearly from 0 at `zero` to 100 at `full`, clamped.
// zero > full gives an inverted ramp (lower is better).
func rampScore(v, zero, full float64) float64 {
	if zero == full {
		return 0
	}
	return clampScore((v - zero) / (full - zero) * 100)
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// sample (n-1) standard deviation
func stdDev(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	m := mean(vals)
	var ss float64
	for _, v := range vals {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(vals)-1))
}

// weightedComposite combines component scores with fixed weights, dropping
// absent components and redistributing their weight proportionally. The
// second return is false when every component was absent.
func weightedComposite(scores []*float64, weights []float64) (float64, bool) {
	var sum, wsum float64
	for i, s := range scores {
		if s == nil {
			continue
		}
		sum += *s * weights[i]
		wsum += weights[i]
	}
	if wsum == 0 {
		return 0, false
	}
	return sum / wsum, true
}
