// Package forecast turns a chore's interval history into a predicted due
// time and classifies a moment against that prediction.
//
// All values are integer seconds; timestamps are unix seconds where 0 means
// unset. The package does no I/O.
package forecast

// Unset is the timestamp value meaning "no value recorded".
const Unset int64 = 0

// minSpreadSamples is the number of intervals needed before one-sided
// deviations are computed.
const minSpreadSamples = 3

// Forecast holds the derived state of a chore.
type Forecast struct {
	MeanInterval int64 `json:"mean_interval"`
	MadLess      int64 `json:"mad_less"`
	MadMore      int64 `json:"mad_more"`
	NextDue      int64 `json:"next_due"`
}

// HasNextDue reports whether a next-due time was forecast.
func (f Forecast) HasNextDue() bool { return f.NextDue != Unset }

// Recompute derives mean interval, one-sided mean absolute deviations, and
// next-due time from the full interval history. An empty history yields a
// zero Forecast. Means are rounded half away from zero.
func Recompute(intervals []int64, completionTime int64) Forecast {
	n := int64(len(intervals))
	if n == 0 {
		return Forecast{}
	}

	var sum int64
	for _, iv := range intervals {
		sum += iv
	}
	mean := roundDiv(sum, n)
	f := Forecast{
		MeanInterval: mean,
		NextDue:      completionTime + mean,
	}
	if n < minSpreadSamples {
		return f
	}

	var above, below, nAbove, nBelow int64
	for _, iv := range intervals {
		switch {
		case iv > mean:
			above += iv - mean
			nAbove++
		case iv < mean:
			below += mean - iv
			nBelow++
		}
	}
	if nAbove > 0 {
		f.MadMore = roundDiv(above, nAbove)
	}
	if nBelow > 0 {
		f.MadLess = roundDiv(below, nBelow)
	}
	return f
}

// roundDiv divides sum by n (n > 0) rounding to the nearest integer, with
// exact halves rounded away from zero.
func roundDiv(sum, n int64) int64 {
	q, r := sum/n, sum%n
	if r < 0 {
		r = -r
	}
	if 2*r >= n {
		if sum < 0 {
			q--
		} else {
			q++
		}
	}
	return q
}

// Spread is the width shown next to a forecast: twice the deviation on the
// side of nextDue that now falls on. At least half of the recorded
// intervals lie within it.
func (f Forecast) Spread(now int64) int64 {
	if now < f.NextDue {
		return 2 * f.MadLess //nolint:mnd // k = 2 window
	}
	return 2 * f.MadMore //nolint:mnd // k = 2 window
}
