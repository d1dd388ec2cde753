package forecast

import (
	"slices"
	"strconv"
)

// Bucket is an urgency level. Levels 1 through 7 ramp from far before the
// forecast to far past it.
type Bucket int

// Bucket values.
const (
	BucketInactive Bucket = -1 // never completed
	BucketNew      Bucket = 0  // completed, but no interval recorded yet
	BucketEarly    Bucket = 1
	BucketSoon     Bucket = 2
	BucketNear     Bucket = 3
	BucketDue      Bucket = 4
	BucketLate     Bucket = 5
	BucketLater    Bucket = 6
	BucketOverdue  Bucket = 7
)

// Buckets lists every bucket in display order.
var Buckets = []Bucket{
	BucketOverdue, BucketLater, BucketLate, BucketDue,
	BucketNear, BucketSoon, BucketEarly, BucketNew, BucketInactive,
}

var bucketNames = map[Bucket]string{
	BucketInactive: "inactive",
	BucketNew:      "new",
	BucketEarly:    "early",
	BucketSoon:     "soon",
	BucketNear:     "near",
	BucketDue:      "due",
	BucketLate:     "late",
	BucketLater:    "later",
	BucketOverdue:  "overdue",
}

// String returns the bucket's short name.
func (b Bucket) String() string {
	if s, ok := bucketNames[b]; ok {
		return s
	}
	return strconv.Itoa(int(b))
}

// MarshalText encodes the bucket as its number so JSON consumers can rank it.
func (b Bucket) MarshalText() ([]byte, error) {
	return []byte(strconv.Itoa(int(b))), nil
}

// chebyshevK are the deviation multiples that bound buckets 1..7. Within
// k deviations lie at least 1 - 2/k² of the recorded intervals.
var chebyshevK = []int64{2, 3, 4}

// Boundaries returns the sorted bucket boundaries for a forecast, led by a
// 0 sentinel: nextDue-4·madLess, -3·, -2·, then nextDue+2·madMore, +3·, +4·.
func Boundaries(nextDue, madLess, madMore int64) []int64 {
	b := make([]int64, 0, 1+2*len(chebyshevK))
	b = append(b, 0)
	for _, k := range chebyshevK {
		b = append(b, nextDue-k*madLess, nextDue+k*madMore)
	}
	slices.Sort(b)
	return b
}

// Classify places now relative to a forecast. A chore without a forecast is
// BucketNew when it has been completed and BucketInactive otherwise. A
// moment exactly on a boundary belongs to the lower bucket. With zero
// deviations every boundary sits on nextDue, so the result is BucketEarly
// up to nextDue and BucketOverdue after it.
func Classify(now, nextDue, madLess, madMore int64, completed bool) Bucket {
	if nextDue == Unset {
		if completed {
			return BucketNew
		}
		return BucketInactive
	}

	bounds := Boundaries(nextDue, madLess, madMore)
	pos, _ := slices.BinarySearch(bounds, now)
	// Skip past sentinel duplicates so timestamps at or below 0 still land in the ramp.
	pos = max(pos, int(BucketEarly))
	return min(Bucket(pos), BucketOverdue)
}

// Bucket classifies now against f.
func (f Forecast) Bucket(now int64, completed bool) Bucket {
	return Classify(now, f.NextDue, f.MadLess, f.MadMore, completed)
}
