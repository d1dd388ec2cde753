package directory

import (
	"strings"

	"github.com/twiced-technology-gmbh/choremate/internal/forecast"
)

// FilterOptions defines which rows to include.
type FilterOptions struct {
	Search    string           // case-insensitive substring match on the name
	MinBucket *forecast.Bucket // nil=no filter, else only rows at least this urgent
}

func matchesFilter(r Row, opts FilterOptions) bool {
	if opts.Search != "" && !strings.Contains(strings.ToLower(r.Name), strings.ToLower(opts.Search)) {
		return false
	}
	if opts.MinBucket != nil && r.Bucket < *opts.MinBucket {
		return false
	}
	return true
}

// BucketCount holds the number of rows in one urgency bucket.
type BucketCount struct {
	Bucket  forecast.Bucket `json:"bucket"`
	Urgency string          `json:"urgency"`
	Count   int             `json:"count"`
}

// Overview summarizes a listing per urgency bucket, most urgent first.
type Overview struct {
	Total   int           `json:"total"`
	Buckets []BucketCount `json:"buckets"`
}

// Summary counts the rows of l in each bucket.
func Summary(l *Listing) Overview {
	counts := make(map[forecast.Bucket]int, len(forecast.Buckets))
	for _, r := range l.Rows {
		counts[r.Bucket]++
	}
	out := Overview{
		Total:   len(l.Rows),
		Buckets: make([]BucketCount, 0, len(forecast.Buckets)),
	}
	for _, b := range forecast.Buckets {
		out.Buckets = append(out.Buckets, BucketCount{Bucket: b, Urgency: b.String(), Count: counts[b]})
	}
	return out
}
