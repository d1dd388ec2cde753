package directory

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/twiced-technology-gmbh/choremate/internal/chore"
	"github.com/twiced-technology-gmbh/choremate/internal/clierr"
	"github.com/twiced-technology-gmbh/choremate/internal/duration"
)

var (
	seedVerbs   = []string{"water", "clean", "check", "refill", "sweep", "wash", "replace", "dust", "oil", "sort"}
	seedObjects = []string{
		"plants", "bird feeders", "gutters", "fridge", "garage", "windows", "car",
		"air filter", "bookshelves", "bike chain", "mail", "porch", "dog bed", "printer",
	}
)

// SeedOptions controls example data generation.
type SeedOptions struct {
	Count int
	Rand  *rand.Rand
}

// Seed creates Count example chores with histories drawn around a random
// mean interval, and returns their ids. Each chore is added and completed
// through the normal operations so its forecast is consistent.
func (d *Directory) Seed(opts SeedOptions) ([]int64, error) {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2)) //nolint:gosec // example data, not security sensitive
	}
	now := d.now()
	used := make(map[string]bool)
	var ids []int64

	for range opts.Count {
		name := seedName(rng, used)
		days := rng.IntN(14) + 1 //nolint:mnd // one to fourteen days
		hours := days + rng.IntN(7) //nolint:mnd // plus up to six hours
		mean := float64(int64(days)*duration.Day + int64(hours)*duration.Hour)
		mad := float64(int64(hours) * duration.Hour)
		n := rng.IntN(10) + 1 //nolint:mnd // one to ten completions

		intervals := make([]int64, n)
		var total int64
		for i := range intervals {
			intervals[i] = int64(math.Round(triangular(rng, mean-1.5*mad, mean+1.5*mad, mean)))
			total += intervals[i]
		}
		delay := time.Duration(rng.IntN(45)-24) * time.Hour //nolint:mnd // -24h to +20h
		start := now.Add(-time.Duration(total) * time.Second).Add(-delay)

		id, err := d.AddChore(name, start.Add(-24*time.Hour))
		for clierr.HasCode(err, clierr.DuplicateName) {
			id, err = d.AddChore(seedName(rng, used), start.Add(-24*time.Hour))
		}
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)

		at := start
		for i := 0; i < n && !at.After(now); i++ {
			if err := d.RecordCompletion(id, at, chore.DefaultNeeded()); err != nil {
				return ids, err
			}
			at = at.Add(time.Duration(intervals[i]) * time.Second)
		}
	}
	d.logMutation(ActionSeed, 0, fmt.Sprintf("%d chores", len(ids)))
	return ids, nil
}

func seedName(rng *rand.Rand, used map[string]bool) string {
	for attempt := 0; ; attempt++ {
		name := seedVerbs[rng.IntN(len(seedVerbs))] + " " + seedObjects[rng.IntN(len(seedObjects))]
		if attempt > 16 { //nolint:mnd // give up on random names after a few tries
			name = fmt.Sprintf("%s %d", name, attempt)
		}
		if !used[name] {
			used[name] = true
			return name
		}
	}
}

// triangular samples the triangular distribution on [low, high] with the given mode.
func triangular(rng *rand.Rand, low, high, mode float64) float64 {
	if high <= low {
		return low
	}
	u := rng.Float64()
	c := (mode - low) / (high - low)
	if u < c {
		return low + math.Sqrt(u*(high-low)*(mode-low))
	}
	return high - math.Sqrt((1-u)*(high-low)*(high-mode))
}
