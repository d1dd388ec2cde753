// Package duration parses and formats compact unit-suffix durations
// such as "1w2d3h27m". Values are signed integer seconds.
package duration

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/twiced-technology-gmbh/choremate/internal/clierr"
)

// Unit sizes in seconds.
const (
	Minute int64 = 60
	Hour         = 60 * Minute
	Day          = 24 * Hour
	Week         = 7 * Day
)

// pairRe matches one <integer><unit> pair.
var pairRe = regexp.MustCompile(`(\d+)\s*([wdhm])`)

var unitSeconds = map[string]int64{
	"w": Week,
	"d": Day,
	"h": Hour,
	"m": Minute,
}

// Parse sums every recognized <integer><unit> pair in s and returns the
// total in seconds. A leading '-' negates the result. Input containing no
// recognized pair is an InvalidDuration error.
func Parse(s string) (int64, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	sign := int64(1)
	switch {
	case strings.HasPrefix(in, "-"):
		sign = -1
		in = in[1:]
	case strings.HasPrefix(in, "+"):
		in = in[1:]
	}

	matches := pairRe.FindAllStringSubmatch(in, -1)
	if len(matches) == 0 {
		return 0, invalid(s, "expected pairs like 1w2d3h27m")
	}

	var total int64
	for _, m := range matches {
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, invalid(s, "number out of range")
		}
		total += n * unitSeconds[m[2]]
	}
	return sign * total, nil
}

func invalid(input, reason string) *clierr.Error {
	return clierr.Newf(clierr.InvalidDuration, "invalid duration %q: %s", input, reason).
		WithDetails(map[string]any{"input": input})
}

// Format renders seconds using every non-zero unit, e.g. "1w2d3h27m".
// Leftover seconds below a minute are dropped; zero renders as "0m".
func Format(seconds int64) string {
	return format(seconds, 0)
}

// FormatShort renders only the two largest non-zero units, e.g. "1w2d".
func FormatShort(seconds int64) string {
	return format(seconds, 2) //nolint:mnd // two most significant units
}

func format(seconds int64, limit int) string {
	var b strings.Builder
	if seconds < 0 {
		b.WriteByte('-')
		seconds = -seconds
	}

	parts := 0
	for _, u := range []struct {
		size   int64
		suffix byte
	}{{Week, 'w'}, {Day, 'd'}, {Hour, 'h'}, {Minute, 'm'}} {
		if limit > 0 && parts == limit {
			break
		}
		n := seconds / u.size
		if n == 0 {
			continue
		}
		seconds -= n * u.size
		b.WriteString(strconv.FormatInt(n, 10))
		b.WriteByte(u.suffix)
		parts++
	}

	if parts == 0 {
		return "0m"
	}
	return b.String()
}
