package chore

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/twiced-technology-gmbh/choremate/internal/clierr"
)

// MaxNameLength bounds chore names.
const MaxNameLength = 200

// NormalizeName trims surrounding whitespace from a chore name.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// ValidateName checks that a normalized name is non-empty, single-line and
// within MaxNameLength.
func ValidateName(name string) error {
	if name == "" {
		return clierr.New(clierr.InvalidName, "chore name must not be empty")
	}
	if len([]rune(name)) > MaxNameLength {
		return clierr.Newf(clierr.InvalidName, "chore name longer than %d characters", MaxNameLength).
			WithDetails(map[string]any{"name": name})
	}
	if strings.IndexFunc(name, unicode.IsControl) >= 0 {
		return clierr.Newf(clierr.InvalidName, "chore name %q contains control characters", name).
			WithDetails(map[string]any{"name": name})
	}
	return nil
}

// ValidateDate returns a CLIError for invalid datetime input.
func ValidateDate(field, input string, err error) *clierr.Error {
	return clierr.Newf(clierr.InvalidDate, "invalid %s datetime: %v", field, err).
		WithDetails(map[string]any{
			"field": field,
			"input": input,
		})
}

// DuplicateName returns a CLIError for a name held by another chore.
func DuplicateName(name string) *clierr.Error {
	return clierr.Newf(clierr.DuplicateName, "a chore named %q already exists", name).
		WithDetails(map[string]any{"name": name})
}

// NotFound returns a CLIError for a chore id with no live record.
func NotFound(id int64) *clierr.Error {
	return clierr.Newf(clierr.ChoreNotFound, "chore not found: #%d", id).
		WithDetails(map[string]any{"id": id})
}

// IntervalNotFound returns a CLIError for an interval id with no live record.
func IntervalNotFound(id int64) *clierr.Error {
	return clierr.Newf(clierr.IntervalNotFound, "interval not found: #%d", id).
		WithDetails(map[string]any{"id": id})
}

// ParseID parses a "#12" or "12" chore reference.
func ParseID(input string) (int64, bool) {
	s := strings.TrimPrefix(strings.TrimSpace(input), "#")
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
