// Package tag assigns short base-26 letter codes to the rows of one
// ordered listing so they can be selected from the keyboard.
//
// Codes use the digits 'a'..'z', most significant first, padded with 'a'
// to a uniform width. A Mapping is only valid for the listing it was built
// from; rebuild it after every re-sort or mutation.
package tag

import (
	"fmt"
	"strings"
)

const base = 26

// Width returns the code width needed to tag n rows: 1 up to 26 rows,
// 2 up to 676, 3 up to 17576, and so on.
func Width(n int) int {
	w, capacity := 1, base
	for n > capacity {
		w++
		capacity *= base
	}
	return w
}

// Encode converts a zero-based position into a code of the given width.
func Encode(pos, width int) string {
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte('a' + pos%base)
		pos /= base
	}
	return string(buf)
}

// Decode converts a code back into its zero-based position.
func Decode(code string) (int, error) {
	if code == "" {
		return 0, fmt.Errorf("empty tag")
	}
	pos := 0
	for _, r := range code {
		if r < 'a' || r > 'z' {
			return 0, fmt.Errorf("invalid tag %q: letters a-z only", code)
		}
		pos = pos*base + int(r-'a')
	}
	return pos, nil
}

// Mapping is a bijection between the codes of one listing and the ids of
// its rows, in listing order.
type Mapping struct {
	width int
	ids   []int64
	index map[int64]int
}

// Allocate tags ids in the order given.
func Allocate(ids []int64) Mapping {
	m := Mapping{
		width: Width(len(ids)),
		ids:   append([]int64(nil), ids...),
		index: make(map[int64]int, len(ids)),
	}
	for i, id := range m.ids {
		m.index[id] = i
	}
	return m
}

// Width returns the uniform code width of the listing.
func (m Mapping) Width() int { return m.width }

// Len returns the number of tagged rows.
func (m Mapping) Len() int { return len(m.ids) }

// At returns the code assigned to the row at position i.
func (m Mapping) At(i int) string { return Encode(i, m.width) }

// Tag returns the code assigned to id.
func (m Mapping) Tag(id int64) (string, bool) {
	i, ok := m.index[id]
	if !ok {
		return "", false
	}
	return m.At(i), true
}

// Resolve returns the id tagged with code. Codes are case-insensitive and
// must have the listing's width.
func (m Mapping) Resolve(code string) (int64, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if len(code) != m.width {
		return 0, false
	}
	pos, err := Decode(code)
	if err != nil || pos >= len(m.ids) {
		return 0, false
	}
	return m.ids[pos], true
}
