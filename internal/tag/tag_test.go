package tag

import "testing"

func TestWidth(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 1}, {1, 1}, {26, 1},
		{27, 2}, {676, 2},
		{677, 3}, {17576, 3},
	}
	for _, tt := range tests {
		if got := Width(tt.n); got != tt.want {
			t.Errorf("Width(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		pos, width int
		want       string
	}{
		{0, 1, "a"},
		{25, 1, "z"},
		{0, 2, "aa"},
		{1, 2, "ab"},
		{26, 2, "ba"},
		{675, 2, "zz"},
		{0, 3, "aaa"},
		{676, 3, "baa"},
	}
	for _, tt := range tests {
		if got := Encode(tt.pos, tt.width); got != tt.want {
			t.Errorf("Encode(%d, %d) = %q, want %q", tt.pos, tt.width, got, tt.want)
		}
	}
}

func TestDecodeRejectsNonLetters(t *testing.T) {
	for _, code := range []string{"", "a1", "A", "ä"} {
		if _, err := Decode(code); err == nil {
			t.Errorf("Decode(%q) should fail", code)
		}
	}
}

func TestAllocateIsBijective(t *testing.T) {
	for _, n := range []int{1, 26, 27, 676, 677, 2000} {
		ids := make([]int64, n)
		for i := range ids {
			ids[i] = int64(1000 + 3*i)
		}
		m := Allocate(ids)
		want := Width(n)

		seen := make(map[string]bool, n)
		for i, id := range ids {
			code := m.At(i)
			if len(code) != want {
				t.Fatalf("n=%d: code %q has width %d, want %d", n, code, len(code), want)
			}
			if seen[code] {
				t.Fatalf("n=%d: duplicate code %q", n, code)
			}
			seen[code] = true

			pos, err := Decode(code)
			if err != nil || pos != i {
				t.Fatalf("n=%d: Decode(%q) = %d, %v; want %d", n, code, pos, err, i)
			}
			got, ok := m.Resolve(code)
			if !ok || got != id {
				t.Fatalf("n=%d: Resolve(%q) = %d, %v; want %d", n, code, got, ok, id)
			}
			if back, _ := m.Tag(id); back != code {
				t.Fatalf("n=%d: Tag(%d) = %q, want %q", n, id, back, code)
			}
		}
	}
}

func TestResolveRejectsUnknownCodes(t *testing.T) {
	m := Allocate([]int64{7, 8, 9})
	for _, code := range []string{"d", "aa", "", "1"} {
		if _, ok := m.Resolve(code); ok {
			t.Errorf("Resolve(%q) should fail", code)
		}
	}
	if id, ok := m.Resolve("B"); !ok || id != 8 {
		t.Errorf("Resolve(\"B\") = %d, %v; want 8", id, ok)
	}
}

func TestAllocateCopiesInput(t *testing.T) {
	ids := []int64{1, 2}
	m := Allocate(ids)
	ids[0] = 99
	if id, _ := m.Resolve("a"); id != 1 {
		t.Errorf("mapping changed with caller slice: got %d", id)
	}
}
