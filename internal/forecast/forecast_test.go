package forecast

import "testing"

func TestRecomputeEmpty(t *testing.T) {
	got := Recompute(nil, 1000)
	if got != (Forecast{}) {
		t.Errorf("empty history: got %+v, want zero forecast", got)
	}
	if got.HasNextDue() {
		t.Errorf("empty history must not forecast a next due time")
	}
}

func TestRecomputeExamples(t *testing.T) {
	const completed int64 = 1_700_000_000
	tests := []struct {
		name      string
		intervals []int64
		want      Forecast
	}{
		{
			name:      "symmetric",
			intervals: []int64{100, 200, 300},
			want:      Forecast{MeanInterval: 200, MadLess: 100, MadMore: 100, NextDue: completed + 200},
		},
		{
			name:      "skewed",
			intervals: []int64{10, 10, 10, 40},
			want:      Forecast{MeanInterval: 18, MadLess: 8, MadMore: 22, NextDue: completed + 18},
		},
		{
			name:      "single interval",
			intervals: []int64{3600},
			want:      Forecast{MeanInterval: 3600, NextDue: completed + 3600},
		},
		{
			name:      "two intervals keep zero spread",
			intervals: []int64{100, 300},
			want:      Forecast{MeanInterval: 200, NextDue: completed + 200},
		},
		{
			name:      "all equal",
			intervals: []int64{500, 500, 500, 500},
			want:      Forecast{MeanInterval: 500, NextDue: completed + 500},
		},
		{
			name:      "only longer intervals deviate",
			intervals: []int64{10, 10, 10, 10, 10, 10, 10, 11},
			want:      Forecast{MeanInterval: 10, MadMore: 1, NextDue: completed + 10},
		},
		{
			name:      "negative intervals are averaged with sign",
			intervals: []int64{-100, 100, 300},
			want:      Forecast{MeanInterval: 100, MadLess: 200, MadMore: 200, NextDue: completed + 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recompute(tt.intervals, completed)
			if got != tt.want {
				t.Errorf("Recompute(%v) = %+v, want %+v", tt.intervals, got, tt.want)
			}
			if again := Recompute(tt.intervals, completed); again != got {
				t.Errorf("Recompute not idempotent: %+v then %+v", got, again)
			}
		})
	}
}

func TestRecomputeFewerThanThreeHasNoSpread(t *testing.T) {
	for _, iv := range [][]int64{{1}, {1, 1000}, {-50, 7000}} {
		got := Recompute(iv, 0)
		if got.MadLess != 0 || got.MadMore != 0 {
			t.Errorf("Recompute(%v) spread = %d/%d, want 0/0", iv, got.MadLess, got.MadMore)
		}
	}
}

func TestRoundDiv(t *testing.T) {
	tests := []struct {
		sum, n, want int64
	}{
		{3, 2, 2},
		{5, 2, 3},
		{-3, 2, -2},
		{-5, 2, -3},
		{7, 3, 2},
		{8, 3, 3},
		{-7, 3, -2},
		{-8, 3, -3},
		{70, 4, 18},
		{0, 5, 0},
		{9, 3, 3},
	}
	for _, tt := range tests {
		if got := roundDiv(tt.sum, tt.n); got != tt.want {
			t.Errorf("roundDiv(%d, %d) = %d, want %d", tt.sum, tt.n, got, tt.want)
		}
	}
}

func TestSpread(t *testing.T) {
	f := Forecast{MeanInterval: 100, MadLess: 10, MadMore: 30, NextDue: 1000}
	if got := f.Spread(999); got != 20 {
		t.Errorf("Spread before due = %d, want 20", got)
	}
	if got := f.Spread(1000); got != 60 {
		t.Errorf("Spread at due = %d, want 60", got)
	}
}
