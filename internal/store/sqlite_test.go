package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/twiced-technology-gmbh/choremate/internal/clierr"
	"github.com/twiced-technology-gmbh/choremate/internal/forecast"
)

func openTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "choremate.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestCreateAndGetChore(t *testing.T) {
	s := openTestStore(t)
	created := time.Unix(1_700_000_000, 0)

	id, err := s.CreateChore("water plants", created)
	if err != nil {
		t.Fatalf("CreateChore: %v", err)
	}
	c, err := s.GetChore(id)
	if err != nil {
		t.Fatalf("GetChore: %v", err)
	}
	if c.Name != "water plants" || !c.Created.Equal(created) {
		t.Errorf("got %+v", c)
	}
	if c.LastCompletion != nil || c.FirstCompletion != nil || c.NextDue != nil {
		t.Errorf("new chore should have no completions or forecast: %+v", c)
	}
	if c.NumIntervals != 0 {
		t.Errorf("NumIntervals = %d, want 0", c.NumIntervals)
	}
}

func TestCreateChoreDuplicateName(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.CreateChore("dishes", time.Now()); err != nil {
		t.Fatalf("CreateChore: %v", err)
	}
	_, err := s.CreateChore("dishes", time.Now())
	if !clierr.HasCode(err, clierr.DuplicateName) {
		t.Fatalf("second CreateChore = %v, want %s", err, clierr.DuplicateName)
	}
	if _, err := s.CreateChore("Dishes", time.Now()); err != nil {
		t.Errorf("names are case-sensitive, got %v", err)
	}
}

func TestIDsAreNotReused(t *testing.T) {
	s := openTestStore(t)
	first, _ := s.CreateChore("a", time.Now())
	if err := s.DeleteChore(first); err != nil {
		t.Fatalf("DeleteChore: %v", err)
	}
	second, err := s.CreateChore("a", time.Now())
	if err != nil {
		t.Fatalf("CreateChore after delete: %v", err)
	}
	if second <= first {
		t.Errorf("id %d reused or decreased after %d", second, first)
	}
}

func TestDeleteChoreCascades(t *testing.T) {
	s := openTestStore(t)
	id, _ := s.CreateChore("laundry", time.Now())
	ivID, err := s.AppendInterval(id, 3600)
	if err != nil {
		t.Fatalf("AppendInterval: %v", err)
	}
	if _, err := s.AppendInterval(id, 7200); err != nil {
		t.Fatalf("AppendInterval: %v", err)
	}

	if err := s.DeleteChore(id); err != nil {
		t.Fatalf("DeleteChore: %v", err)
	}
	if _, err := s.GetInterval(ivID); !clierr.HasCode(err, clierr.IntervalNotFound) {
		t.Errorf("interval survived cascade: %v", err)
	}
	if _, err := s.ListIntervals(id); !clierr.HasCode(err, clierr.ChoreNotFound) {
		t.Errorf("ListIntervals on deleted chore = %v, want %s", err, clierr.ChoreNotFound)
	}
	if err := s.DeleteChore(id); !clierr.HasCode(err, clierr.ChoreNotFound) {
		t.Errorf("second DeleteChore = %v, want %s", err, clierr.ChoreNotFound)
	}
}

func TestListIntervalsMostRecentFirst(t *testing.T) {
	s := openTestStore(t)
	id, _ := s.CreateChore("trash", time.Now())
	for _, d := range []int64{10, 20, 30} {
		if _, err := s.AppendInterval(id, d); err != nil {
			t.Fatalf("AppendInterval: %v", err)
		}
	}
	ivs, err := s.ListIntervals(id)
	if err != nil {
		t.Fatalf("ListIntervals: %v", err)
	}
	if len(ivs) != 3 || ivs[0].Duration != 30 || ivs[2].Duration != 10 {
		t.Errorf("intervals = %+v, want newest first", ivs)
	}

	c, _ := s.GetChore(id)
	if c.NumIntervals != 3 {
		t.Errorf("NumIntervals = %d, want 3", c.NumIntervals)
	}
}

func TestIntervalUpdateAndDelete(t *testing.T) {
	s := openTestStore(t)
	id, _ := s.CreateChore("vacuum", time.Now())
	ivID, _ := s.AppendInterval(id, 100)

	if err := s.UpdateIntervalDuration(ivID, 250); err != nil {
		t.Fatalf("UpdateIntervalDuration: %v", err)
	}
	iv, err := s.GetInterval(ivID)
	if err != nil || iv.Duration != 250 || iv.ChoreID != id {
		t.Fatalf("GetInterval = %+v, %v", iv, err)
	}
	if err := s.DeleteInterval(ivID); err != nil {
		t.Fatalf("DeleteInterval: %v", err)
	}
	if err := s.DeleteInterval(ivID); !clierr.HasCode(err, clierr.IntervalNotFound) {
		t.Errorf("second DeleteInterval = %v", err)
	}
	if err := s.UpdateIntervalDuration(ivID, 1); !clierr.HasCode(err, clierr.IntervalNotFound) {
		t.Errorf("UpdateIntervalDuration on deleted = %v", err)
	}
	if _, err := s.AppendInterval(9999, 1); !clierr.HasCode(err, clierr.ChoreNotFound) {
		t.Errorf("AppendInterval on missing chore = %v", err)
	}
}

func TestListChoresOrder(t *testing.T) {
	s := openTestStore(t)
	mk := func(name string, next, less int64) {
		t.Helper()
		id, err := s.CreateChore(name, time.Now())
		if err != nil {
			t.Fatalf("CreateChore(%s): %v", name, err)
		}
		if err := s.SetDerivedFields(id, forecast.Forecast{MeanInterval: 1, MadLess: less, NextDue: next}); err != nil {
			t.Fatalf("SetDerivedFields: %v", err)
		}
	}
	mk("c-late", 1000, 0)
	mk("b-wide", 1100, 200) // 900
	mk("a-same", 1000, 0)   // ties with c-late, wins on name
	mk("d-early", 950, 100) // 850

	chores, err := s.ListChores()
	if err != nil {
		t.Fatalf("ListChores: %v", err)
	}
	var got []string
	for _, c := range chores {
		got = append(got, c.Name)
	}
	want := []string{"d-early", "b-wide", "a-same", "c-late"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestCompletionSetters(t *testing.T) {
	s := openTestStore(t)
	id, _ := s.CreateChore("mow", time.Now())
	at := time.Unix(1_700_000_500, 0)

	if err := s.SetFirstCompletion(id, at); err != nil {
		t.Fatalf("SetFirstCompletion: %v", err)
	}
	if err := s.SetLastCompletion(id, at); err != nil {
		t.Fatalf("SetLastCompletion: %v", err)
	}
	c, _ := s.GetChore(id)
	if c.FirstCompletion == nil || !c.FirstCompletion.Equal(at) || c.LastCompletion == nil || !c.LastCompletion.Equal(at) {
		t.Errorf("completion fields = %v / %v", c.FirstCompletion, c.LastCompletion)
	}
	if err := s.SetLastCompletion(4242, at); !clierr.HasCode(err, clierr.ChoreNotFound) {
		t.Errorf("SetLastCompletion on missing chore = %v", err)
	}
}

func TestRenameAndReset(t *testing.T) {
	s := openTestStore(t)
	a, _ := s.CreateChore("a", time.Now())
	_, _ = s.CreateChore("b", time.Now())

	if err := s.RenameChore(a, "b"); !clierr.HasCode(err, clierr.DuplicateName) {
		t.Errorf("rename onto existing name = %v", err)
	}
	if err := s.RenameChore(a, "a2"); err != nil {
		t.Fatalf("RenameChore: %v", err)
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	chores, _ := s.ListChores()
	if len(chores) != 0 {
		t.Errorf("Reset left %d chores", len(chores))
	}
}
