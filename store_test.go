package secondbrain

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// fixedClock pins a store's clock to a known instant so ids and timestamps
// are deterministic.
func fixedClock(s *Store, at time.Time) {
	s.now = func() time.Time { return at }
}

func TestNewMemorySeedsDefaults(t *testing.T) {
	s := NewMemory()

	notes := s.Notes()
	if len(notes) != 1 {
		t.Fatalf("got %d seeded notes, want 1", len(notes))
	}
	if got, want := notes[0].Title, welcomeTitle; got != want {
		t.Errorf("seeded note title = %q, want %q", got, want)
	}
	if got, want := notes[0].Notebook, DefaultNotebook; got != want {
		t.Errorf("seeded note notebook = %q, want %q", got, want)
	}
	if got := s.Currency(); got != DefaultCurrency {
		t.Errorf("seeded currency = %q, want %q", got, DefaultCurrency)
	}
	if got := len(s.Events()); got != 0 {
		t.Errorf("got %d seeded events, want 0", got)
	}
	if got := len(s.Cards()); got != 0 {
		t.Errorf("got %d seeded cards, want 0", got)
	}
}

func TestOpenPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	s.SaveNote("remember the milk", "", "")
	s.SetCurrency("EUR")

	// A second store on the same directory sees the same state.
	s2, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	notes := s2.Notes()
	if len(notes) != 2 {
		t.Fatalf("got %d notes after reopen, want 2", len(notes))
	}
	if got, want := notes[0].Title, "remember the milk"; got != want {
		t.Errorf("latest note title = %q, want %q", got, want)
	}
	if got := s2.Currency(); got != "EUR" {
		t.Errorf("currency after reopen = %q, want EUR", got)
	}
}

func TestOpenDoesNotReseedExistingData(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteNote("welcome-note"); err != nil {
		t.Fatal(err)
	}

	s2, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(s2.Notes()); got != 0 {
		t.Errorf("got %d notes after reopen, want 0: deletion must survive reopen", got)
	}
}

func TestResetAll(t *testing.T) {
	s := NewMemory()
	s.AddHabit("read")
	s.AddCard(Card{Name: "Main"})
	s.SetCurrency("GBP")

	if err := s.ResetAll(); err != nil {
		t.Fatal(err)
	}

	if got := len(s.Habits()); got != 0 {
		t.Errorf("got %d habits after reset, want 0", got)
	}
	if got := len(s.Cards()); got != 0 {
		t.Errorf("got %d cards after reset, want 0", got)
	}
	if got := s.Currency(); got != DefaultCurrency {
		t.Errorf("currency after reset = %q, want %q", got, DefaultCurrency)
	}
	notes := s.Notes()
	if len(notes) != 1 || notes[0].Title != welcomeTitle {
		t.Errorf("reset did not re-seed the welcome note, got %v", notes)
	}
}

func TestResetAllNotifies(t *testing.T) {
	s := NewMemory()
	calls := 0
	s.Subscribe(func() { calls++ })

	if err := s.ResetAll(); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("got %d notifications, want 1", calls)
	}
}

func TestCorruptedCollectionReadsAsEmpty(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	s.AddHabit("read")

	if err := os.WriteFile(filepath.Join(dir, "habits.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if got := len(s.Habits()); got != 0 {
		t.Errorf("got %d habits from a corrupted collection, want 0", got)
	}

	var habits []Habit
	err = s.read(colHabits, &habits)
	var corruption *StorageCorruptionError
	if !errors.As(err, &corruption) {
		t.Fatalf("read returned %v, want a *StorageCorruptionError", err)
	}
	if corruption.Collection != colHabits {
		t.Errorf("corruption reported for %q, want %q", corruption.Collection, colHabits)
	}
}

func TestCorruptedCollectionIsRecoverable(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, "habits.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	// A write replaces the corrupted value wholesale.
	h := s.AddHabit("read")
	habits := s.Habits()
	if len(habits) != 1 || habits[0].ID != h.ID {
		t.Errorf("got %v after writing over a corrupted collection, want just %v", habits, h)
	}
}

func TestDistinctIDs(t *testing.T) {
	s := NewMemory()
	fixedClock(s, time.UnixMilli(1700000000000))

	// Same instant, still distinct ids.
	a := s.AddHabit("a")
	b := s.AddHabit("b")
	if a.ID == b.ID {
		t.Errorf("two records created at the same instant share id %q", a.ID)
	}
}
