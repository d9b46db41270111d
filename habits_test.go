package secondbrain

import (
	"errors"
	"slices"
	"testing"

	"github.com/etnz/secondbrain/date"
)

func TestToggleHabit(t *testing.T) {
	s := NewMemory()
	h := s.AddHabit("read")
	day := date.MustParse("2026-08-01")

	s.ToggleHabit(day, h.ID)
	if !slices.Contains(s.HabitLogs()[day.String()], h.ID) {
		t.Fatal("habit not marked after first toggle")
	}

	// A second toggle restores the previous state.
	s.ToggleHabit(day, h.ID)
	if slices.Contains(s.HabitLogs()[day.String()], h.ID) {
		t.Error("habit still marked after second toggle")
	}
}

func TestToggleHabitKeepsOtherDays(t *testing.T) {
	s := NewMemory()
	h := s.AddHabit("read")
	s.ToggleHabit(date.MustParse("2026-08-01"), h.ID)
	s.ToggleHabit(date.MustParse("2026-08-02"), h.ID)

	s.ToggleHabit(date.MustParse("2026-08-01"), h.ID)

	logs := s.HabitLogs()
	if slices.Contains(logs["2026-08-01"], h.ID) {
		t.Error("2026-08-01 still marked")
	}
	if !slices.Contains(logs["2026-08-02"], h.ID) {
		t.Error("2026-08-02 lost its mark")
	}
}

func TestRenameHabit(t *testing.T) {
	s := NewMemory()
	h := s.AddHabit("read")

	if err := s.RenameHabit(h.ID, "read daily"); err != nil {
		t.Fatal(err)
	}
	if got := s.Habits()[0].Title; got != "read daily" {
		t.Errorf("title = %q, want %q", got, "read daily")
	}

	var notFound *NotFoundError
	if err := s.RenameHabit("nope", "x"); !errors.As(err, &notFound) {
		t.Errorf("got %v, want a *NotFoundError", err)
	}
}

func TestDeleteHabitKeepsLogs(t *testing.T) {
	s := NewMemory()
	h := s.AddHabit("read")
	day := date.MustParse("2026-08-01")
	s.ToggleHabit(day, h.ID)

	if err := s.DeleteHabit(h.ID); err != nil {
		t.Fatal(err)
	}
	if got := len(s.Habits()); got != 0 {
		t.Fatalf("got %d habits after delete, want 0", got)
	}
	// History survives the habit.
	if !slices.Contains(s.HabitLogs()[day.String()], h.ID) {
		t.Error("log entry was removed with the habit")
	}
}

func TestDailyProductivity(t *testing.T) {
	s := NewMemory()
	day := date.MustParse("2026-08-01")

	if got := s.DailyProductivity(day); got != 0 {
		t.Errorf("productivity with no habits = %v, want 0", got)
	}

	read := s.AddHabit("read")
	run := s.AddHabit("run")
	s.ToggleHabit(day, read.ID)

	if got, want := s.DailyProductivity(day), 0.5; got != want {
		t.Errorf("productivity = %v, want %v", got, want)
	}

	s.ToggleHabit(day, run.ID)
	if got, want := s.DailyProductivity(day), 1.0; got != want {
		t.Errorf("productivity = %v, want %v", got, want)
	}
}

func TestDailyProductivityIgnoresDeletedHabits(t *testing.T) {
	s := NewMemory()
	day := date.MustParse("2026-08-01")

	read := s.AddHabit("read")
	run := s.AddHabit("run")
	s.ToggleHabit(day, read.ID)
	s.ToggleHabit(day, run.ID)
	if err := s.DeleteHabit(run.ID); err != nil {
		t.Fatal(err)
	}

	// One live habit, one completed: the orphaned log entry must not push
	// the score above 1.
	if got, want := s.DailyProductivity(day), 1.0; got != want {
		t.Errorf("productivity = %v, want %v", got, want)
	}
}
