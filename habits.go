package secondbrain

import (
	"log"
	"slices"

	"github.com/etnz/secondbrain/date"
)

// Habit is a recurring practice tracked day by day through the habit log.
type Habit struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt int64  `json:"createdAt"` // unix milliseconds
}

// Habits returns all habits in creation order.
func (s *Store) Habits() []Habit {
	return records[Habit](s, colHabits)
}

// AddHabit creates a habit.
func (s *Store) AddHabit(title string) Habit {
	now := s.now()
	habit := Habit{ID: newID(now), Title: title, CreatedAt: now.UnixMilli()}
	habits := append(s.Habits(), habit)
	s.write(colHabits, habits)
	s.bus.notify()
	return habit
}

// RenameHabit changes a habit's title.
func (s *Store) RenameHabit(id, title string) error {
	habits := s.Habits()
	for i, h := range habits {
		if h.ID == id {
			habits[i].Title = title
			s.write(colHabits, habits)
			s.bus.notify()
			return nil
		}
	}
	return &NotFoundError{Kind: "habit", ID: id}
}

// DeleteHabit removes the habit record only. Log entries referencing the id
// are kept: they are historical facts, not live references, and removing
// them would change past analytics. Statistics count only live habits.
func (s *Store) DeleteHabit(id string) error {
	habits := s.Habits()
	for i, h := range habits {
		if h.ID == id {
			habits = append(habits[:i], habits[i+1:]...)
			s.write(colHabits, habits)
			s.bus.notify()
			return nil
		}
	}
	return &NotFoundError{Kind: "habit", ID: id}
}

// HabitLogs returns the completion log: a map from day (in date.DateFormat)
// to the set of habit ids marked complete that day. Ids of deleted habits
// may still appear.
func (s *Store) HabitLogs() map[string][]string {
	logs := map[string][]string{}
	if err := s.read(colHabitLogs, &logs); err != nil {
		log.Printf("storage-corruption collection=%q err=%v", colHabitLogs, err)
		return map[string][]string{}
	}
	return logs
}

// ToggleHabit flips membership of habitID in the completion set for the
// given day: marked if absent, unmarked if present. A double invocation is
// a no-op pair.
func (s *Store) ToggleHabit(on date.Date, habitID string) {
	logs := s.HabitLogs()
	key := on.String()
	ids := logs[key]
	if i := slices.Index(ids, habitID); i >= 0 {
		logs[key] = append(ids[:i], ids[i+1:]...)
	} else {
		logs[key] = append(ids, habitID)
	}
	s.write(colHabitLogs, logs)
	s.bus.notify()
}

// DailyProductivity returns the fraction of habits marked complete on the
// given day, in [0, 1]. It is 0 when no habits exist.
func (s *Store) DailyProductivity(on date.Date) float64 {
	habits := s.Habits()
	if len(habits) == 0 {
		return 0
	}
	live := make(map[string]bool, len(habits))
	for _, h := range habits {
		live[h.ID] = true
	}
	// Orphaned ids of deleted habits are excluded so the score stays in [0,1].
	completed := 0
	for _, id := range s.HabitLogs()[on.String()] {
		if live[id] {
			completed++
		}
	}
	return float64(completed) / float64(len(habits))
}
