package secondbrain

import (
	"math"
	"slices"
	"time"

	"github.com/etnz/secondbrain/date"
)

// consistencyDays is the length of the consistency series.
const consistencyDays = 14

// streakLookback bounds how far back a streak is counted.
const streakLookback = 365

// HabitCount is a habit's lifetime completion count across all logged days.
type HabitCount struct {
	ID    string
	Title string
	Count int
}

// ConsistencyPoint is one day of the daily-productivity series.
type ConsistencyPoint struct {
	Day   string // short weekday name, e.g. "Mon"
	Score int    // daily productivity in percent, 0..100
}

// HabitStreak is a habit's current run of consecutive completed days.
type HabitStreak struct {
	ID     string
	Title  string
	Streak int
}

// DayOfWeekCount totals completions that fell on one weekday, across all
// logged dates.
type DayOfWeekCount struct {
	Day         string // short weekday name
	Completions int
}

// HabitStats bundles the read-side habit derivations.
type HabitStats struct {
	Counts      []HabitCount
	Consistency []ConsistencyPoint // last 14 days, oldest first
	Streaks     []HabitStreak
	DayOfWeek   []DayOfWeekCount // Sun..Sat
}

// HabitStats derives completion counts, the 14-day consistency series,
// current streaks and the day-of-week breakdown, all relative to today.
func (s *Store) HabitStats(today date.Date) HabitStats {
	habits := s.Habits()
	logs := s.HabitLogs()
	var stats HabitStats

	for _, h := range habits {
		count := 0
		for _, ids := range logs {
			if slices.Contains(ids, h.ID) {
				count++
			}
		}
		stats.Counts = append(stats.Counts, HabitCount{ID: h.ID, Title: h.Title, Count: count})
	}

	for day := range date.Trailing(today, consistencyDays).Days() {
		score := int(math.Round(s.DailyProductivity(day) * 100))
		stats.Consistency = append(stats.Consistency, ConsistencyPoint{
			Day:   day.Weekday().String()[:3],
			Score: score,
		})
	}

	for _, h := range habits {
		stats.Streaks = append(stats.Streaks, HabitStreak{
			ID:     h.ID,
			Title:  h.Title,
			Streak: streak(logs, h.ID, today),
		})
	}

	stats.DayOfWeek = make([]DayOfWeekCount, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		stats.DayOfWeek[wd].Day = wd.String()[:3]
	}
	for key, ids := range logs {
		day, err := date.Parse(key)
		if err != nil {
			continue // unparseable log keys contribute nothing
		}
		stats.DayOfWeek[day.Weekday()].Completions += len(ids)
	}

	return stats
}

// streak counts consecutive days the habit appears in the log, walking
// backward from today, or from yesterday when today is not yet marked.
// The walk stops at the first gap and is bounded to a year.
func streak(logs map[string][]string, habitID string, today date.Date) int {
	day := today
	if !slices.Contains(logs[day.String()], habitID) {
		day = day.Add(-1)
	}
	count := 0
	for i := 0; i < streakLookback; i++ {
		if !slices.Contains(logs[day.String()], habitID) {
			break
		}
		count++
		day = day.Add(-1)
	}
	return count
}
