package secondbrain

import (
	"time"

	"github.com/etnz/secondbrain/date"
)

// ActivityPoint is one weekday bucket of the system activity series.
type ActivityPoint struct {
	Day   string // short weekday name
	Count int
}

// SystemActivity counts creation activity (notes, transactions, calendar
// events, projects) over a trailing window of days, bucketed by weekday
// name. Buckets are keyed by weekday name, not by absolute date: when the
// window spans more than a week, same-weekday dates share one bucket. That
// collapse is part of the contract, not an accident to fix.
func (s *Store) SystemActivity(days int, today date.Date) []ActivityPoint {
	window := date.Trailing(today, days)

	var points []ActivityPoint
	index := make(map[string]int)
	for day := range window.Days() {
		name := day.Weekday().String()[:3]
		if _, ok := index[name]; ok {
			continue
		}
		index[name] = len(points)
		points = append(points, ActivityPoint{Day: name})
	}

	bump := func(on date.Date) {
		if !window.Contains(on) {
			return
		}
		if i, ok := index[on.Weekday().String()[:3]]; ok {
			points[i].Count++
		}
	}

	for _, n := range s.Notes() {
		bump(date.Of(time.UnixMilli(n.CreatedAt)))
	}
	for _, t := range s.Transactions() {
		bump(date.Of(t.Date))
	}
	for _, e := range s.Events() {
		bump(e.Date)
	}
	for _, p := range s.Projects() {
		bump(date.Of(time.UnixMilli(p.CreatedAt)))
	}
	return points
}
