package secondbrain

import "github.com/etnz/secondbrain/date"

// CalendarEvent is a titled entry on a single calendar day. Events are
// referenced by date, never by foreign key.
type CalendarEvent struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      date.Date `json:"date"`
	CreatedAt int64     `json:"createdAt"` // unix milliseconds
}

// Events returns all calendar events in creation order.
func (s *Store) Events() []CalendarEvent {
	return records[CalendarEvent](s, colCalendar)
}

// EventsOn returns the events scheduled on the given day.
func (s *Store) EventsOn(on date.Date) []CalendarEvent {
	var out []CalendarEvent
	for _, e := range s.Events() {
		if e.Date == on {
			out = append(out, e)
		}
	}
	return out
}

// AddEvent appends a new event. No deduplication is performed.
func (s *Store) AddEvent(on date.Date, title string) CalendarEvent {
	now := s.now()
	event := CalendarEvent{
		ID:        newID(now),
		Title:     title,
		Date:      on,
		CreatedAt: now.UnixMilli(),
	}
	events := append(s.Events(), event)
	s.write(colCalendar, events)
	s.bus.notify()
	return event
}

// DeleteEvent removes the event with the given id.
func (s *Store) DeleteEvent(id string) error {
	events := s.Events()
	for i, e := range events {
		if e.ID == id {
			events = append(events[:i], events[i+1:]...)
			s.write(colCalendar, events)
			s.bus.notify()
			return nil
		}
	}
	return &NotFoundError{Kind: "event", ID: id}
}
