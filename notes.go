package secondbrain

import (
	"strings"

	"github.com/etnz/secondbrain/date"
)

// DefaultNotebook is the notebook label notes fall into when none is given.
const DefaultNotebook = "General"

// untitledNote is the display title for notes with no title and no content.
const untitledNote = "Untitled Note"

// Note is a free-form text record grouped by notebook label.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Notebook  string    `json:"notebook"`
	Date      date.Date `json:"date"`
	CreatedAt int64     `json:"createdAt"` // unix milliseconds
}

// Notes returns all notes, most recent first.
func (s *Store) Notes() []Note {
	return records[Note](s, colNotes)
}

// SaveNote creates a note. When title is empty it is derived from the first
// 40 characters of the first content line, falling back to "Untitled Note".
// The new note is inserted at the head of the collection: consumers rely on
// most-recent-first ordering for "latest note" queries.
func (s *Store) SaveNote(content, notebook, title string) Note {
	if notebook == "" {
		notebook = DefaultNotebook
	}
	if title == "" {
		title = deriveTitle(content)
	}
	now := s.now()
	note := Note{
		ID:        newID(now),
		Title:     title,
		Content:   content,
		Notebook:  notebook,
		Date:      date.Of(now),
		CreatedAt: now.UnixMilli(),
	}
	notes := append([]Note{note}, s.Notes()...)
	s.write(colNotes, notes)
	s.bus.notify()
	return note
}

// UpdateNote fully replaces the stored note with the same id.
func (s *Store) UpdateNote(updated Note) error {
	notes := s.Notes()
	for i, n := range notes {
		if n.ID == updated.ID {
			notes[i] = updated
			s.write(colNotes, notes)
			s.bus.notify()
			return nil
		}
	}
	return &NotFoundError{Kind: "note", ID: updated.ID}
}

// DeleteNote removes the note with the given id.
func (s *Store) DeleteNote(id string) error {
	notes := s.Notes()
	for i, n := range notes {
		if n.ID == id {
			notes = append(notes[:i], notes[i+1:]...)
			s.write(colNotes, notes)
			s.bus.notify()
			return nil
		}
	}
	return &NotFoundError{Kind: "note", ID: id}
}

// deriveTitle extracts a display title from the first line of content,
// capped at 40 characters.
func deriveTitle(content string) string {
	line, _, _ := strings.Cut(content, "\n")
	if runes := []rune(line); len(runes) > 40 {
		line = string(runes[:40])
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return untitledNote
	}
	return line
}
