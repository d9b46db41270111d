package secondbrain

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/etnz/secondbrain/date"
)

// Collection keys. Each key addresses the serialized full contents of one
// record collection; writes replace the whole value.
const (
	colNotes        = "notes"
	colCalendar     = "calendar"
	colHabits       = "habits"
	colHabitLogs    = "habit_logs"
	colProjects     = "projects"
	colTasks        = "tasks"
	colContacts     = "contacts"
	colCards        = "cards"
	colTransactions = "transactions"
	colCurrency     = "currency"
)

// DefaultCurrency is the currency code seeded on first run.
const DefaultCurrency = "USD"

const welcomeTitle = "Welcome to 2ndBrain"
const welcomeContent = "This is your new productivity space. commands:\n" +
	`- "Add note: Buy milk"` + "\n" +
	`- "Add event: Meeting tomorrow"` + "\n" +
	`- "Expense: Coffee $5"`

// Store owns every domain collection. It is constructed once at process
// start (Open or NewMemory) and injected into its consumers; there is no
// ambient global instance. All methods assume a single writer: every
// mutation performs its read-modify-write to completion before returning,
// and no locking is needed because no concurrent writer exists.
type Store struct {
	backend backend
	bus     Bus
	now     func() time.Time
}

// backend is the durable medium under the store: a flat namespace of
// collection keys, each holding one serialized value.
type backend interface {
	// get returns the stored value for key, ok=false if never written.
	get(key string) (data []byte, ok bool, err error)
	// set atomically replaces the stored value for key.
	set(key string, data []byte) error
	// reset erases every key.
	reset() error
}

// Open opens (creating if needed) a file-backed store in dir, one JSON
// document per collection, and seeds missing collections.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create store directory %q: %w", dir, err)
	}
	s := &Store{backend: &fileBackend{dir: dir}, now: time.Now}
	if err := s.initialize(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewMemory creates a store backed by process memory, for tests and
// throwaway sessions.
func NewMemory() *Store {
	s := &Store{backend: &memBackend{}, now: time.Now}
	s.initialize() // memory writes cannot fail
	return s
}

// Subscribe registers a change listener; see Bus.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	return s.bus.Subscribe(fn)
}

// initialize ensures every collection key has a value. The notes collection
// is seeded with a single welcome record on first run.
func (s *Store) initialize() error {
	now := s.now()
	seeds := []struct {
		key   string
		value any
	}{
		{colNotes, []Note{{
			ID:        "welcome-note",
			Title:     welcomeTitle,
			Content:   welcomeContent,
			Notebook:  DefaultNotebook,
			Date:      date.Of(now),
			CreatedAt: now.UnixMilli(),
		}}},
		{colCalendar, []CalendarEvent{}},
		{colHabits, []Habit{}},
		{colHabitLogs, map[string][]string{}},
		{colProjects, []Project{}},
		{colTasks, []Task{}},
		{colContacts, []Contact{}},
		{colCards, []Card{}},
		{colTransactions, []Transaction{}},
		{colCurrency, DefaultCurrency},
	}
	for _, seed := range seeds {
		if _, ok, err := s.backend.get(seed.key); err != nil {
			return err
		} else if ok {
			continue
		}
		data, err := json.Marshal(seed.value)
		if err != nil {
			return fmt.Errorf("could not seed collection %q: %w", seed.key, err)
		}
		if err := s.backend.set(seed.key, data); err != nil {
			return fmt.Errorf("could not seed collection %q: %w", seed.key, err)
		}
	}
	return nil
}

// ResetAll erases every collection and re-seeds the defaults.
func (s *Store) ResetAll() error {
	if err := s.backend.reset(); err != nil {
		return fmt.Errorf("could not reset store: %w", err)
	}
	if err := s.initialize(); err != nil {
		return err
	}
	s.bus.notify()
	return nil
}

// read unmarshals the stored value for key into v. A missing key leaves v
// untouched (collections read as empty); an unparseable value is reported
// as a *StorageCorruptionError.
func (s *Store) read(key string, v any) error {
	data, ok, err := s.backend.get(key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &StorageCorruptionError{Collection: key, Err: err}
	}
	return nil
}

// write replaces the stored value for key. Storage is assumed available;
// failures are logged and the in-process state of the caller is unaffected.
func (s *Store) write(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("storage-write-failed collection=%q err=%v", key, err)
		return
	}
	if err := s.backend.set(key, data); err != nil {
		log.Printf("storage-write-failed collection=%q err=%v", key, err)
	}
}

// records reads a slice collection, recovering from corruption by treating
// the collection as empty.
func records[T any](s *Store, key string) []T {
	var v []T
	if err := s.read(key, &v); err != nil {
		log.Printf("storage-corruption collection=%q err=%v", key, err)
		return nil
	}
	return v
}

// fileBackend stores each collection as <dir>/<key>.json. Writes go through
// a temp file and a rename so readers never observe a partial value.
type fileBackend struct {
	dir string
}

func (b *fileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

func (b *fileBackend) get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(b.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not read collection %q: %w", key, err)
	}
	return data, true, nil
}

func (b *fileBackend) set(key string, data []byte) error {
	tmp, err := os.CreateTemp(b.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("could not write collection %q: %w", key, err)
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("could not write collection %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("could not write collection %q: %w", key, err)
	}
	if err := os.Rename(name, b.path(key)); err != nil {
		os.Remove(name)
		return fmt.Errorf("could not write collection %q: %w", key, err)
	}
	return nil
}

func (b *fileBackend) reset() error {
	matches, err := filepath.Glob(filepath.Join(b.dir, "*.json"))
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			return err
		}
	}
	return nil
}

// memBackend keeps collections in a map. Zero value is ready to use.
type memBackend struct {
	values map[string][]byte
}

func (b *memBackend) get(key string) ([]byte, bool, error) {
	data, ok := b.values[key]
	return data, ok, nil
}

func (b *memBackend) set(key string, data []byte) error {
	if b.values == nil {
		b.values = make(map[string][]byte)
	}
	b.values[key] = data
	return nil
}

func (b *memBackend) reset() error {
	b.values = nil
	return nil
}
