// Package todo holds the in-memory todo collection.
package todo

import (
	"strings"
	"unicode/utf8"

	"github.com/Makepad-fr/tadalist/internal/errors"
	"github.com/Makepad-fr/tadalist/internal/model"
)

// MinTitleLength is the minimum title length in characters, after trimming.
const MinTitleLength = 3

// ErrTitleTooShort is the validation message returned by Add.
const ErrTitleTooShort = "Title must be at least 3 characters long"

// Observer receives the collection after every notifying mutation.
// The slice is a copy and may be retained.
type Observer = func([]model.Todo)

// Store owns an ordered todo collection.
// It is not safe for concurrent use; hosts serialize calls.
type Store struct {
	todos  []model.Todo
	clock  Clock
	lastID int64

	observers map[int]Observer
	nextObs   int
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the id source.
func WithClock(c Clock) Option {
	return func(s *Store) { s.clock = c }
}

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		todos:     []model.Todo{},
		clock:     WallClock,
		observers: make(map[int]Observer),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add validates title and appends a new pending todo.
// A validation failure leaves the collection untouched and notifies nobody.
func (s *Store) Add(title string) (model.Todo, error) {
	title = strings.TrimSpace(title)
	if utf8.RuneCountInString(title) < MinTitleLength {
		return model.Todo{}, errors.NewValidation(ErrTitleTooShort)
	}
	t := model.Todo{ID: s.nextID(), Title: title}
	s.todos = append(s.todos, t)
	s.notify()
	return t, nil
}

// Complete toggles the completed flag of the todo with id.
// Unknown ids are a silent no-op. Observers are notified either way.
func (s *Store) Complete(id int64) bool {
	found := false
	next := make([]model.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		if t.ID == id {
			t = t.Toggled()
			found = true
		}
		next = append(next, t)
	}
	s.todos = next
	s.notify()
	return found
}

// Delete removes the todo with id, preserving the order of the rest.
// Unknown ids are a silent no-op. Observers are notified either way.
func (s *Store) Delete(id int64) bool {
	next := make([]model.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		if t.ID != id {
			next = append(next, t)
		}
	}
	found := len(next) != len(s.todos)
	s.todos = next
	s.notify()
	return found
}

// List returns a copy of the collection in order.
func (s *Store) List() []model.Todo {
	out := make([]model.Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

// Get returns the todo with id.
func (s *Store) Get(id int64) (model.Todo, bool) {
	for _, t := range s.todos {
		if t.ID == id {
			return t, true
		}
	}
	return model.Todo{}, false
}

// Len reports the collection size.
func (s *Store) Len() int { return len(s.todos) }

// Stats counts completed and pending todos.
func (s *Store) Stats() (done, pending int) {
	return Stats(s.todos)
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Observer) func() {
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	return func() { delete(s.observers, id) }
}

func (s *Store) notify() {
	if len(s.observers) == 0 {
		return
	}
	for i := 0; i < s.nextObs; i++ {
		if fn, ok := s.observers[i]; ok {
			fn(s.List())
		}
	}
}

// nextID takes the clock reading, bumped past the last issued id so two
// todos created in the same millisecond stay distinct.
func (s *Store) nextID() int64 {
	id := s.clock.Millis()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Stats counts completed and pending todos in items.
func Stats(items []model.Todo) (done, pending int) {
	for _, it := range items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
