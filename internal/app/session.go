// Package app binds a todo store to a rendered document and a user-facing
// alert, the way the page's event handlers do.
package app

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tadalist/internal/errors"
	"github.com/Makepad-fr/tadalist/internal/logging"
	"github.com/Makepad-fr/tadalist/internal/model"
	"github.com/Makepad-fr/tadalist/internal/render"
	"github.com/Makepad-fr/tadalist/internal/todo"
)

// EmptyInputMessage is alerted when the form is submitted blank.
const EmptyInputMessage = "Please enter a valid todo title."

// Notifier shows a blocking notification to the user.
type Notifier interface {
	Alert(msg string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(msg string)

func (f NotifierFunc) Alert(msg string) { f(msg) }

// Session handles user actions. Every handler absorbs its own errors and
// turns them into alerts; nothing escapes to the host.
type Session struct {
	store    *todo.Store
	renderer *render.Renderer
	notifier Notifier
	logger   *log.Logger
	detach   func()
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// New binds store to doc. The document re-renders after every store
// notification until Close is called.
func New(store *todo.Store, doc render.Document, n Notifier, opts ...Option) *Session {
	s := &Session{
		store:    store,
		renderer: render.New(doc),
		notifier: n,
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.detach = s.renderer.Attach(store)
	return s
}

// Close stops rendering store changes.
func (s *Session) Close() {
	if s.detach != nil {
		s.detach()
		s.detach = nil
	}
}

// Store returns the underlying store.
func (s *Session) Store() *todo.Store { return s.store }

// SubmitResult reports what a form submission did.
type SubmitResult struct {
	Todo  model.Todo        // the new todo when Added
	Added bool              // the collection grew, even if the re-render failed
	Blank bool              // input was empty after trimming; nothing was attempted
	Err   *errors.TodoError // the failure that was alerted, if any
}

// Cleared reports whether the input field should be emptied. Like the
// page's form, any non-blank submission clears it, accepted or not.
func (r SubmitResult) Cleared() bool { return !r.Blank }

// Submit handles the add form.
func (s *Session) Submit(input string) (res SubmitResult) {
	if strings.TrimSpace(input) == "" {
		s.logger.Debug("empty submit")
		s.notifier.Alert(EmptyInputMessage)
		return SubmitResult{Blank: true, Err: errors.NewValidation(EmptyInputMessage)}
	}

	before := s.store.Len()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		res.Err = errors.FromPanic(errors.OpAdd, r)
		if s.store.Len() > before {
			todos := s.store.List()
			res.Todo, res.Added = todos[len(todos)-1], true
		}
		s.fail(res.Err)
	}()

	t, err := s.store.Add(input)
	if err != nil {
		res.Err = errors.As(errors.OpAdd, err)
		s.fail(res.Err)
		return res
	}
	s.logger.Debug("added", "id", t.ID, "title", t.Title)
	return SubmitResult{Todo: t, Added: true}
}

// Complete toggles the todo with id.
func (s *Session) Complete(id int64) {
	defer s.recover(errors.OpComplete)
	found := s.store.Complete(id)
	s.logger.Debug("complete", "id", id, "found", found)
}

// Delete removes the todo with id.
func (s *Session) Delete(id int64) {
	defer s.recover(errors.OpDelete)
	found := s.store.Delete(id)
	s.logger.Debug("delete", "id", id, "found", found)
}

// Render redraws the document from the current collection.
func (s *Session) Render() {
	defer s.recover(errors.OpRender)
	s.renderer.Render(s.store.List())
}

// Todos returns the current collection.
func (s *Session) Todos() []model.Todo { return s.store.List() }

func (s *Session) recover(op errors.Op) {
	if r := recover(); r != nil {
		s.fail(errors.FromPanic(op, r))
	}
}

func (s *Session) fail(err *errors.TodoError) {
	if err.Code == errors.ErrValidation {
		s.logger.Info("rejected", "op", err.Op, "reason", err.Message)
	} else {
		s.logger.Error("failed", "op", err.Op, "err", err)
	}
	s.notifier.Alert(err.Alert())
}
