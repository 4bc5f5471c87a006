// Package render reflects a todo collection into a list container.
package render

import (
	"github.com/Makepad-fr/tadalist/internal/model"
)

// Fixed element identifiers of the page.
const (
	ListID  = "todo-list"
	FormID  = "todo-form"
	InputID = "todo-input"
)

// CompletedClass marks rows whose todo is completed.
const CompletedClass = "completed"

// Row is one visual list entry.
type Row struct {
	ID               int64
	Title            string
	Class            string
	CompleteDisabled bool
}

// Completed reports whether the row carries the completed marker.
func (r Row) Completed() bool { return r.Class == CompletedClass }

// Rows maps todos to rows, in order.
func Rows(todos []model.Todo) []Row {
	rows := make([]Row, 0, len(todos))
	for _, t := range todos {
		r := Row{ID: t.ID, Title: t.Title}
		if t.Completed {
			r.Class = CompletedClass
			r.CompleteDisabled = true
		}
		rows = append(rows, r)
	}
	return rows
}

// Container receives rendered rows.
type Container interface {
	Reset()
	Append(Row)
}

// Document resolves containers by element id.
// Lookup returns nil when the element is absent.
type Document interface {
	Lookup(id string) Container
}

// Renderer rebuilds the todo list container of a document.
type Renderer struct {
	doc Document
}

// New returns a Renderer bound to doc. A nil doc renders nothing.
func New(doc Document) *Renderer {
	return &Renderer{doc: doc}
}

// Render clears the list container and appends one row per todo.
// A missing document or container is a silent no-op.
func (r *Renderer) Render(todos []model.Todo) {
	if r == nil || r.doc == nil {
		return
	}
	c := r.doc.Lookup(ListID)
	if c == nil {
		return
	}
	c.Reset()
	for _, row := range Rows(todos) {
		c.Append(row)
	}
}

// Subscriber is the part of the store a Renderer observes.
type Subscriber interface {
	Subscribe(fn func([]model.Todo)) func()
}

// Attach re-renders on every store notification and returns the
// unsubscribe func.
func (r *Renderer) Attach(s Subscriber) func() {
	return s.Subscribe(r.Render)
}
