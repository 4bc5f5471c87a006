package app

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tadalist/internal/errors"
	"github.com/Makepad-fr/tadalist/internal/render"
	"github.com/Makepad-fr/tadalist/internal/todo"
)

type alerts []string

func (a *alerts) Alert(msg string) { *a = append(*a, msg) }

// panicky is a list container that fails on append.
type panicky struct{ render.Recorder }

func (p *panicky) Append(render.Row) { panic("container detached") }

func newSession(t *testing.T) (*Session, *render.Recorder, *alerts) {
	t.Helper()
	rec := &render.Recorder{}
	a := &alerts{}
	s := New(todo.NewStore(), render.Page{render.ListID: rec}, a)
	t.Cleanup(s.Close)
	return s, rec, a
}

func TestSubmit(t *testing.T) {
	s, rec, a := newSession(t)

	res := s.Submit("  Buy milk  ")
	assert.True(t, res.Added)
	assert.True(t, res.Cleared())
	assert.Nil(t, res.Err)
	assert.Equal(t, "Buy milk", res.Todo.Title)
	require.Len(t, rec.Rows, 1)
	assert.Equal(t, "Buy milk", rec.Rows[0].Title)
	assert.Empty(t, *a)
}

func TestSubmit_Blank(t *testing.T) {
	s, rec, a := newSession(t)

	res := s.Submit("   ")
	assert.False(t, res.Added)
	assert.True(t, res.Blank)
	assert.False(t, res.Cleared())
	assert.Equal(t, alerts{EmptyInputMessage}, *a)
	assert.Zero(t, rec.Resets)
}

func TestSubmit_TooShortStillClearsInput(t *testing.T) {
	s, rec, a := newSession(t)
	require.True(t, s.Submit("Buy milk").Added)

	res := s.Submit("hi")
	assert.False(t, res.Added)
	assert.True(t, res.Cleared(), "a rejected non-blank title is cleared like the page form")
	require.NotNil(t, res.Err)
	assert.Equal(t, errors.ErrValidation, res.Err.Code)
	assert.Equal(t, alerts{todo.ErrTitleTooShort}, *a)
	assert.Len(t, s.Todos(), 1)
	assert.Equal(t, 1, rec.Resets, "rejected add does not re-render")
}

func TestSubmit_RenderFailureStillReportsAdded(t *testing.T) {
	a := &alerts{}
	store := todo.NewStore()
	s := New(store, render.Page{render.ListID: &panicky{}}, a)
	defer s.Close()

	res := s.Submit("Buy milk")
	assert.True(t, res.Added, "the todo was stored before the re-render failed")
	assert.Equal(t, "Buy milk", res.Todo.Title)
	require.NotNil(t, res.Err)
	assert.Equal(t, errors.ErrUnexpected, res.Err.Code)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, alerts{"container detached"}, *a)
}

func TestCompleteAndDelete_AlwaysRerender(t *testing.T) {
	s, rec, a := newSession(t)
	require.True(t, s.Submit("Buy milk").Added)
	id := s.Todos()[0].ID

	s.Complete(id)
	assert.True(t, rec.Rows[0].CompleteDisabled)
	assert.Equal(t, render.CompletedClass, rec.Rows[0].Class)

	resets := rec.Resets
	s.Complete(id + 1000)
	s.Delete(id + 1000)
	assert.Equal(t, resets+2, rec.Resets)

	s.Delete(id)
	assert.Empty(t, rec.Rows)
	assert.Empty(t, *a)
}

func TestHandlers_RecoverUnexpected(t *testing.T) {
	a := &alerts{}
	store := todo.NewStore()
	first, err := store.Add("first")
	require.NoError(t, err)
	_, err = store.Add("second")
	require.NoError(t, err)

	s := New(store, render.Page{render.ListID: &panicky{}}, a)
	defer s.Close()

	// every re-render below still has rows to append, so each call fails
	assert.NotPanics(t, func() {
		s.Submit("Buy milk")
		s.Complete(first.ID)
		s.Delete(first.ID)
		s.Render()
	})
	assert.Equal(t, alerts{
		"container detached",
		"Error completing todo: container detached",
		"Error deleting todo: container detached",
		"Error rendering todos: container detached",
	}, *a)
	assert.Equal(t, 2, store.Len())
}

func TestRender_OnDemand(t *testing.T) {
	store := todo.NewStore()
	_, err := store.Add("before attach")
	require.NoError(t, err)

	rec := &render.Recorder{}
	s := New(store, render.Page{render.ListID: rec}, &alerts{})
	defer s.Close()
	assert.Empty(t, rec.Rows)

	s.Render()
	require.Len(t, rec.Rows, 1)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s := New(todo.NewStore(), nil, &alerts{}, WithLogger(logger))
	defer s.Close()

	s.Submit("hi")
	assert.Contains(t, buf.String(), "rejected")
}
