package todo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tadalist/internal/errors"
	"github.com/Makepad-fr/tadalist/internal/model"
)

func counterClock(start int64) Clock {
	n := start
	return ClockFunc(func() int64 {
		n++
		return n
	})
}

func seeded(t *testing.T, titles ...string) *Store {
	t.Helper()
	s := NewStore(WithClock(counterClock(1000)))
	for _, title := range titles {
		_, err := s.Add(title)
		require.NoError(t, err)
	}
	return s
}

func TestAdd_RejectsShortTitles(t *testing.T) {
	for _, title := range []string{"", "a", "hi", "  hi  ", "\t\n", "é"} {
		t.Run(title, func(t *testing.T) {
			s := seeded(t, "Buy milk")
			before := s.List()

			_, err := s.Add(title)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrValidation))
			assert.Equal(t, before, s.List())
		})
	}
}

func TestAdd_AcceptsValidTitles(t *testing.T) {
	for _, title := range []string{"abc", "Buy milk", "  pad  ", "日本語"} {
		t.Run(title, func(t *testing.T) {
			s := seeded(t, "first")
			n := s.Len()

			got, err := s.Add(title)
			require.NoError(t, err)
			assert.Equal(t, n+1, s.Len())
			assert.False(t, got.Completed)

			list := s.List()
			assert.Equal(t, got, list[len(list)-1])
		})
	}
}

func TestAdd_TrimsTitle(t *testing.T) {
	s := seeded(t)
	got, err := s.Add("  Buy milk \n")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got.Title)
}

func TestAdd_IDsUniqueWithinSameMillisecond(t *testing.T) {
	s := NewStore(WithClock(FixedClock(time.UnixMilli(1_700_000_000_000))))
	a, err := s.Add("first")
	require.NoError(t, err)
	b, err := s.Add("second")
	require.NoError(t, err)

	assert.Equal(t, int64(1_700_000_000_000), a.ID)
	assert.Equal(t, a.ID+1, b.ID)
}

func TestComplete_UnknownIDIsNoop(t *testing.T) {
	s := seeded(t, "one", "two", "three")
	before := s.List()

	assert.False(t, s.Complete(42))
	assert.Equal(t, before, s.List())
}

func TestComplete_TogglesOnlyTarget(t *testing.T) {
	s := seeded(t, "one", "two", "three")
	before := s.List()
	target := before[1]

	assert.True(t, s.Complete(target.ID))
	after := s.List()
	require.Len(t, after, len(before))
	for i := range before {
		if before[i].ID == target.ID {
			assert.Equal(t, !before[i].Completed, after[i].Completed)
			assert.Equal(t, before[i].Title, after[i].Title)
			continue
		}
		assert.Equal(t, before[i], after[i])
	}

	s.Complete(target.ID)
	assert.Equal(t, before, s.List(), "complete twice restores the original")
}

func TestDelete_UnknownIDIsNoop(t *testing.T) {
	s := seeded(t, "one", "two")
	before := s.List()

	assert.False(t, s.Delete(7))
	assert.Equal(t, before, s.List())
}

func TestDelete_PreservesOrder(t *testing.T) {
	s := seeded(t, "one", "two", "three", "four")
	before := s.List()

	assert.True(t, s.Delete(before[1].ID))
	after := s.List()
	assert.Equal(t, []model.Todo{before[0], before[2], before[3]}, after)
}

func TestObservers(t *testing.T) {
	s := seeded(t)
	var calls [][]model.Todo
	unsubscribe := s.Subscribe(func(todos []model.Todo) { calls = append(calls, todos) })

	_, err := s.Add("hi")
	require.Error(t, err)
	assert.Empty(t, calls, "failed add does not notify")

	todo, err := s.Add("Buy milk")
	require.NoError(t, err)
	require.Len(t, calls, 1)

	s.Complete(999)
	s.Delete(999)
	assert.Len(t, calls, 3, "no-op mutations still notify")

	s.Complete(todo.ID)
	require.Len(t, calls, 4)
	assert.True(t, calls[3][0].Completed)

	unsubscribe()
	s.Delete(todo.ID)
	assert.Len(t, calls, 4)
}

func TestList_ReturnsCopy(t *testing.T) {
	s := seeded(t, "one")
	list := s.List()
	list[0].Title = "changed"
	assert.Equal(t, "one", s.List()[0].Title)
}

func TestScenario(t *testing.T) {
	s := NewStore()
	assert.Equal(t, 0, s.Len())

	milk, err := s.Add("Buy milk")
	require.NoError(t, err)
	assert.Equal(t, []model.Todo{{ID: milk.ID, Title: "Buy milk"}}, s.List())

	_, err = s.Add("hi")
	require.Error(t, err)
	assert.Equal(t, ErrTitleTooShort, err.(*errors.TodoError).Message)
	assert.Equal(t, 1, s.Len())

	s.Complete(milk.ID)
	got, ok := s.Get(milk.ID)
	require.True(t, ok)
	assert.True(t, got.Completed)

	s.Delete(milk.ID)
	assert.Empty(t, s.List())
}

func TestStats(t *testing.T) {
	s := seeded(t, "one", "two", "three")
	s.Complete(s.List()[0].ID)
	done, pending := s.Stats()
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, pending)
}
