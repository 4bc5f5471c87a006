package ui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/Makepad-fr/tadalist/internal/model"
	"github.com/Makepad-fr/tadalist/internal/render"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m.Run()
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 5))
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "█████ 100%", ProgressBar(3, 3, 1))
}

func TestSetTheme(t *testing.T) {
	defer SetTheme("classic")

	SetTheme("MONO")
	assert.Equal(t, "mono", Current().Name)
	assert.Equal(t, "[x]", Current().BoxChecked)

	SetTheme("unknown")
	assert.Equal(t, "classic", Current().Name)
}

func TestListView(t *testing.T) {
	v := &ListView{}
	render.New(v).Render([]model.Todo{
		{ID: 1, Title: "Buy milk"},
		{ID: 2, Title: "Walk dog", Completed: true},
	})

	out := v.String()
	assert.Contains(t, out, "#1 ☐ Buy milk")
	assert.Contains(t, out, "#2 ☑ Walk dog")
	assert.Contains(t, out, "Total 2")
	assert.Len(t, v.Rows(), 2)

	assert.Nil(t, v.Lookup("todo-form"))
}

func TestListView_Empty(t *testing.T) {
	v := &ListView{}
	render.New(v).Render(nil)
	assert.Contains(t, v.String(), "no items")
}

func TestOKFail(t *testing.T) {
	var buf bytes.Buffer
	OK(&buf, "added")
	Fail(&buf, "Title must be at least 3 characters long")
	assert.Equal(t, "✔ added\n✖ Title must be at least 3 characters long\n", buf.String())
}
