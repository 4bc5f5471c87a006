package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tadalist/internal/render"
	"github.com/Makepad-fr/tadalist/internal/ui"
)

// rowItem adapts a render.Row to bubbles/list.Item
type rowItem struct {
	render.Row
}

func (i rowItem) FilterValue() string { return i.Title }

// listDoc is the document the session renders into. The model copies
// its items into the list after every handled event.
type listDoc struct {
	items []list.Item
	dirty bool
}

func (d *listDoc) Reset() {
	d.items = d.items[:0]
	d.dirty = true
}

func (d *listDoc) Append(r render.Row) { d.items = append(d.items, rowItem{r}) }

func (d *listDoc) Lookup(id string) render.Container {
	if id != render.ListID {
		return nil
	}
	return d
}

// snapshot returns a copy of the items, clearing the dirty flag.
func (d *listDoc) snapshot() []list.Item {
	d.dirty = false
	out := make([]list.Item, len(d.items))
	copy(out, d.items)
	return out
}

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(rowItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = ui.Current().Selected.Render(">") + " "
	}
	fmt.Fprintln(w, prefix+ui.RowLine(it.Row))
}
