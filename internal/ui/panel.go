package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tadalist/internal/render"
)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel frames lines in a box using the current theme.
func Panel(lines []string) string {
	t := Current()
	border := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// Header renders the counts line shown above the list.
func Header(done, pending int) string {
	t := Current()
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), done+pending,
	)
}

// RowLine renders one row with its id and actions. A disabled action is
// shown muted in brackets.
func RowLine(r render.Row) string {
	t := Current()
	box, title := t.Muted.Render(t.BoxUnchecked), r.Title
	complete := t.Accent.Render("[complete]")
	if r.Completed() {
		box, title = t.Success.Render(t.BoxChecked), t.Done.Render(r.Title)
	}
	if r.CompleteDisabled {
		complete = t.Muted.Render("[complete]")
	}
	return fmt.Sprintf("%s %s %s  %s %s",
		t.Muted.Render(fmt.Sprintf("#%d", r.ID)), box, title,
		complete, t.Error.Render("[delete]"))
}

// ListView is a render.Container that draws the list as a framed panel.
type ListView struct {
	rows []render.Row
}

func (v *ListView) Reset()              { v.rows = v.rows[:0] }
func (v *ListView) Append(r render.Row) { v.rows = append(v.rows, r) }

// Rows returns the rows currently held.
func (v *ListView) Rows() []render.Row { return v.rows }

// Lookup makes a ListView its own single-container document.
func (v *ListView) Lookup(id string) render.Container {
	if id != render.ListID {
		return nil
	}
	return v
}

// String renders the panel.
func (v *ListView) String() string {
	t := Current()
	done := 0
	for _, r := range v.rows {
		if r.Completed() {
			done++
		}
	}
	lines := []string{
		Header(done, len(v.rows)-done),
		t.Muted.Render(ProgressBar(done, len(v.rows), 28)),
		"",
	}
	if len(v.rows) == 0 {
		lines = append(lines, t.Muted.Render("no items"))
	}
	for _, r := range v.rows {
		lines = append(lines, RowLine(r))
	}
	lines = append(lines, "", t.Muted.Render("Tip: add with `add Buy milk`"))
	return Panel(lines)
}
