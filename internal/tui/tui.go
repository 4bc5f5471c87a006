// Package tui is the interactive terminal front end.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tadalist/internal/app"
	"github.com/Makepad-fr/tadalist/internal/todo"
	"github.com/Makepad-fr/tadalist/internal/ui"
)

type keyMap struct {
	Add, Complete, Delete, Quit, Dismiss key.Binding
}

var keys = keyMap{
	Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Complete: key.NewBinding(key.WithKeys("c", " "), key.WithHelp("c/space", "complete")),
	Delete:   key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Dismiss:  key.NewBinding(key.WithKeys("enter", "esc", " "), key.WithHelp("enter", "ok")),
}

// alertQueue is the Notifier the session reports to. Alerts are shown
// one at a time, in order.
type alertQueue struct {
	pending []string
}

func (q *alertQueue) Alert(msg string) { q.pending = append(q.pending, msg) }

func (q *alertQueue) pop() (string, bool) {
	if len(q.pending) == 0 {
		return "", false
	}
	msg := q.pending[0]
	q.pending = q.pending[1:]
	return msg, true
}

// Model is the Bubble Tea model of the todo screen.
type Model struct {
	session *app.Session
	doc     *listDoc
	alerts  *alertQueue

	list  list.Model
	input textinput.Model

	adding bool
	alert  string

	width, height int
}

// New builds the model around a fresh session on store.
func New(store *todo.Store, opts ...app.Option) Model {
	doc := &listDoc{}
	alerts := &alertQueue{}
	session := app.New(store, doc, alerts, opts...)

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = "Todos"
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("item", "items")
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Muted
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{keys.Add, keys.Complete, keys.Delete} }
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys
	l.KeyMap.Quit = keys.Quit

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 200

	m := Model{
		session: session,
		doc:     doc,
		alerts:  alerts,
		list:    l,
		input:   ti,
		width:   80,
		height:  24,
	}
	session.Render()
	m.sync()
	return m
}

// Session exposes the underlying session.
func (m Model) Session() *app.Session { return m.session }

// Alert returns the alert currently shown, if any.
func (m Model) Alert() string { return m.alert }

// Adding reports whether the add form is open.
func (m Model) Adding() bool { return m.adding }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	// an open alert blocks everything until dismissed
	if m.alert != "" {
		if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, keys.Dismiss) {
			m.alert, _ = m.alerts.pop()
		}
		return m, nil
	}

	if m.adding {
		return m.updateForm(msg)
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.Quit):
			return m, tea.Quit
		case key.Matches(k, keys.Add):
			m.adding = true
			m.input.SetValue("")
			m.resize()
			return m, m.input.Focus()
		case key.Matches(k, keys.Complete):
			if it, ok := m.list.SelectedItem().(rowItem); ok && !it.CompleteDisabled {
				m.session.Complete(it.ID)
			}
			return m, m.sync()
		case key.Matches(k, keys.Delete):
			if it, ok := m.list.SelectedItem().(rowItem); ok {
				m.session.Delete(it.ID)
			}
			return m, m.sync()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEnter:
			res := m.session.Submit(m.input.Value())
			cmd := m.sync()
			if res.Cleared() {
				m.input.SetValue("")
			}
			if res.Added {
				m.input.Blur()
				m.adding = false
				m.resize()
				m.list.Select(len(m.list.Items()) - 1)
			}
			return m, cmd
		case tea.KeyEsc:
			m.adding = false
			m.input.SetValue("")
			m.input.Blur()
			m.resize()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// sync pulls rendered rows and pending alerts out of the session.
func (m *Model) sync() tea.Cmd {
	var cmd tea.Cmd
	if m.doc.dirty {
		cmd = m.list.SetItems(m.doc.snapshot())
		done, pending := todo.Stats(m.session.Todos())
		m.list.Title = ui.Header(done, pending)
	}
	if m.alert == "" {
		m.alert, _ = m.alerts.pop()
	}
	return cmd
}

func (m *Model) resize() {
	h := m.height - 4
	if m.adding {
		h -= 4
	}
	if h < 3 {
		h = 3
	}
	m.list.SetSize(m.width-4, h)
}

// View implements tea.Model.
func (m Model) View() string {
	t := ui.Current()
	frame := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)

	content := m.list.View()
	if m.adding {
		form := "Add new item\n" + m.input.View()
		content += "\n" + frame.Render(form)
	}
	if m.alert != "" {
		box := frame.BorderForeground(lipgloss.Color("9")).Width(min(60, m.width-8))
		dialog := box.Render(t.Error.Render(m.alert) + "\n\n" + t.Muted.Render("[enter] OK"))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
	}
	return frame.Render(content)
}

// Options configures Run.
type Options struct {
	AltScreen bool
}

// Run starts the program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, store *todo.Store, opt Options, sessionOpts ...app.Option) error {
	m := New(store, sessionOpts...)
	defer m.session.Close()

	popts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opt.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(m, popts...).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// String renders the list without the alt-screen frame, for logs and tests.
func (m Model) String() string {
	var b strings.Builder
	for _, it := range m.list.Items() {
		if r, ok := it.(rowItem); ok {
			b.WriteString(ui.RowLine(r.Row))
			b.WriteByte('\n')
		}
	}
	return b.String()
}
