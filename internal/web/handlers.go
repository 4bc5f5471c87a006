package web

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tadalist/internal/app"
	"github.com/Makepad-fr/tadalist/internal/errors"
	"github.com/Makepad-fr/tadalist/internal/render"
	"github.com/Makepad-fr/tadalist/internal/todo"
)

// Handlers contains HTTP route handlers for the todo page.
//
// The store is single-threaded; mu serializes every handler so requests
// behave like events delivered one at a time.
//
// The page is local and single-user: there is one collection, and the
// pending alert and draft are server state shown to whichever client loads
// the page next, not tracked per visitor.
type Handlers struct {
	mu       sync.Mutex
	session  *app.Session
	list     *render.Recorder
	renderer *Renderer
	logger   *log.Logger

	// carried from a failed POST to the next page view
	alerts []string
	draft  string
}

// NewHandlers binds a session on store to an in-memory list container.
func NewHandlers(store *todo.Store, renderer *Renderer, logger *log.Logger) *Handlers {
	h := &Handlers{
		list:     &render.Recorder{},
		renderer: renderer,
		logger:   logger,
	}
	h.session = app.New(store, render.Page{render.ListID: h.list}, app.NotifierFunc(h.alert), app.WithLogger(logger))
	h.session.Render()
	return h
}

// Close detaches the session from the store.
func (h *Handlers) Close() { h.session.Close() }

func (h *Handlers) alert(msg string) { h.alerts = append(h.alerts, msg) }

// takeAlerts returns and clears pending alerts. Callers hold mu.
func (h *Handlers) takeAlerts() []string {
	out := h.alerts
	h.alerts = nil
	return out
}

// HandlePage handles GET /: the todo page.
func (h *Handlers) HandlePage(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	alerts := h.takeAlerts()
	data := PageData{
		Title:   "Todo List",
		FormID:  render.FormID,
		InputID: render.InputID,
		ListID:  render.ListID,
		Rows:    h.list.Rows,
		Draft:   h.draft,
	}
	h.draft = ""
	data.Done, data.Pending = todo.Stats(h.session.Todos())
	if len(alerts) > 0 {
		// one dialog at a time; later alerts replace earlier ones
		data.Alert = alerts[len(alerts)-1]
	}
	h.renderer.renderPage(w, http.StatusOK, data)
}

// HandleList handles GET /todos: JSON snapshot of the collection.
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	if !wantsJSON(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.mu.Lock()
	todos := h.session.Todos()
	h.mu.Unlock()
	renderJSON(w, http.StatusOK, map[string]any{"todos": todos})
}

// HandleAdd handles POST /todos: the form submission.
func (h *Handlers) HandleAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form"))
		return
	}
	title := r.PostFormValue("title")

	h.mu.Lock()
	res := h.session.Submit(title)
	if !wantsJSON(r) {
		if !res.Cleared() {
			h.draft = title
		}
		h.mu.Unlock()
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.takeAlerts()
	h.mu.Unlock()

	// a todo that was stored is reported as created even if the re-render failed
	if !res.Added {
		h.renderer.renderError(w, r, res.Err)
		return
	}
	renderJSON(w, http.StatusCreated, res.Todo)
}

// HandleComplete handles POST /todos/{id}/complete.
func (h *Handlers) HandleComplete(w http.ResponseWriter, r *http.Request) {
	h.handleAction(w, r, h.session.Complete)
}

// HandleDelete handles POST /todos/{id}/delete.
func (h *Handlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	h.handleAction(w, r, h.session.Delete)
}

func (h *Handlers) handleAction(w http.ResponseWriter, r *http.Request, action func(int64)) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid todo id: "+r.PathValue("id")))
		return
	}

	h.mu.Lock()
	action(id)
	if !wantsJSON(r) {
		h.mu.Unlock()
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	alerts := h.takeAlerts()
	todos := h.session.Todos()
	h.mu.Unlock()

	if len(alerts) > 0 {
		h.renderer.renderError(w, r, &errors.TodoError{Code: errors.ErrUnexpected, Message: alerts[len(alerts)-1]})
		return
	}
	renderJSON(w, http.StatusOK, map[string]any{"todos": todos})
}
