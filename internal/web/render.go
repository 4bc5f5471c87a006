package web

import (
	"bytes"
	"encoding/json"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tadalist/internal/errors"
	"github.com/Makepad-fr/tadalist/internal/render"
)

// PageData is the template data for the todo page.
type PageData struct {
	Title   string
	FormID  string
	InputID string
	ListID  string

	Rows    []render.Row
	Done    int
	Pending int

	Draft string
	Alert string
}

// Renderer executes the page template.
type Renderer struct {
	page   *template.Template
	logger *log.Logger
}

// NewRenderer parses the templates from the given FS.
func NewRenderer(templateFS fs.FS, logger *log.Logger) *Renderer {
	return &Renderer{
		page:   template.Must(template.New("page").ParseFS(templateFS, "page.html")),
		logger: logger,
	}
}

func (r *Renderer) renderPage(w http.ResponseWriter, status int, data PageData) {
	var buf bytes.Buffer
	if err := r.page.ExecuteTemplate(&buf, "page", data); err != nil {
		r.logger.Error("template execution", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// renderError writes err as JSON or plain text depending on Accept.
func (r *Renderer) renderError(w http.ResponseWriter, req *http.Request, err error) {
	tErr := errors.As("", err)
	status := statusFor(tErr.Code)
	message := tErr.Alert()
	if tErr.Code == errors.ErrUnexpected {
		r.logger.Error("request failed", "path", req.URL.Path, "err", err)
	}

	if wantsJSON(req) {
		renderJSON(w, status, map[string]any{
			"error": map[string]any{
				"code":    string(tErr.Code),
				"message": message,
				"status":  status,
			},
		})
		return
	}
	http.Error(w, message, status)
}

func statusFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrValidation:
		return http.StatusUnprocessableEntity
	case errors.ErrInvalidRequest:
		return http.StatusBadRequest
	case errors.ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func wantsJSON(req *http.Request) bool {
	return strings.Contains(req.Header.Get("Accept"), "application/json")
}

// renderJSON writes a JSON response.
func renderJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
