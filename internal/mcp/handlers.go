package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Makepad-fr/tadalist/internal/errors"
	"github.com/Makepad-fr/tadalist/internal/model"
	"github.com/Makepad-fr/tadalist/internal/todo"
)

// Handlers holds dependencies for MCP tool handlers.
// mu serializes tool calls; the store is single-threaded.
type Handlers struct {
	mu     sync.Mutex
	store  *todo.Store
	logger *log.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store *todo.Store, logger *log.Logger) *Handlers {
	return &Handlers{store: store, logger: logger}
}

// ListOutput is returned by every tool that reports the collection.
type ListOutput struct {
	Found *bool        `json:"found,omitempty"`
	Todos []model.Todo `json:"todos"`
	Done  int          `json:"done"`
	Total int          `json:"total"`
}

// HandleAdd handles todo_add.
func (h *Handlers) HandleAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	t, err := h.store.Add(title)
	if err != nil {
		h.logger.Info("rejected", "tool", "todo_add", "err", err)
		return errorResult(err), nil
	}
	h.logger.Debug("added", "tool", "todo_add", "id", t.ID)
	return successResult(t)
}

// HandleComplete handles todo_complete.
func (h *Handlers) HandleComplete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.handleID(req, h.store.Complete)
}

// HandleDelete handles todo_delete.
func (h *Handlers) HandleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.handleID(req, h.store.Delete)
}

// HandleList handles todo_list.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return successResult(h.snapshot(nil))
}

func (h *Handlers) handleID(req mcp.CallToolRequest, op func(int64) bool) (*mcp.CallToolResult, error) {
	id, err := requireID(req)
	if err != nil {
		return errorResult(err), nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	found := op(id)
	return successResult(h.snapshot(&found))
}

// requireID reads the integral "id" argument. JSON numbers arrive as
// float64; millisecond ids fit in its 53-bit mantissa.
func requireID(req mcp.CallToolRequest) (int64, error) {
	f, err := req.RequireFloat("id")
	if err != nil {
		return 0, errors.NewInvalidRequest(err.Error())
	}
	if f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, errors.NewInvalidRequest(fmt.Sprintf("argument \"id\" is not an integer: %v", f))
	}
	return int64(f), nil
}

func (h *Handlers) snapshot(found *bool) ListOutput {
	todos := h.store.List()
	done, _ := todo.Stats(todos)
	return ListOutput{Found: found, Todos: todos, Done: done, Total: len(todos)}
}

// errorResult creates an MCP error result from any error.
// Unexpected error details are not exposed.
func errorResult(err error) *mcp.CallToolResult {
	tErr := errors.As("", err)
	errorObj := map[string]any{
		"code":    tErr.Code,
		"message": tErr.Message,
	}
	if tErr.Code == errors.ErrUnexpected {
		errorObj["message"] = "an unexpected error occurred"
	}
	content, _ := json.Marshal(map[string]any{"error": errorObj})
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
