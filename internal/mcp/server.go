// Package mcp exposes the todo store as MCP tools over stdio.
package mcp

import (
	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Makepad-fr/tadalist/internal/todo"
)

var (
	addToolDef = mcp.NewTool("todo_add",
		mcp.WithDescription("Add a todo. The title must be at least 3 characters after trimming."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Todo title")),
	)
	completeToolDef = mcp.NewTool("todo_complete",
		mcp.WithDescription("Toggle the completed flag of a todo. Unknown ids change nothing."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Todo id")),
	)
	deleteToolDef = mcp.NewTool("todo_delete",
		mcp.WithDescription("Delete a todo. Unknown ids change nothing."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Todo id")),
	)
	listToolDef = mcp.NewTool("todo_list",
		mcp.WithDescription("List todos in insertion order."),
	)
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

var toolRegistry = []toolEntry{
	{addToolDef, func(h *Handlers) server.ToolHandlerFunc { return h.HandleAdd }},
	{completeToolDef, func(h *Handlers) server.ToolHandlerFunc { return h.HandleComplete }},
	{deleteToolDef, func(h *Handlers) server.ToolHandlerFunc { return h.HandleDelete }},
	{listToolDef, func(h *Handlers) server.ToolHandlerFunc { return h.HandleList }},
}

// NewServer creates an MCP server with the todo tools registered.
func NewServer(store *todo.Store, version string, logger *log.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"tada",
		version,
		server.WithToolCapabilities(true),
	)
	h := NewHandlers(store, logger)
	for _, entry := range toolRegistry {
		s.AddTool(entry.def, entry.handler(h))
	}
	return s
}

// Run serves the tools on stdio until stdin closes.
func Run(store *todo.Store, version string, logger *log.Logger) error {
	return server.ServeStdio(NewServer(store, version, logger))
}
