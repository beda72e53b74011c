// Package mcp exposes the shopping operations as MCP tools over stdio.
package mcp

import (
	"context"
	"database/sql"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"shopmate/internal/config"
	"shopmate/internal/recommend"
)

// KnownTypes lists all valid type names.
var KnownTypes = []string{"product", "cart", "checklist"}

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"checklist_process": {
		def:     checklistProcessToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleChecklistProcess },
	},
	"checklist_list": {
		def:     checklistListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleChecklistList },
	},
	"product_list": {
		def:     productListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleProductList },
	},
	"product_get": {
		def:     productGetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleProductGet },
	},
	"product_reset": {
		def:     productResetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleProductReset },
	},
	"cart_list": {
		def:     cartListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCartList },
	},
	"cart_add": {
		def:     cartAddToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCartAdd },
	},
	"cart_update": {
		def:     cartUpdateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCartUpdate },
	},
	"cart_remove": {
		def:     cartRemoveToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCartRemove },
	},
	"cart_clear": {
		def:     cartClearToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCartClear },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// ValidateDisabledTypes returns a list of unknown type names from the given list.
func ValidateDisabledTypes(names []string) []string {
	known := make(map[string]bool, len(KnownTypes))
	for _, t := range KnownTypes {
		known[t] = true
	}

	unknown := make([]string, 0)
	for _, name := range names {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// GetTypeForTool extracts the type name from a tool name.
// Tool names follow the pattern "type_action" (e.g., "cart_add" → "cart").
func GetTypeForTool(toolName string) string {
	if idx := strings.Index(toolName, "_"); idx > 0 {
		return toolName[:idx]
	}
	return ""
}

// ExpandTypesToTools returns all tool names belonging to the given types.
func ExpandTypesToTools(types []string) []string {
	if len(types) == 0 {
		return nil
	}

	typeSet := make(map[string]bool, len(types))
	for _, t := range types {
		typeSet[t] = true
	}

	tools := make([]string, 0)
	for name := range toolRegistry {
		typ := GetTypeForTool(name)
		if typeSet[typ] {
			tools = append(tools, name)
		}
	}
	return tools
}

// NewServer creates a new MCP server with shopmate tools registered.
// Tools listed in cfg.DisabledTools or belonging to cfg.DisabledTypes
// are excluded from registration.
func NewServer(db *sql.DB, engine *recommend.Engine, cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"shopmate",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(db, engine)

	disabled := make(map[string]bool)
	for _, tool := range ExpandTypesToTools(cfg.DisabledTypes) {
		disabled[tool] = true
	}
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(db *sql.DB, engine *recommend.Engine, cfg *config.Config, version string) error {
	s := NewServer(db, engine, cfg, version)
	return server.ServeStdio(s)
}

// ToolHandlerFunc is the signature for tool handlers.
type ToolHandlerFunc func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
