// Package mcp exposes the search service as Model Context Protocol tools
// over stdio, so agent clients can look up GHS labels directly.
package mcp

import (
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rjsky311/GHS-label-quick-search/internal/application/search"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
)

// ServerName identifies this server to MCP clients.
const ServerName = "ghs-label-quick-search"

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

var toolRegistry = map[string]toolEntry{
	"ghs_search": {
		def: mcp.NewTool("ghs_search",
			mcp.WithDescription("Look up GHS hazard labels (pictograms, signal word, H-statements) for up to 100 chemicals. "+
				"Each query may be a CAS registry number such as 64-17-5 or a chemical name in English or Chinese."),
			mcp.WithArray("queries",
				mcp.Required(),
				mcp.Description("CAS numbers or chemical names"),
				mcp.Items(map[string]any{"type": "string"}),
			),
		),
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSearch },
	},
	"ghs_search_by_name": {
		def: mcp.NewTool("ghs_search_by_name",
			mcp.WithDescription("List bundled dictionary entries whose English name, Chinese name or alias contains the query. "+
				"Queries shorter than two characters return no matches."),
			mcp.WithString("query", mcp.Required(), mcp.Description("name fragment")),
			mcp.WithNumber("limit", mcp.Description("maximum matches, default 20")),
		),
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSearchByName },
	},
	"ghs_pictograms": {
		def: mcp.NewTool("ghs_pictograms",
			mcp.WithDescription("Return the GHS pictogram reference table keyed by code (GHS01 to GHS09)."),
		),
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandlePictograms },
	},
}

// ToolNames returns the registered tool names in sorted order.
func ToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewServer creates an MCP server with every search tool registered.
func NewServer(svc search.Service, logger logging.Logger, version string, opts ...HandlersOption) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	h := NewHandlers(svc, logger, opts...)
	for _, name := range ToolNames() {
		entry := toolRegistry[name]
		s.AddTool(entry.def, entry.handler(h))
	}
	return s
}

// Run serves the tools on stdin/stdout until the input closes or the process
// is signalled.
func Run(svc search.Service, logger logging.Logger, version string, opts ...HandlersOption) error {
	return server.ServeStdio(NewServer(svc, logger, version, opts...))
}
