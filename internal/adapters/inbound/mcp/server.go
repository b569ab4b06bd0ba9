package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewSanityMCPServer creates an MCP server exposing sanity runs as tools.
// Directories and config paths arrive per call, so one server instance can
// check any target.
func NewSanityMCPServer() *server.MCPServer {
	s := server.NewMCPServer(
		"sanity",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s)

	return s
}
