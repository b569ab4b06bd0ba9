package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/Figglewatts/sanity/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the sanity MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the sanity MCP server (stdio)",
		Long:  "Start the sanity MCP server using stdio transport, so AI coding assistants can run sanity checks and inspect checker registries.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewSanityMCPServer()
			return server.ServeStdio(s)
		},
	}
}
