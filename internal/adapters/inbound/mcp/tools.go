package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Figglewatts/sanity/internal/adapters/outbound/config"
	"github.com/Figglewatts/sanity/internal/adapters/outbound/gitinfo"
	starlarkadapter "github.com/Figglewatts/sanity/internal/adapters/outbound/starlark"
	"github.com/Figglewatts/sanity/internal/application"
	"github.com/Figglewatts/sanity/internal/domain"
)

// registerTools registers all sanity MCP tools on the given server.
func registerTools(s *server.MCPServer) {
	s.AddTool(
		mcplib.NewTool("sanity_check",
			mcplib.WithDescription("Run sanity checks against a directory and return the run report as JSON"),
			mcplib.WithString("directory",
				mcplib.Required(),
				mcplib.Description("Directory of assets to check"),
			),
			mcplib.WithString("config",
				mcplib.Description("Path to the YAML config file (default: .sanity.yaml inside the directory)"),
			),
		),
		handleCheck(),
	)

	s.AddTool(
		mcplib.NewTool("sanity_list_checkers",
			mcplib.WithDescription("List the checker units loadable from a checker directory, including load failures"),
			mcplib.WithString("checker_dir",
				mcplib.Required(),
				mcplib.Description("Directory of checker units to inspect"),
			),
		),
		handleListCheckers(),
	)
}

func newRunner() *application.Runner {
	return application.NewRunner(
		config.New(),
		func(dir string) domain.CheckerSource { return starlarkadapter.NewLoader(dir) },
		gitinfo.New(),
	)
}

func handleCheck() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		directory, err := request.RequireString("directory")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		configPath, _ := request.GetArguments()["config"].(string)
		if configPath == "" {
			configPath = filepath.Join(directory, config.DefaultFileName)
		}

		report, failures, err := newRunner().Run(directory, configPath)
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}

		return jsonResult(struct {
			*domain.RunReport
			Passed       bool                 `json:"overall_passed"`
			LoadFailures []domain.LoadFailure `json:"load_failures,omitempty"`
		}{report, report.Passed(), failures})
	}
}

func handleListCheckers() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		checkerDir, err := request.RequireString("checker_dir")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		registry, err := starlarkadapter.NewLoader(checkerDir).Load()
		if err != nil {
			return errorResult(fmt.Sprintf("load failed: %v", err)), nil
		}

		return jsonResult(struct {
			Checkers     []string             `json:"checkers"`
			LoadFailures []domain.LoadFailure `json:"load_failures,omitempty"`
		}{registry.Names(), registry.Failures()})
	}
}

// jsonResult marshals v to indented JSON text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
