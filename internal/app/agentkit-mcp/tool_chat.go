package agentkitmcp

import (
	"context"
	"fmt"
	"sync"

	"github.com/iancoleman/strcase"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/platform"
)

// newChatAgent builds the agent backing a chat tool. Online agents connect
// to Vertex and answer through the configured model; offline agents echo
// without any Google Cloud access.
func newChatAgent(ctx context.Context, config *agent.Config, offline bool) (agent.Agent, error) {
	if offline {
		return agent.NewBasicAgent(ctx, config, nil)
	}

	vertex := platform.NewVertex()
	return agent.NewModelAgent(ctx, config, vertex, vertex)
}

// createChatTool wraps one agent in an MCP chat tool. The agent keeps its
// conversation history for the lifetime of the server process, so calls to
// the same tool continue the same session.
func createChatTool(config *agent.Config, chatAgent agent.Agent) mcpserver.ServerTool {
	toolName := fmt.Sprintf("chat_%s", strcase.ToSnake(config.Name))

	description := fmt.Sprintf("Sends a message to agent %q and returns its response.", config.Name)
	if config.Description != "" {
		description = fmt.Sprintf("%s %s", description, config.Description)
	}

	tool := mcp.NewTool(toolName,
		mcp.WithDescription(description),
		mcp.WithString("message",
			mcp.Description("Message to send to the agent."),
			mcp.Required(),
		),
	)

	// The MCP server may dispatch concurrent calls; the session log is not
	// safe for concurrent appends.
	var mu sync.Mutex

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		message, err := request.RequireString("message")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		mu.Lock()
		response, err := chatAgent.ProcessMessage(ctx, message, nil)
		mu.Unlock()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(response), nil
	}

	return mcpserver.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
