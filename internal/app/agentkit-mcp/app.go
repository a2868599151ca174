// Package agentkitmcp exposes configured agents as MCP chat tools over stdio.
package agentkitmcp

import (
	"context"
	"fmt"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/cli"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Version is stamped by the build; "dev" otherwise.
var Version = "dev"

type Command struct {
	Log   cli.LogConfig   `embed:"" prefix:"log-"`
	Store cli.StoreConfig `embed:"" prefix:"store-"`

	Offline bool `help:"Skip Google Cloud connectivity; echo agents only"`
}

func (command *Command) Run(ctx context.Context, repository agent.ConfigRepository) error {
	names, err := repository.List(ctx)
	if err != nil {
		return fmt.Errorf("list agent names: %w", err)
	}

	var chatTools []mcpserver.ServerTool

	for _, name := range names {
		config, err := repository.Get(ctx, name)
		if err != nil {
			return fmt.Errorf("get agent config: %s: %w", name, err)
		}

		chatAgent, err := newChatAgent(ctx, config, command.Offline)
		if err != nil {
			return fmt.Errorf("create agent: %s: %w", name, err)
		}

		chatTools = append(chatTools, createChatTool(config, chatAgent))
	}

	server := mcpserver.NewMCPServer(
		cli.ExecutableMCP,
		Version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)

	server.AddTools(chatTools...)

	if err := mcpserver.ServeStdio(server); err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}

	return nil
}
