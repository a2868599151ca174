package agentkitctl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
)

// AgentCmd groups agent management subcommands.
type AgentCmd struct {
	List AgentListCmd `cmd:"" help:"List configured agents"`
}

// AgentListOutputItem represents a single agent entry in the list output.
type AgentListOutputItem struct {
	Name      string `json:"name"`
	ModelName string `json:"modelName"`
}

// AgentListOutput captures the list output payload for agents.
type AgentListOutput struct {
	Items []AgentListOutputItem `json:"items"`
	Count int                   `json:"count"`
}

// AgentListCmd lists configured agents and their models.
type AgentListCmd struct{}

// Run executes the agent list command.
func (a *AgentListCmd) Run(ctx context.Context, repository agent.ConfigRepository) error {
	names, err := repository.List(ctx)
	if err != nil {
		return fmt.Errorf("list agents: %w", err)
	}

	items := make([]AgentListOutputItem, 0, len(names))
	for _, name := range names {
		config, err := repository.Get(ctx, name)
		if err != nil {
			slog.Warn(
				"Failed to load agent config",
				slog.String("name", name),
				slog.String("error", err.Error()),
			)
			continue
		}

		items = append(items, AgentListOutputItem{
			Name:      config.Name,
			ModelName: config.ModelName,
		})
	}

	output := AgentListOutput{
		Items: items,
		Count: len(items),
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode agent list output: %w", err)
	}

	return nil
}
