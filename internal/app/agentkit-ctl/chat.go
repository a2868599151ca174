package agentkitctl

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/platform"
)

// ChatCmd runs an interactive chat session against a configured agent.
type ChatCmd struct {
	Name string `arg:"" required:"" help:"Name of the configured agent"`

	Offline     bool     `help:"Skip Google Cloud connectivity; echo agent only"`
	Live        bool     `help:"Answer through the configured Vertex AI model instead of echoing"`
	Model       *string  `help:"Override the configured model for this session"`
	Temperature *float64 `help:"Override the configured temperature for this session"`
}

func (command *ChatCmd) Run(ctx context.Context, repository agent.ConfigRepository) error {
	a, err := buildAgent(ctx, repository, command.Name, agentOptions{
		offline:     command.Offline,
		live:        command.Live,
		model:       command.Model,
		temperature: command.Temperature,
	})
	if err != nil {
		return err
	}

	config := a.Config()
	fmt.Printf("Loaded agent: %s\n", config.Name)
	if config.Description != "" {
		fmt.Printf("Description: %s\n", config.Description)
	}
	fmt.Println()
	fmt.Println("Type 'quit' or 'exit' to end the session")
	fmt.Println("Type 'status' to see agent status")
	fmt.Println("Type 'history' to see conversation history")
	fmt.Println()

	reader := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("You: ")
		if !reader.Scan() {
			fmt.Println()
			return reader.Err()
		}

		input := strings.TrimSpace(reader.Text())
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "quit", "exit":
			fmt.Println("Goodbye!")
			return nil
		case "status":
			if err := printStatus(a); err != nil {
				return err
			}
			continue
		case "history":
			printHistory(a)
			continue
		}

		response, err := a.ProcessMessage(ctx, input, nil)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		fmt.Printf("Agent: %s\n", response)
	}
}

func printStatus(a agent.Agent) error {
	status := a.Status()

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(status); err != nil {
		return fmt.Errorf("encode agent status: %w", err)
	}
	return nil
}

func printHistory(a agent.Agent) {
	records := a.History(10)
	if len(records) == 0 {
		fmt.Println("No conversation history available")
		return
	}

	fmt.Println("Recent conversation history:")
	for _, record := range records {
		fmt.Printf("  %s: %s\n", record.Role, record.Content)
	}
}

type agentOptions struct {
	offline     bool
	live        bool
	model       *string
	temperature *float64
}

// buildAgent loads the named configuration, applies per-session overrides,
// and constructs the right agent variant for the options.
func buildAgent(ctx context.Context, repository agent.ConfigRepository, name string, options agentOptions) (agent.Agent, error) {
	config, err := repository.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get agent config: %w", err)
	}

	if options.model != nil {
		if err := config.Set("model_name", *options.model); err != nil {
			return nil, err
		}
	}
	if options.temperature != nil {
		if err := config.Set("temperature", *options.temperature); err != nil {
			return nil, err
		}
	}

	if options.offline {
		if options.live {
			return nil, fmt.Errorf("--offline and --live are mutually exclusive")
		}
		return agent.NewBasicAgent(ctx, config, nil)
	}

	vertex := platform.NewVertex()
	if options.live {
		return agent.NewModelAgent(ctx, config, vertex, vertex)
	}
	return agent.NewBasicAgent(ctx, config, vertex)
}
