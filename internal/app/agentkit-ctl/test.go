package agentkitctl

import (
	"context"
	"fmt"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
)

// TestCmd sends a single message to a configured agent and prints the reply.
type TestCmd struct {
	Name string `arg:"" required:"" help:"Name of the configured agent"`

	Message string `default:"Hello, agent!" help:"Message to send"`
	Offline bool   `help:"Skip Google Cloud connectivity; echo agent only"`
	Live    bool   `help:"Answer through the configured Vertex AI model instead of echoing"`
}

func (command *TestCmd) Run(ctx context.Context, repository agent.ConfigRepository) error {
	a, err := buildAgent(ctx, repository, command.Name, agentOptions{
		offline: command.Offline,
		live:    command.Live,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Testing agent: %s\n", a.Config().Name)
	fmt.Printf("Sending message: %s\n", command.Message)

	response, err := a.ProcessMessage(ctx, command.Message, nil)
	if err != nil {
		return fmt.Errorf("process message: %w", err)
	}

	fmt.Printf("Response: %s\n", response)
	fmt.Printf("Messages in session: %d\n", a.Status().MessageCount)

	return nil
}
