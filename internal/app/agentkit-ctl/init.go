package agentkitctl

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/scaffold"
)

// InitCmd initializes a new agent: a directory with its configuration and a
// runnable example, registered in the config store unless disabled.
type InitCmd struct {
	Name     string `arg:"" required:"" help:"Agent name"`
	Output   string `short:"o" help:"Output directory (defaults to ./agents/<name>)"`
	Register bool   `default:"true" negatable:"" help:"Register the agent in the config store"`
}

func (command *InitCmd) Run(ctx context.Context, fsys afero.Fs, repository agent.ConfigRepository) error {
	output := command.Output
	if output == "" {
		workingDirectory, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		output = filepath.Join(workingDirectory, "agents", command.Name)
	}

	configPath, err := scaffold.InitAgent(fsys, output, command.Name)
	if err != nil {
		return fmt.Errorf("initialize agent: %w", err)
	}

	if command.Register {
		config, err := loadAgentConfig(fsys, configPath)
		if err != nil {
			return err
		}

		if err := repository.Update(ctx, command.Name, config); err != nil {
			return fmt.Errorf("register agent config: %w", err)
		}
		slog.Info("Agent registered in config store.", slog.String("agentName", command.Name))
	}

	fmt.Printf("Agent %q initialized.\n", command.Name)
	fmt.Printf("Configuration saved to %s\n", configPath)

	return nil
}

// loadAgentConfig reads a scaffolded config file back through the strict
// schema so a broken template fails loudly at registration time.
func loadAgentConfig(fsys afero.Fs, path string) (*agent.Config, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read agent config: %w", err)
	}

	var fields map[string]any
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("unmarshal agent config: %w", err)
	}

	config, err := agent.ConfigFromMap(fields)
	if err != nil {
		return nil, fmt.Errorf("decode agent config: %w", err)
	}
	return config, nil
}
