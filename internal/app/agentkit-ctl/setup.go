package agentkitctl

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/scaffold"
)

// SetupCmd scaffolds a new AgentKit project: directory tree, default agent
// configuration, environment template, README.
type SetupCmd struct {
	Path        string `default:"." help:"Project directory to set up"`
	ProjectID   string `help:"Google Cloud project ID"`
	Location    string `default:"us-central1" help:"Google Cloud location"`
	AgentName   string `default:"my-agent" help:"Default agent name"`
	Description string `help:"Default agent description"`
	Interactive bool   `short:"i" help:"Prompt for project values instead of taking them from flags"`
}

func (command *SetupCmd) Run(ctx context.Context, fsys afero.Fs) error {
	params := scaffold.ProjectParams{
		ProjectID:        command.ProjectID,
		Location:         command.Location,
		AgentName:        command.AgentName,
		AgentDescription: command.Description,
	}

	root := command.Path

	if command.Interactive {
		reader := bufio.NewScanner(os.Stdin)

		fmt.Println("AgentKit setup wizard")
		fmt.Println()

		root = prompt(reader, "Project directory", root)
		params.ProjectID = prompt(reader, "Google Cloud project ID", params.ProjectID)
		params.Location = prompt(reader, "Google Cloud location", params.Location)
		params.AgentName = prompt(reader, "Default agent name", params.AgentName)
		params.AgentDescription = prompt(reader, "Agent description", params.AgentDescription)
		fmt.Println()
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve project directory: %w", err)
	}

	if err := scaffold.CreateProject(fsys, absRoot, params); err != nil {
		return fmt.Errorf("set up project: %w", err)
	}

	fmt.Printf("Project set up in %s\n", absRoot)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Copy .env.template to .env and update the values")
	fmt.Printf("  2. Run: %s validate\n", executableName())
	fmt.Printf("  3. Run: %s init %s\n", executableName(), params.AgentName)

	return nil
}

func prompt(reader *bufio.Scanner, label, fallback string) string {
	if fallback != "" {
		fmt.Printf("%s [%s]: ", label, fallback)
	} else {
		fmt.Printf("%s: ", label)
	}

	if !reader.Scan() {
		return fallback
	}

	value := strings.TrimSpace(reader.Text())
	if value == "" {
		return fallback
	}
	return value
}
