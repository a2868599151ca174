// Package scaffold generates project and agent directory trees: directories,
// template configuration files, environment files and starter code.
package scaffold

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
)

// CodeResource is the machine-readable category carried by ResourceError.
const CodeResource = "RESOURCE_ERROR"

// projectDirectories is the directory tree created for a new project.
var projectDirectories = []string{
	"agents",
	"examples",
	"notebooks",
	"data",
	"configs",
	"logs",
}

// ResourceError reports a failure to create or write a scaffolded resource.
type ResourceError struct {
	Resource string
	Message  string
	Err      error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Resource, e.Message)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// Code returns the machine-readable category of the error.
func (e *ResourceError) Code() string { return CodeResource }

// ProjectParams customizes a scaffolded project. Zero values fall back to
// placeholder template content.
type ProjectParams struct {
	ProjectID        string
	Location         string
	AgentName        string
	AgentDescription string
}

func (p ProjectParams) withDefaults() ProjectParams {
	if p.ProjectID == "" {
		p.ProjectID = "your-google-cloud-project"
	}
	if p.Location == "" {
		p.Location = "us-central1"
	}
	if p.AgentName == "" {
		p.AgentName = "example-agent"
	}
	if p.AgentDescription == "" {
		p.AgentDescription = "An example AgentKit agent"
	}
	return p
}

// templateConfig builds the starter agent configuration for the params.
func templateConfig(params ProjectParams) *agent.Config {
	config := agent.NewConfig()
	config.Name = params.AgentName
	config.Description = params.AgentDescription
	config.ProjectID = params.ProjectID
	config.Location = params.Location
	config.SystemPrompt = "You are a helpful AI assistant."
	return config
}

// CreateProject builds the project tree under root: the standard directory
// set, a default agent configuration, an environment file and a README.
func CreateProject(fsys afero.Fs, root string, params ProjectParams) error {
	params = params.withDefaults()

	for _, directory := range projectDirectories {
		path := filepath.Join(root, directory)
		if err := fsys.MkdirAll(path, 0o755); err != nil {
			return &ResourceError{Resource: path, Message: "create directory", Err: err}
		}
		slog.Debug("Created project directory.", slog.String("path", path))
	}

	configPath := filepath.Join(root, "configs", "default-agent.yaml")
	if err := writeConfig(fsys, configPath, templateConfig(params)); err != nil {
		return err
	}

	envPath := filepath.Join(root, ".env.template")
	if err := writeFile(fsys, envPath, envTemplate(params)); err != nil {
		return err
	}

	readmePath := filepath.Join(root, "README.md")
	if err := writeFile(fsys, readmePath, projectReadme); err != nil {
		return err
	}

	slog.Info("Project scaffolding complete.", slog.String("root", root))

	return nil
}

// InitAgent creates an agent directory under dir with a config.yaml and a
// runnable example, returning the configuration path.
func InitAgent(fsys afero.Fs, dir, name string) (string, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return "", &ResourceError{Resource: dir, Message: "create agent directory", Err: err}
	}

	config := templateConfig(ProjectParams{AgentName: name}.withDefaults())
	config.Description = fmt.Sprintf("Agent configuration for %s", name)

	configPath := filepath.Join(dir, "config.yaml")
	if err := writeConfig(fsys, configPath, config); err != nil {
		return "", err
	}

	examplesDir := filepath.Join(dir, "examples")
	if err := fsys.MkdirAll(examplesDir, 0o755); err != nil {
		return "", &ResourceError{Resource: examplesDir, Message: "create examples directory", Err: err}
	}

	examplePath := filepath.Join(examplesDir, "main.go")
	if err := writeFile(fsys, examplePath, exampleProgram(name)); err != nil {
		return "", err
	}

	slog.Info("Agent initialized.",
		slog.String("agentName", name),
		slog.String("configPath", configPath),
	)

	return configPath, nil
}

func writeConfig(fsys afero.Fs, path string, config *agent.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return &ResourceError{Resource: path, Message: "marshal configuration", Err: err}
	}
	return writeFile(fsys, path, string(data))
}

func writeFile(fsys afero.Fs, path, content string) error {
	if err := afero.WriteFile(fsys, path, []byte(content), 0o644); err != nil {
		return &ResourceError{Resource: path, Message: "write file", Err: err}
	}
	return nil
}
