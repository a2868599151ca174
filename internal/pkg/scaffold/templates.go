package scaffold

import "fmt"

func envTemplate(params ProjectParams) string {
	return fmt.Sprintf(`# Google Cloud configuration
GOOGLE_CLOUD_PROJECT=%s
GOOGLE_CLOUD_LOCATION=%s
# GOOGLE_APPLICATION_CREDENTIALS=path/to/service-account.json

# AgentKit configuration
AGENTKIT_LOG_LEVEL=info
AGENTKIT_LOG_FORMAT=text-color
`, params.ProjectID, params.Location)
}

const projectReadme = `# AgentKit Project

An AgentKit project for building agents on Google Vertex AI.

## Setup

1. Copy ` + "`.env.template`" + ` to ` + "`.env`" + ` and update the values
2. Validate the environment: ` + "`agentkit-ctl validate`" + `

## Directory structure

- ` + "`agents/`" + ` - agent configurations and code
- ` + "`examples/`" + ` - example code and demonstrations
- ` + "`notebooks/`" + ` - notebooks for interactive exploration
- ` + "`data/`" + ` - data files and resources
- ` + "`configs/`" + ` - configuration files
- ` + "`logs/`" + ` - log files

## Quick start

1. Initialize a new agent:

       agentkit-ctl init my-agent

2. Test the agent:

       agentkit-ctl test my-agent

3. Start an interactive chat:

       agentkit-ctl chat my-agent
`

// exampleProgram emits a runnable example for a scaffolded agent. The
// scaffolded directory lives in the user's own module, so the example can
// only depend on the standard library and the installed agentkit-ctl
// binary; it must never import this module's packages.
func exampleProgram(name string) string {
	return fmt.Sprintf(`// Example session with the %[1]s agent. Requires agentkit-ctl on PATH.
package main

import (
	"fmt"
	"os"
	"os/exec"
)

func main() {
	path, err := exec.LookPath("agentkit-ctl")
	if err != nil {
		fmt.Fprintln(os.Stderr, "agentkit-ctl not found on PATH; run: go install github.com/orbiqd/orbiqd-agentkit/cmd/agentkit-ctl@latest")
		os.Exit(1)
	}

	cmd := exec.Command(path, "test", %[1]q, "--offline", "--message", "Hello, agent!")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
`, name)
}
