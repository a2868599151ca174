package agentkitctl

import (
	"context"
	"fmt"
	"sort"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/envcheck"
	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/platform"
)

// ValidateCmd inspects the process environment and reports readiness for
// running agents against Google Cloud.
type ValidateCmd struct{}

func (command *ValidateCmd) Run(ctx context.Context) error {
	checker := envcheck.NewChecker(platform.ResolveCredentials)

	status, validateErr := checker.Validate(ctx)

	fmt.Println("AgentKit environment validation")
	fmt.Println()
	fmt.Printf("Runtime:           %s\n", status.RuntimeVersion)
	fmt.Printf("Executable:        %s\n", status.ExecutablePath)
	fmt.Printf("Working directory: %s\n", status.WorkingDirectory)

	if len(status.EnvironmentVariables) > 0 {
		fmt.Println()
		fmt.Println("Environment variables:")
		names := make([]string, 0, len(status.EnvironmentVariables))
		for name := range status.EnvironmentVariables {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %-32s %s\n", name, status.EnvironmentVariables[name])
		}
	}

	fmt.Println()
	if status.GoogleCloudSetup {
		fmt.Printf("Google Cloud: connected to %s\n", status.GoogleCloudProject)
	} else {
		fmt.Println("Google Cloud: not configured")
	}

	if len(status.Warnings) > 0 {
		fmt.Println()
		fmt.Println("Warnings:")
		for _, warning := range status.Warnings {
			fmt.Printf("  [WARN] %s\n", warning)
		}
	}

	if len(status.Errors) > 0 {
		fmt.Println()
		fmt.Println("Errors:")
		for _, message := range status.Errors {
			fmt.Printf("  [FAIL] %s\n", message)
		}
	}

	fmt.Println()
	if validateErr != nil {
		fmt.Println("Environment validation failed.")
		return validateErr
	}

	fmt.Println("Environment validation completed successfully.")
	return nil
}
