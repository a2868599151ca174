// Package envcheck inspects the process environment and external-service
// reachability and produces a structured status report for the CLI layer.
package envcheck

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/cli/safeexec"
)

// CodeValidation is the machine-readable category carried by ValidationError.
const CodeValidation = "VALIDATION_ERROR"

// Environment variables inspected by Validate. Required absences become
// errors, optional absences become warnings.
var (
	RequiredEnvVars = []string{"GOOGLE_CLOUD_PROJECT"}
	OptionalEnvVars = []string{"GOOGLE_APPLICATION_CREDENTIALS", "GOOGLE_CLOUD_LOCATION"}
)

// Minimum supported Go toolchain, matching the module's go directive.
const (
	minGoMajor = 1
	minGoMinor = 23
)

// maskedIndicator is recorded for present variables instead of their value.
// Values never enter the report.
const maskedIndicator = "set"

// ValidationError reports hard environment problems. The message joins every
// collected error with "; ".
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Code returns the machine-readable category of the error.
func (e *ValidationError) Code() string { return CodeValidation }

// Status is the full environment report consumed by presentation layers.
type Status struct {
	RuntimeVersion       string            `json:"runtime_version"`
	ExecutablePath       string            `json:"executable_path"`
	WorkingDirectory     string            `json:"working_directory"`
	EnvironmentVariables map[string]string `json:"environment_variables"`
	GoogleCloudSetup     bool              `json:"google_cloud_setup"`
	GoogleCloudProject   string            `json:"google_cloud_project,omitempty"`
	Warnings             []string          `json:"warnings"`
	Errors               []string          `json:"errors"`
}

// Checker runs the environment validation. Its collaborators are injectable
// so the aggregation logic is testable without touching the real process
// environment or Google Cloud.
type Checker struct {
	Getenv             func(string) string
	LookPath           func(string) (string, error)
	ResolveCredentials func(context.Context) (string, error)
	RuntimeVersion     func() string
}

// NewChecker returns a Checker bound to the real process environment. The
// credential resolver is supplied by the caller (the platform package in
// production) so this package stays free of cloud dependencies.
func NewChecker(resolveCredentials func(context.Context) (string, error)) *Checker {
	return &Checker{
		Getenv:             os.Getenv,
		LookPath:           safeexec.LookPath,
		ResolveCredentials: resolveCredentials,
		RuntimeVersion:     runtime.Version,
	}
}

// Validate inspects the environment and returns the status report. When hard
// errors were collected the report is returned together with a
// *ValidationError joining them; the report is still fully populated so
// callers can render it. Validate is read-only.
func (c *Checker) Validate(ctx context.Context) (*Status, error) {
	status := &Status{
		RuntimeVersion:       c.RuntimeVersion(),
		EnvironmentVariables: map[string]string{},
		Warnings:             []string{},
		Errors:               []string{},
	}

	if executable, err := os.Executable(); err == nil {
		status.ExecutablePath = executable
	}
	if workingDirectory, err := os.Getwd(); err == nil {
		status.WorkingDirectory = workingDirectory
	}

	if !runtimeAtLeast(status.RuntimeVersion, minGoMajor, minGoMinor) {
		status.Errors = append(status.Errors,
			fmt.Sprintf("Go %d.%d or higher is required, running %s", minGoMajor, minGoMinor, status.RuntimeVersion))
	}

	for _, name := range RequiredEnvVars {
		if c.Getenv(name) != "" {
			status.EnvironmentVariables[name] = maskedIndicator
		} else {
			status.Errors = append(status.Errors,
				fmt.Sprintf("required environment variable %s is not set", name))
		}
	}

	for _, name := range OptionalEnvVars {
		if c.Getenv(name) != "" {
			status.EnvironmentVariables[name] = maskedIndicator
		} else {
			status.Warnings = append(status.Warnings,
				fmt.Sprintf("optional environment variable %s is not set", name))
		}
	}

	if projectID, err := c.ResolveCredentials(ctx); err != nil {
		status.Warnings = append(status.Warnings,
			fmt.Sprintf("Google Cloud authentication not configured: %v", err))
	} else {
		status.GoogleCloudSetup = true
		status.GoogleCloudProject = projectID
	}

	if _, err := c.LookPath("gcloud"); err != nil {
		status.Warnings = append(status.Warnings,
			"gcloud CLI not found on PATH; credential setup may be harder without it")
	}

	if len(status.Errors) > 0 {
		return status, &ValidationError{
			Field:   "environment",
			Message: fmt.Sprintf("environment validation failed: %s", strings.Join(status.Errors, "; ")),
		}
	}

	return status, nil
}

// runtimeAtLeast reports whether a runtime.Version() string like "go1.23.4"
// satisfies the minimum. Non-release strings (devel builds) pass.
func runtimeAtLeast(version string, major, minor int) bool {
	trimmed, ok := strings.CutPrefix(version, "go")
	if !ok {
		return true
	}

	parts := strings.SplitN(trimmed, ".", 3)
	if len(parts) < 2 {
		return true
	}

	haveMajor, err := strconv.Atoi(parts[0])
	if err != nil {
		return true
	}
	haveMinor, err := strconv.Atoi(parts[1])
	if err != nil {
		return true
	}

	if haveMajor != major {
		return haveMajor > major
	}
	return haveMinor >= minor
}
