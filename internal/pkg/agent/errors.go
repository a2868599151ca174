package agent

import (
	"errors"
	"fmt"
)

// Machine-readable error categories carried by the typed errors below.
const (
	CodeConfiguration = "CONFIG_ERROR"
	CodeAgent         = "AGENT_ERROR"
)

var (
	// ErrAgentConfigNotFound indicates the agent configuration does not exist.
	ErrAgentConfigNotFound = errors.New("agent config not found")

	// ErrAgentNameInvalid indicates the agent name is missing or invalid.
	ErrAgentNameInvalid = errors.New("agent name invalid")
)

// ConfigurationError reports a bad or missing configuration value, including
// a failed connection to the target environment during agent construction.
// Field names the offending configuration key when one applies.
type ConfigurationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (field: %s)", e.Message, e.Field)
	}
	return e.Message
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// Code returns the machine-readable category of the error.
func (e *ConfigurationError) Code() string { return CodeConfiguration }

// AgentError reports a failure during message processing. AgentID carries
// the identifier of the agent the failure occurred on.
type AgentError struct {
	AgentID string
	Message string
	Err     error
}

func (e *AgentError) Error() string {
	if e.AgentID != "" {
		return fmt.Sprintf("%s (agent: %s)", e.Message, e.AgentID)
	}
	return e.Message
}

func (e *AgentError) Unwrap() error { return e.Err }

// Code returns the machine-readable category of the error.
func (e *AgentError) Code() string { return CodeAgent }
