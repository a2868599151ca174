package agent

import (
	"context"
	"log/slog"
)

// Generator produces a model response for the given input against the
// conversation so far. The production implementation talks to Vertex AI;
// tests inject stubs.
type Generator interface {
	GenerateText(ctx context.Context, config *Config, history []Message, text string) (string, error)
}

// ModelAgent is an Agent variant backed by a text generator. It follows the
// same session contract as BasicAgent: the user record is appended before
// generation, the assistant record only after generation succeeds.
type ModelAgent struct {
	base
	generator Generator
}

// NewModelAgent constructs a ModelAgent from a validated configuration and
// a generator.
func NewModelAgent(ctx context.Context, config *Config, connector Connector, generator Generator) (*ModelAgent, error) {
	b, err := newBase(ctx, config, connector)
	if err != nil {
		return nil, err
	}
	return &ModelAgent{base: b, generator: generator}, nil
}

// ProcessMessage generates a model response for text. Generator failures are
// wrapped as *AgentError carrying the agent identifier; the already-appended
// user record persists and no assistant record is added.
func (a *ModelAgent) ProcessMessage(ctx context.Context, text string, callContext map[string]any) (string, error) {
	history := a.session.history(0)

	a.AddMessage(NewMessage(RoleUser, text))

	response, err := a.generator.GenerateText(ctx, a.config, history, text)
	if err != nil {
		return "", &AgentError{
			AgentID: a.id,
			Message: "generate response: " + err.Error(),
			Err:     err,
		}
	}

	a.AddMessage(NewMessage(RoleAssistant, response))

	if a.config.EnableLogging {
		slog.Info("Processed message.", slog.String("agentName", a.config.Name))
	}

	return response, nil
}
