package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Connector establishes connectivity to the target environment during agent
// construction. Implementations live at the platform boundary; a nil
// connector skips the step entirely (offline use and tests).
type Connector interface {
	Connect(ctx context.Context, projectID, location string) error
}

// Status is a point-in-time snapshot of an agent.
type Status struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	MessageCount int       `json:"message_count"`
	Config       Config    `json:"config"`
}

// Agent owns a validated configuration and an ordered conversation history
// and exposes a single message-processing operation. Concrete variants
// supply the processing strategy; everything else is shared.
//
// An Agent instance is not safe for concurrent use. Callers either keep the
// one-agent-one-caller discipline or serialize access themselves.
type Agent interface {
	// ID returns the unique identifier assigned at construction.
	ID() string

	// Config returns the agent's configuration.
	Config() *Config

	// ProcessMessage maps the input text (plus optional free-form context)
	// to a response. On success exactly one user record and one assistant
	// record have been appended to the history; on failure after the user
	// append, the user record persists and no assistant record is added.
	ProcessMessage(ctx context.Context, text string, callContext map[string]any) (string, error)

	// AddMessage appends a record to the history without validation.
	AddMessage(message Message)

	// History returns a copy of the trailing limit records in original
	// order; limit <= 0 returns everything.
	History(limit int) []Message

	// ClearHistory empties the history. Irreversible.
	ClearHistory()

	// Status returns a snapshot of the agent.
	Status() Status
}

// base carries the identity, configuration and session state shared by all
// agent variants.
type base struct {
	id        string
	config    *Config
	createdAt time.Time
	session   session
}

// newBase validates the configuration, assigns identity, and runs the
// connectivity step. Any connector failure is wrapped as a
// *ConfigurationError; callers never see the raw platform error.
func newBase(ctx context.Context, config *Config, connector Connector) (base, error) {
	if err := config.Validate(); err != nil {
		return base{}, err
	}

	b := base{
		id:        uuid.NewString(),
		config:    config,
		createdAt: time.Now().UTC(),
	}

	if config.EnableLogging {
		slog.Info("Initialized agent.",
			slog.String("agentName", config.Name),
			slog.String("agentId", b.id),
		)
	}

	if connector != nil {
		if err := connector.Connect(ctx, config.ProjectID, config.Location); err != nil {
			return base{}, &ConfigurationError{
				Message: fmt.Sprintf("connect to project %s: %v", config.ProjectID, err),
				Err:     err,
			}
		}
		if config.EnableLogging {
			slog.Info("Connected to Google Cloud project.", slog.String("projectId", config.ProjectID))
		}
	}

	return b, nil
}

func (b *base) ID() string { return b.id }

func (b *base) Config() *Config { return b.config }

func (b *base) AddMessage(message Message) {
	b.session.append(message)
	slog.Debug("Added message to history.", slog.String("messageId", message.ID))
}

func (b *base) History(limit int) []Message {
	return b.session.history(limit)
}

func (b *base) ClearHistory() {
	b.session.clear()
	slog.Info("Cleared session history.", slog.String("agentId", b.id))
}

func (b *base) Status() Status {
	return Status{
		ID:           b.id,
		Name:         b.config.Name,
		CreatedAt:    b.createdAt,
		MessageCount: b.session.len(),
		Config:       *b.config.Clone(),
	}
}

// BasicAgent is the simplest Agent variant: it echoes the input back with
// the agent's name. Useful as a starting point and for exercising the
// toolkit without model access.
type BasicAgent struct {
	base
}

// NewBasicAgent constructs a BasicAgent from a validated configuration.
func NewBasicAgent(ctx context.Context, config *Config, connector Connector) (*BasicAgent, error) {
	b, err := newBase(ctx, config, connector)
	if err != nil {
		return nil, err
	}
	return &BasicAgent{base: b}, nil
}

// ProcessMessage appends the user record, produces the deterministic echo
// response, appends the assistant record and returns the response.
func (a *BasicAgent) ProcessMessage(ctx context.Context, text string, callContext map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &AgentError{AgentID: a.id, Message: "process message: " + err.Error(), Err: err}
	}

	a.AddMessage(NewMessage(RoleUser, text))

	response := fmt.Sprintf("Agent %q received: %s", a.config.Name, text)

	a.AddMessage(NewMessage(RoleAssistant, response))

	if a.config.EnableLogging {
		slog.Info("Processed message.", slog.String("agentName", a.config.Name))
	}

	return response, nil
}

// ConversationSummary formats the last 10 records as "{role}: {content}"
// lines, oldest first, or a fixed sentinel when the history is empty.
func (a *BasicAgent) ConversationSummary() string {
	records := a.session.history(10)
	if len(records) == 0 {
		return "No conversation history available."
	}

	lines := make([]string, 0, len(records))
	for _, record := range records {
		lines = append(lines, fmt.Sprintf("%s: %s", record.Role, record.Content))
	}
	return strings.Join(lines, "\n")
}
