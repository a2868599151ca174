// Package platform holds the Google Cloud boundary: the Vertex AI client
// used for agent connectivity and text generation, and ambient credential
// resolution.
package platform

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
)

// Vertex connects to Vertex AI and generates model responses. It implements
// both agent.Connector and agent.Generator, so a single instance can be
// handed to an agent constructor for connectivity and to a ModelAgent for
// generation.
type Vertex struct {
	client *genai.Client
}

// NewVertex returns an unconnected Vertex client. Connect must run before
// GenerateText.
func NewVertex() *Vertex {
	return &Vertex{}
}

// Connect builds the underlying genai client against the given project and
// location using ambient credentials.
func (v *Vertex) Connect(ctx context.Context, projectID, location string) error {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return fmt.Errorf("create vertex client: %w", err)
	}

	v.client = client
	return nil
}

// buildContents maps the conversation history plus the current input to the
// genai wire shape. Assistant records become model turns; user and system
// records become user turns. The current input is always the last turn.
func buildContents(history []agent.Message, text string) []*genai.Content {
	var contents []*genai.Content
	for _, message := range history {
		var role genai.Role
		switch message.Role {
		case agent.RoleAssistant:
			role = genai.RoleModel
		default:
			role = genai.RoleUser
		}
		contents = append(contents, genai.NewContentFromText(message.Content, role))
	}
	return append(contents, genai.NewContentFromText(text, genai.RoleUser))
}

// buildGenerateConfig maps the agent's sampling parameters to a generation
// config, carrying the system prompt as a system instruction when set.
func buildGenerateConfig(config *agent.Config) *genai.GenerateContentConfig {
	temperature := float32(config.Temperature)
	topP := float32(config.TopP)
	topK := float32(config.TopK)

	generateConfig := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		TopP:            &topP,
		TopK:            &topK,
		MaxOutputTokens: int32(config.MaxTokens),
	}
	if config.SystemPrompt != "" {
		generateConfig.SystemInstruction = genai.NewContentFromText(config.SystemPrompt, genai.RoleUser)
	}
	return generateConfig
}

// GenerateText sends the conversation history plus the current input to the
// configured model and returns the response text.
func (v *Vertex) GenerateText(ctx context.Context, config *agent.Config, history []agent.Message, text string) (string, error) {
	if v.client == nil {
		return "", fmt.Errorf("vertex client is not connected")
	}

	result, err := v.client.Models.GenerateContent(ctx, config.ModelName, buildContents(history, text), buildGenerateConfig(config))
	if err != nil {
		return "", fmt.Errorf("vertex generate content: %w", err)
	}

	responseText := result.Text()
	if responseText == "" {
		return "", fmt.Errorf("vertex returned empty text")
	}

	return responseText, nil
}
