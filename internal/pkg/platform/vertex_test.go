package platform

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
)

func TestBuildContents(t *testing.T) {
	tests := []struct {
		name      string
		history   []agent.Message
		text      string
		wantRoles []genai.Role
		wantTexts []string
	}{
		{
			name:      "no history",
			text:      "hello",
			wantRoles: []genai.Role{genai.RoleUser},
			wantTexts: []string{"hello"},
		},
		{
			name: "assistant records become model turns",
			history: []agent.Message{
				agent.NewMessage(agent.RoleUser, "question"),
				agent.NewMessage(agent.RoleAssistant, "answer"),
			},
			text:      "follow-up",
			wantRoles: []genai.Role{genai.RoleUser, genai.RoleModel, genai.RoleUser},
			wantTexts: []string{"question", "answer", "follow-up"},
		},
		{
			name: "system records map to user turns",
			history: []agent.Message{
				agent.NewMessage(agent.RoleSystem, "be brief"),
			},
			text:      "hello",
			wantRoles: []genai.Role{genai.RoleUser, genai.RoleUser},
			wantTexts: []string{"be brief", "hello"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contents := buildContents(tt.history, tt.text)
			require.Len(t, contents, len(tt.wantRoles))

			for i, content := range contents {
				assert.Equal(t, string(tt.wantRoles[i]), content.Role)
				require.Len(t, content.Parts, 1)
				assert.Equal(t, tt.wantTexts[i], content.Parts[0].Text)
			}
		})
	}
}

func TestBuildGenerateConfig(t *testing.T) {
	config := agent.NewConfig()
	config.Name = "helper"
	config.ProjectID = "test-project"

	generateConfig := buildGenerateConfig(config)

	require.NotNil(t, generateConfig.Temperature)
	assert.InDelta(t, 0.7, float64(*generateConfig.Temperature), 1e-6)
	require.NotNil(t, generateConfig.TopP)
	assert.InDelta(t, 0.9, float64(*generateConfig.TopP), 1e-6)
	require.NotNil(t, generateConfig.TopK)
	assert.InDelta(t, 40, float64(*generateConfig.TopK), 1e-6)
	assert.Equal(t, int32(1024), generateConfig.MaxOutputTokens)
	assert.Nil(t, generateConfig.SystemInstruction)

	t.Run("system prompt becomes the system instruction", func(t *testing.T) {
		config.SystemPrompt = "You are terse."

		generateConfig := buildGenerateConfig(config)
		require.NotNil(t, generateConfig.SystemInstruction)
		require.Len(t, generateConfig.SystemInstruction.Parts, 1)
		assert.Equal(t, "You are terse.", generateConfig.SystemInstruction.Parts[0].Text)
	})
}

func TestGenerateTextRequiresConnect(t *testing.T) {
	vertex := NewVertex()

	_, err := vertex.GenerateText(context.Background(), agent.NewConfig(), nil, "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not connected")
}
