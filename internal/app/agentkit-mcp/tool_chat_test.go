package agentkitmcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
)

type fixedGenerator string

func (g fixedGenerator) GenerateText(ctx context.Context, config *agent.Config, history []agent.Message, text string) (string, error) {
	return string(g), nil
}

func testConfig() *agent.Config {
	config := agent.NewConfig()
	config.Name = "helper-agent"
	config.ProjectID = "test-project"
	return config
}

func TestNewChatAgent_OfflineEchoes(t *testing.T) {
	ctx := context.Background()

	chatAgent, err := newChatAgent(ctx, testConfig(), true)
	require.NoError(t, err)
	assert.IsType(t, &agent.BasicAgent{}, chatAgent)

	response, err := chatAgent.ProcessMessage(ctx, "ping", nil)
	require.NoError(t, err)
	assert.Equal(t, `Agent "helper-agent" received: ping`, response)
}

func TestCreateChatTool(t *testing.T) {
	ctx := context.Background()
	config := testConfig()

	chatAgent, err := agent.NewModelAgent(ctx, config, nil, fixedGenerator("All good."))
	require.NoError(t, err)

	serverTool := createChatTool(config, chatAgent)
	assert.Equal(t, "chat_helper_agent", serverTool.Tool.Name)

	t.Run("answers through the backing agent, not an echo", func(t *testing.T) {
		request := mcp.CallToolRequest{}
		request.Params.Arguments = map[string]any{"message": "ping"}

		result, err := serverTool.Handler(ctx, request)
		require.NoError(t, err)
		require.False(t, result.IsError)

		text, ok := result.Content[0].(mcp.TextContent)
		require.True(t, ok)
		assert.Equal(t, "All good.", text.Text)
	})

	t.Run("missing message argument is a tool error", func(t *testing.T) {
		request := mcp.CallToolRequest{}

		result, err := serverTool.Handler(ctx, request)
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})
}
