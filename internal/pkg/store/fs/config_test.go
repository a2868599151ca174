package fs

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
)

func testAgentConfig(name string) *agent.Config {
	config := agent.NewConfig()
	config.Name = name
	config.ProjectID = "test-project"
	return config
}

func TestNewConfigRepository(t *testing.T) {
	memFs := afero.NewMemMapFs()
	basePath := "/tmp/test-agents"

	repo, err := NewConfigRepository(basePath, memFs)
	require.NoError(t, err)
	require.NotNil(t, repo)

	exists, err := afero.DirExists(memFs, basePath)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestConfigRepository_UpdateGet(t *testing.T) {
	memFs := afero.NewMemMapFs()
	basePath := "/tmp/test-agents"
	repo, err := NewConfigRepository(basePath, memFs)
	require.NoError(t, err)
	ctx := context.Background()

	config := testAgentConfig("helper")
	config.Temperature = 1.2
	config.CustomParameters["team"] = "docs"

	err = repo.Update(ctx, "helper", config)
	require.NoError(t, err)

	filePath := filepath.Join(basePath, "helper.yaml")
	exists, err := afero.Exists(memFs, filePath)
	require.NoError(t, err)
	assert.True(t, exists)

	loaded, err := repo.Get(ctx, "helper")
	require.NoError(t, err)
	assert.Equal(t, "helper", loaded.Name)
	assert.Equal(t, "test-project", loaded.ProjectID)
	assert.InDelta(t, 1.2, loaded.Temperature, 0.0001)
	assert.Equal(t, "docs", loaded.CustomParameters["team"])
}

func TestConfigRepository_Exists(t *testing.T) {
	memFs := afero.NewMemMapFs()
	repo, err := NewConfigRepository("/tmp/test-agents", memFs)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Update(ctx, "helper", testAgentConfig("helper")))

	t.Run("existing config", func(t *testing.T) {
		exists, err := repo.Exists(ctx, "helper")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("missing config", func(t *testing.T) {
		exists, err := repo.Exists(ctx, "other")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("invalid name", func(t *testing.T) {
		exists, err := repo.Exists(ctx, "Helper")
		assert.ErrorIs(t, err, agent.ErrAgentNameInvalid)
		assert.False(t, exists)
	})
}

func TestConfigRepository_Get(t *testing.T) {
	memFs := afero.NewMemMapFs()
	basePath := "/tmp/test-agents"
	repo, err := NewConfigRepository(basePath, memFs)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("missing config", func(t *testing.T) {
		_, err := repo.Get(ctx, "helper")
		assert.ErrorIs(t, err, agent.ErrAgentConfigNotFound)
	})

	t.Run("invalid name", func(t *testing.T) {
		_, err := repo.Get(ctx, "Helper")
		assert.ErrorIs(t, err, agent.ErrAgentNameInvalid)
	})

	t.Run("unknown key in file rejected", func(t *testing.T) {
		data := []byte("name: helper\nproject_id: test-project\nmodle_name: gemini-pro\n")
		require.NoError(t, afero.WriteFile(memFs, filepath.Join(basePath, "helper.yaml"), data, 0o644))

		_, err := repo.Get(ctx, "helper")
		var configErr *agent.ConfigurationError
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, "modle_name", configErr.Field)
	})

	t.Run("out of domain value rejected", func(t *testing.T) {
		data := []byte("name: helper\nproject_id: test-project\ntemperature: 5.0\n")
		require.NoError(t, afero.WriteFile(memFs, filepath.Join(basePath, "helper.yaml"), data, 0o644))

		_, err := repo.Get(ctx, "helper")
		var configErr *agent.ConfigurationError
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, "temperature", configErr.Field)
	})
}

func TestConfigRepository_List(t *testing.T) {
	memFs := afero.NewMemMapFs()
	repo, err := NewConfigRepository("/tmp/test-agents", memFs)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		names, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("sorted names", func(t *testing.T) {
		require.NoError(t, repo.Update(ctx, "zeta", testAgentConfig("zeta")))
		require.NoError(t, repo.Update(ctx, "alpha", testAgentConfig("alpha")))

		names, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "zeta"}, names)
	})
}
