package cli

import (
	"fmt"

	"github.com/spf13/afero"

	storefs "github.com/orbiqd/orbiqd-agentkit/internal/pkg/store/fs"
)

// StoreConfig carries the agent-config store options shared by every binary.
type StoreConfig struct {
	Dir string `help:"Directory holding agent configurations. Defaults to AGENTKIT_STORE_DIR or ~/.orbiqd/agentkit/agents/."`
}

// CreateConfigRepositoryFromConfig resolves the store directory and opens
// the filesystem-backed configuration repository on it.
func CreateConfigRepositoryFromConfig(config StoreConfig, fsys afero.Fs) (*storefs.ConfigRepository, error) {
	dir, err := ResolveStoreDir(config.Dir)
	if err != nil {
		return nil, fmt.Errorf("resolve store dir: %w", err)
	}

	repository, err := storefs.NewConfigRepository(dir, fsys)
	if err != nil {
		return nil, fmt.Errorf("open config repository: %w", err)
	}

	return repository, nil
}
