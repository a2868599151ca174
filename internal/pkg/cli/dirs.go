package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"
	"github.com/mitchellh/go-homedir"
)

const (
	ExecutableCtl = "agentkit-ctl"
	ExecutableMCP = "agentkit-mcp"
)

const defaultStoreDir = "~/.orbiqd/agentkit/agents/"

// EnvOverrideName derives the environment variable overriding an option,
// e.g. "store-dir" becomes AGENTKIT_STORE_DIR.
func EnvOverrideName(option string) string {
	return "AGENTKIT_" + strcase.ToScreamingSnake(option)
}

// ResolveStoreDir returns the absolute agent-config store directory. An
// explicit path wins, then the AGENTKIT_STORE_DIR environment variable,
// then the default under the home directory.
func ResolveStoreDir(explicit string) (string, error) {
	dir := explicit
	if dir == "" {
		dir = os.Getenv(EnvOverrideName("store-dir"))
	}
	if dir == "" {
		dir = defaultStoreDir
	}

	expanded, err := homedir.Expand(dir)
	if err != nil {
		return "", fmt.Errorf("expand store dir: %w", err)
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("resolve absolute store dir: %w", err)
	}

	return abs, nil
}
