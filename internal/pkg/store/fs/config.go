// Package fs stores agent configurations as YAML files on a filesystem.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
)

const configFileExtension = ".yaml"

var namePattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// ConfigRepository implements agent.ConfigRepository with one
// <name>.yaml file per agent under basePath.
type ConfigRepository struct {
	basePath string
	fs       afero.Fs
}

// NewConfigRepository creates the base path if needed and returns the
// repository.
func NewConfigRepository(basePath string, fsys afero.Fs) (*ConfigRepository, error) {
	if err := fsys.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create config base path: %w", err)
	}

	return &ConfigRepository{
		basePath: basePath,
		fs:       fsys,
	}, nil
}

// Exists reports whether a configuration is stored under the given name.
// Returns agent.ErrAgentNameInvalid when the name is malformed.
func (r *ConfigRepository) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	path, err := r.configPath(name)
	if err != nil {
		return false, err
	}

	exists, err := afero.Exists(r.fs, path)
	if err != nil {
		return false, fmt.Errorf("check config file: %w", err)
	}
	return exists, nil
}

// Get loads and strictly decodes the configuration stored under name.
// Returns agent.ErrAgentConfigNotFound when no configuration exists.
func (r *ConfigRepository) Get(ctx context.Context, name string) (*agent.Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := r.configPath(name)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", agent.ErrAgentConfigNotFound, name)
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var fields map[string]any
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("unmarshal config %s: %w", name, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("unmarshal config %s: file is empty", name)
	}

	config, err := agent.ConfigFromMap(fields)
	if err != nil {
		return nil, fmt.Errorf("decode config %s: %w", name, err)
	}

	return config, nil
}

// Update writes the configuration under name, overwriting any previous one.
func (r *ConfigRepository) Update(ctx context.Context, name string, config *agent.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := r.configPath(name)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshal config %s: %w", name, err)
	}

	if err := afero.WriteFile(r.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// List returns the names of every stored configuration, sorted.
func (r *ConfigRepository) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := afero.ReadDir(r.fs, r.basePath)
	if err != nil {
		return nil, fmt.Errorf("read config base path: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), configFileExtension) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), configFileExtension)
		if !namePattern.MatchString(name) {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

func (r *ConfigRepository) configPath(name string) (string, error) {
	if !namePattern.MatchString(name) {
		return "", fmt.Errorf("%w: %q", agent.ErrAgentNameInvalid, name)
	}
	return filepath.Join(r.basePath, name+configFileExtension), nil
}
