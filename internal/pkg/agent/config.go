package agent

import (
	"context"
	"fmt"
	"slices"

	"github.com/mcuadros/go-defaults"
)

// ConfigRepository persists agent configurations keyed by agent name.
type ConfigRepository interface {
	Exists(ctx context.Context, name string) (bool, error)
	Get(ctx context.Context, name string) (*Config, error)
	Update(ctx context.Context, name string, config *Config) error
	List(ctx context.Context) ([]string, error)
}

// configKeys lists every known configuration key in declaration order.
// ConfigFromMap applies keys in this order so that validation failures are
// deterministic regardless of map iteration order.
var configKeys = []string{
	"name",
	"description",
	"version",
	"project_id",
	"location",
	"model_name",
	"temperature",
	"max_tokens",
	"top_p",
	"top_k",
	"system_prompt",
	"max_retries",
	"timeout",
	"enable_safety",
	"enable_logging",
	"custom_parameters",
}

// requiredConfigKeys must be present in any configuration source handed to
// ConfigFromMap. Emptiness of their values is deliberately not checked here;
// that is Validate's job at agent construction.
var requiredConfigKeys = []string{"name", "project_id"}

// Config holds every parameter an agent needs to run against the target
// Google Cloud project. Bounded numeric fields stay within their domain:
// construction and every single-field reassignment through Set re-check the
// bounds before the value takes effect.
type Config struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version" default:"1.0.0"`

	ProjectID string `json:"project_id"`
	Location  string `json:"location" default:"us-central1"`

	ModelName   string  `json:"model_name" default:"gemini-pro"`
	Temperature float64 `json:"temperature" default:"0.7"`
	MaxTokens   int     `json:"max_tokens" default:"1024"`
	TopP        float64 `json:"top_p" default:"0.9"`
	TopK        int     `json:"top_k" default:"40"`

	SystemPrompt string  `json:"system_prompt"`
	MaxRetries   int     `json:"max_retries" default:"3"`
	Timeout      float64 `json:"timeout" default:"30"`

	EnableSafety  bool `json:"enable_safety" default:"true"`
	EnableLogging bool `json:"enable_logging" default:"true"`

	CustomParameters map[string]any `json:"custom_parameters"`
}

// NewConfig returns a configuration populated with the documented defaults.
func NewConfig() *Config {
	config := &Config{}
	defaults.SetDefaults(config)
	config.CustomParameters = map[string]any{}
	return config
}

// ConfigFromMap builds a configuration from a decoded configuration source,
// typically a YAML file. The schema is strict: missing required keys,
// out-of-domain bounded values, wrongly typed values, and unknown keys all
// fail with a *ConfigurationError naming the offending field. Keys that are
// absent keep their documented defaults.
func ConfigFromMap(fields map[string]any) (*Config, error) {
	for _, key := range requiredConfigKeys {
		if _, ok := fields[key]; !ok {
			return nil, &ConfigurationError{
				Field:   key,
				Message: fmt.Sprintf("%s is required", key),
			}
		}
	}

	config := NewConfig()

	for _, key := range configKeys {
		value, ok := fields[key]
		if !ok {
			continue
		}
		if err := config.Set(key, value); err != nil {
			return nil, err
		}
	}

	var unknown []string
	for key := range fields {
		if !slices.Contains(configKeys, key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return nil, &ConfigurationError{
			Field:   unknown[0],
			Message: fmt.Sprintf("unknown configuration key %q", unknown[0]),
		}
	}

	return config, nil
}

// Set reassigns a single configuration field, re-checking the field's domain
// before the assignment takes effect. Unknown keys fail.
func (c *Config) Set(key string, value any) error {
	switch key {
	case "name":
		return setString(&c.Name, key, value)
	case "description":
		return setString(&c.Description, key, value)
	case "version":
		return setString(&c.Version, key, value)
	case "project_id":
		return setString(&c.ProjectID, key, value)
	case "location":
		return setString(&c.Location, key, value)
	case "model_name":
		return setString(&c.ModelName, key, value)
	case "temperature":
		return setFloat(&c.Temperature, key, value, 0.0, 2.0)
	case "max_tokens":
		return setInt(&c.MaxTokens, key, value, 1, 8192)
	case "top_p":
		return setFloat(&c.TopP, key, value, 0.0, 1.0)
	case "top_k":
		return setInt(&c.TopK, key, value, 1, 100)
	case "system_prompt":
		return setString(&c.SystemPrompt, key, value)
	case "max_retries":
		return setInt(&c.MaxRetries, key, value, 0, 10)
	case "timeout":
		return setFloat(&c.Timeout, key, value, 1.0, 300.0)
	case "enable_safety":
		return setBool(&c.EnableSafety, key, value)
	case "enable_logging":
		return setBool(&c.EnableLogging, key, value)
	case "custom_parameters":
		return setMap(&c.CustomParameters, key, value)
	default:
		return &ConfigurationError{
			Field:   key,
			Message: fmt.Sprintf("unknown configuration key %q", key),
		}
	}
}

// Validate re-checks the configuration before it is used to construct an
// agent. Checks run in a fixed order and the first violation wins: project
// id, then name, then temperature.
func (c *Config) Validate() error {
	if c.ProjectID == "" {
		return &ConfigurationError{Field: "project_id", Message: "project_id is required"}
	}
	if c.Name == "" {
		return &ConfigurationError{Field: "name", Message: "agent name is required"}
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return &ConfigurationError{Field: "temperature", Message: "temperature must be between 0 and 2"}
	}
	return nil
}

// Clone returns a deep copy of the configuration safe for independent use.
func (c *Config) Clone() *Config {
	clone := *c
	clone.CustomParameters = make(map[string]any, len(c.CustomParameters))
	for key, value := range c.CustomParameters {
		clone.CustomParameters[key] = value
	}
	return &clone
}

func setString(target *string, key string, value any) error {
	typed, ok := value.(string)
	if !ok {
		return typeError(key, "string", value)
	}
	*target = typed
	return nil
}

func setBool(target *bool, key string, value any) error {
	typed, ok := value.(bool)
	if !ok {
		return typeError(key, "bool", value)
	}
	*target = typed
	return nil
}

func setFloat(target *float64, key string, value any, min, max float64) error {
	typed, ok := numericValue(value)
	if !ok {
		return typeError(key, "number", value)
	}
	if typed < min || typed > max {
		return rangeError(key, typed, min, max)
	}
	*target = typed
	return nil
}

func setInt(target *int, key string, value any, min, max int) error {
	typed, ok := numericValue(value)
	if !ok || typed != float64(int(typed)) {
		return typeError(key, "integer", value)
	}
	if int(typed) < min || int(typed) > max {
		return rangeError(key, typed, float64(min), float64(max))
	}
	*target = int(typed)
	return nil
}

func setMap(target *map[string]any, key string, value any) error {
	typed, ok := value.(map[string]any)
	if !ok {
		return typeError(key, "mapping", value)
	}
	*target = typed
	return nil
}

// numericValue widens the integer and float forms produced by YAML/JSON
// decoding and by direct Go callers into a single float64.
func numericValue(value any) (float64, bool) {
	switch typed := value.(type) {
	case float64:
		return typed, true
	case float32:
		return float64(typed), true
	case int:
		return float64(typed), true
	case int32:
		return float64(typed), true
	case int64:
		return float64(typed), true
	default:
		return 0, false
	}
}

func typeError(key, want string, value any) error {
	return &ConfigurationError{
		Field:   key,
		Message: fmt.Sprintf("%s must be a %s, got %T", key, want, value),
	}
}

func rangeError(key string, value, min, max float64) error {
	return &ConfigurationError{
		Field:   key,
		Message: fmt.Sprintf("%s must be between %g and %g, got %g", key, min, max, value),
	}
}
