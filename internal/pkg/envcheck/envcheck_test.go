package envcheck

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecker(env map[string]string) *Checker {
	return &Checker{
		Getenv:             func(name string) string { return env[name] },
		LookPath:           func(string) (string, error) { return "/usr/bin/gcloud", nil },
		ResolveCredentials: func(context.Context) (string, error) { return "test-project", nil },
		RuntimeVersion:     func() string { return "go1.23.4" },
	}
}

func fullEnv() map[string]string {
	return map[string]string{
		"GOOGLE_CLOUD_PROJECT":           "test-project",
		"GOOGLE_APPLICATION_CREDENTIALS": "/tmp/sa.json",
		"GOOGLE_CLOUD_LOCATION":          "us-central1",
	}
}

func TestChecker_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("fully configured environment", func(t *testing.T) {
		checker := newTestChecker(fullEnv())

		status, err := checker.Validate(ctx)
		require.NoError(t, err)

		assert.Equal(t, "go1.23.4", status.RuntimeVersion)
		assert.True(t, status.GoogleCloudSetup)
		assert.Equal(t, "test-project", status.GoogleCloudProject)
		assert.Empty(t, status.Errors)
		assert.Empty(t, status.Warnings)
	})

	t.Run("masks variable values", func(t *testing.T) {
		checker := newTestChecker(fullEnv())

		status, err := checker.Validate(ctx)
		require.NoError(t, err)

		for name, indicator := range status.EnvironmentVariables {
			assert.Equal(t, "set", indicator, name)
		}
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		env := fullEnv()
		delete(env, "GOOGLE_CLOUD_PROJECT")
		checker := newTestChecker(env)

		status, err := checker.Validate(ctx)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Error(), "GOOGLE_CLOUD_PROJECT")
		assert.Equal(t, CodeValidation, validationErr.Code())

		// The report is still returned for rendering.
		require.NotNil(t, status)
		assert.Len(t, status.Errors, 1)
	})

	t.Run("missing optional variable warns", func(t *testing.T) {
		env := fullEnv()
		delete(env, "GOOGLE_CLOUD_LOCATION")
		checker := newTestChecker(env)

		status, err := checker.Validate(ctx)
		require.NoError(t, err)
		require.Len(t, status.Warnings, 1)
		assert.Contains(t, status.Warnings[0], "GOOGLE_CLOUD_LOCATION")
	})

	t.Run("credential failure warns instead of failing", func(t *testing.T) {
		checker := newTestChecker(fullEnv())
		checker.ResolveCredentials = func(context.Context) (string, error) {
			return "", errors.New("no credentials file")
		}

		status, err := checker.Validate(ctx)
		require.NoError(t, err)

		assert.False(t, status.GoogleCloudSetup)
		assert.Empty(t, status.GoogleCloudProject)
		require.Len(t, status.Warnings, 1)
		assert.Contains(t, status.Warnings[0], "no credentials file")
	})

	t.Run("missing gcloud binary warns", func(t *testing.T) {
		checker := newTestChecker(fullEnv())
		checker.LookPath = func(string) (string, error) { return "", errors.New("not found") }

		status, err := checker.Validate(ctx)
		require.NoError(t, err)
		require.Len(t, status.Warnings, 1)
		assert.Contains(t, status.Warnings[0], "gcloud")
	})

	t.Run("old runtime fails", func(t *testing.T) {
		checker := newTestChecker(fullEnv())
		checker.RuntimeVersion = func() string { return "go1.21.0" }

		status, err := checker.Validate(ctx)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Len(t, status.Errors, 1)
	})
}

func TestRuntimeAtLeast(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{version: "go1.23.4", want: true},
		{version: "go1.23", want: true},
		{version: "go1.24.0", want: true},
		{version: "go2.0", want: true},
		{version: "go1.22.7", want: false},
		{version: "go1.21", want: false},
		{version: "devel +abc123", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, runtimeAtLeast(tt.version, 1, 23))
		})
	}
}
