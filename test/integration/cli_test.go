//go:build integration

package integration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

func TestCLI_ListModels(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)
	config.SkipIfMissingBinary(t)

	runner := NewCommandRunner(config, t)

	stdout, stderr, err := runner.Run("models", "list")
	require.NoError(t, err, stderr)

	var models []zesty.Model
	require.NoError(t, json.Unmarshal([]byte(stdout), &models))
}

func TestCLI_AccountInstance(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)
	config.SkipIfMissingBinary(t)

	runner := NewCommandRunner(config, t)

	stdout, stderr, err := runner.Run("account", "instance")
	require.NoError(t, err, stderr)

	var instance zesty.Instance
	require.NoError(t, json.Unmarshal([]byte(stdout), &instance))
	assert.Equal(t, config.InstanceZUID, instance.ZUID)
}

func TestCLI_FormatPathNeedsNoCredentials(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingBinary(t)

	runner := NewCommandRunner(config, t)

	stdout, stderr, err := runner.Run("format-path", "Hello", "World")
	require.NoError(t, err, stderr)
	assert.Equal(t, "hello-world\n", stdout)
}
