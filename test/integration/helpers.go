//go:build integration

package integration

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/joho/godotenv"

	"github.com/fivetwenty-io/zesty-client/internal/constants"
	"github.com/fivetwenty-io/zesty-client/pkg/sdk"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	InstanceZUID string
	Token        string
	ModelName    string
	ZestyPath    string
	Verbose      bool
}

// LoadTestConfig loads configuration from the environment and an optional .env file.
func LoadTestConfig() *TestConfig {
	_ = godotenv.Load(filepath.Join("..", "..", ".env"))

	return &TestConfig{
		InstanceZUID: os.Getenv(constants.EnvInstanceZUID),
		Token:        os.Getenv(constants.EnvToken),
		ModelName:    os.Getenv("ZESTY_TEST_MODEL"),
		ZestyPath:    getZestyPath(),
		Verbose:      os.Getenv("ZESTY_VERBOSE") == "true",
	}
}

// getZestyPath determines the path to the zesty binary.
func getZestyPath() string {
	if path := os.Getenv("ZESTY_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../zesty", "./zesty", "../zesty"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "zesty"
}

// SkipIfMissingConfig skips the test unless credentials are available.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.InstanceZUID == "" || config.Token == "" {
		t.Skipf("%s or %s not set, skipping integration test", constants.EnvInstanceZUID, constants.EnvToken)
	}
}

// SkipIfMissingBinary skips the test unless the zesty binary can be found.
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.ZestyPath); err != nil {
		t.Skipf("zesty binary not found at %s, skipping integration test", config.ZestyPath)
	}
}

// NewClient creates a verified SDK client for the configured instance.
func (config *TestConfig) NewClient(t *testing.T) *sdk.SDK {
	t.Helper()

	ctx, cancel := context.WithTimeout(t.Context(), constants.ShortHTTPTimeout)
	defer cancel()

	client, err := sdk.NewWithToken(ctx, config.InstanceZUID, config.Token)
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}

	return client
}

// CommandRunner provides utilities for running zesty commands.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a zesty command against an isolated config file and returns its output.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	configFile := filepath.Join(runner.t.TempDir(), "config.yml")
	args = append([]string{"--config", configFile, "--output", "json"}, args...)

	cmd := exec.CommandContext(runner.t.Context(), runner.config.ZestyPath, args...)
	cmd.Env = append(os.Environ(),
		constants.EnvInstanceZUID+"="+runner.config.InstanceZUID,
		constants.EnvToken+"="+runner.config.Token,
	)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.ZestyPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// GenerateTestName creates a unique test resource name.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}
