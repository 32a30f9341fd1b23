package commands_test

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/zesty-client/internal/testutil"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// setupPlatform points the global viper configuration at a fresh fake
// platform with JSON output and a throwaway config file.
func setupPlatform(t *testing.T) *testutil.Platform {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	platform := testutil.NewPlatform(t)
	config := platform.Config()

	viper.SetConfigFile(filepath.Join(t.TempDir(), "config.yml"))
	viper.Set("instance", config.InstanceZUID)
	viper.Set("token", config.Token)
	viper.Set("output", "json")
	viper.Set("cookie_name", config.CookieName)
	viper.Set("instance_api", config.InstancesAPIURL)
	viper.Set("legacy_api", config.LegacyAPIURL)
	viper.Set("accounts_api", config.AccountsAPIURL)
	viper.Set("media_api", config.MediaAPIURL)
	viper.Set("media_storage_api", config.MediaStorageAPIURL)
	viper.Set("auth_api", config.AuthURL)

	return platform
}

// execute runs cmd with args and returns what it wrote to stdout.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	cmd.SetContext(t.Context())

	err := cmd.Execute()

	return out.String(), err
}

// executeJSON runs cmd and decodes its JSON output into target.
func executeJSON(t *testing.T, target interface{}, cmd *cobra.Command, args ...string) {
	t.Helper()

	out, err := execute(t, cmd, args...)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), target), out)
}
