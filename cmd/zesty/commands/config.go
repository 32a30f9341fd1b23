package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/zesty-client/internal/constants"
)

// Config represents the persisted CLI configuration.
type Config struct {
	Instance   string `json:"instance,omitempty"    yaml:"instance,omitempty"`
	Token      string `json:"token,omitempty"       yaml:"token,omitempty"`
	Output     string `json:"output,omitempty"      yaml:"output,omitempty"`
	CookieName string `json:"cookie_name,omitempty" yaml:"cookie_name,omitempty"`

	// Endpoint overrides, e.g. for a staging stack
	InstanceAPI     string `json:"instance_api,omitempty"      yaml:"instance_api,omitempty"`
	LegacyAPI       string `json:"legacy_api,omitempty"        yaml:"legacy_api,omitempty"`
	AccountsAPI     string `json:"accounts_api,omitempty"      yaml:"accounts_api,omitempty"`
	MediaAPI        string `json:"media_api,omitempty"         yaml:"media_api,omitempty"`
	MediaStorageAPI string `json:"media_storage_api,omitempty" yaml:"media_storage_api,omitempty"`
	AuthAPI         string `json:"auth_api,omitempty"          yaml:"auth_api,omitempty"`
}

// settableKeys lists the keys accepted by config set and config unset.
var settableKeys = []string{
	keyInstance,
	keyOutput,
	keyCookieName,
	keyInstanceAPI,
	keyLegacyAPI,
	keyAccountsAPI,
	keyMediaAPI,
	keyMediaStorageAPI,
	keyAuthAPI,
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage the zesty CLI configuration: the target instance, output format and API endpoints",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with the token masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config := loadConfig()
			if config.Token != "" {
				config.Token = constants.MaskedSecret
			}

			return render(cmd, config, func(out io.Writer) error {
				return renderProperties(out, [][]string{
					{"Instance", valueOrNA(config.Instance)},
					{"Token", valueOrNA(config.Token)},
					{"Output", valueOrNA(config.Output)},
					{"Cookie Name", valueOrNA(config.CookieName)},
					{"Instance API", valueOrNA(config.InstanceAPI)},
					{"Legacy API", valueOrNA(config.LegacyAPI)},
					{"Accounts API", valueOrNA(config.AccountsAPI)},
					{"Media API", valueOrNA(config.MediaAPI)},
					{"Media Storage API", valueOrNA(config.MediaStorageAPI)},
					{"Auth API", valueOrNA(config.AuthAPI)},
				})
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + strings.Join(settableKeys, ", "),
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(args[0])
			value := args[1]

			err := validateSettableKey(key)
			if err != nil {
				return err
			}

			if key == keyOutput {
				viper.Set(keyOutput, strings.ToLower(value))

				_, err = outputFormat()
				if err != nil {
					return err
				}
			} else {
				viper.Set(key, value)
			}

			err = saveConfig(loadConfig())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s\n", key, viper.GetString(key))

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value so the default applies again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(args[0])

			err := validateSettableKey(key)
			if err != nil {
				return err
			}

			viper.Set(key, "")

			err = saveConfig(loadConfig())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", key)

			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all configuration",
		Long:  "Remove the configuration file, including the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := configFilePath()
			if err != nil {
				return err
			}

			err = os.Remove(path)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			for _, key := range append([]string{keyToken}, settableKeys...) {
				viper.Set(key, "")
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Configuration cleared")

			return nil
		},
	}
}

func validateSettableKey(key string) error {
	if key == keyToken {
		return constants.ErrTokenCannotBeSet
	}

	if !slices.Contains(settableKeys, key) {
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

// loadConfig reads the effective configuration from viper.
func loadConfig() *Config {
	return &Config{
		Instance:        viper.GetString(keyInstance),
		Token:           viper.GetString(keyToken),
		Output:          viper.GetString(keyOutput),
		CookieName:      viper.GetString(keyCookieName),
		InstanceAPI:     viper.GetString(keyInstanceAPI),
		LegacyAPI:       viper.GetString(keyLegacyAPI),
		AccountsAPI:     viper.GetString(keyAccountsAPI),
		MediaAPI:        viper.GetString(keyMediaAPI),
		MediaStorageAPI: viper.GetString(keyMediaStorageAPI),
		AuthAPI:         viper.GetString(keyAuthAPI),
	}
}

// configFilePath returns the file viper read, or ~/.zesty/config.yml.
func configFilePath() (string, error) {
	if path := viper.ConfigFileUsed(); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".zesty", "config.yml"), nil
}

// saveConfig writes config as YAML to the config file.
func saveConfig(config *Config) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
