package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/zesty-client/internal/constants"
	"github.com/fivetwenty-io/zesty-client/pkg/sdk"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in to an instance",
		Long: `Verify a session token against the auth service and store it together
with the target instance. The token is read from --token, or prompted for.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			instance := viper.GetString(keyInstance)
			if instance == "" {
				return constants.ErrNoInstanceConfigured
			}

			token := ""
			if flag := cmd.Flags().Lookup(keyToken); flag != nil && flag.Changed {
				token = strings.TrimSpace(flag.Value.String())
			}

			if token == "" {
				var err error

				token, err = readToken(cmd)
				if err != nil {
					return err
				}
			}

			if token == "" {
				return constants.ErrEmptyToken
			}

			client, err := sdk.New(cmd.Context(), buildSDKConfig(instance, token))
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			viper.Set(keyInstance, instance)
			viper.Set(keyToken, token)

			err = saveConfig(loadConfig())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in to %s as %s\n",
				instance, valueOrNA(client.Session().UserZUID))

			return nil
		},
	}
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out",
		Long:  "Remove the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			viper.Set(keyToken, "")

			err := saveConfig(loadConfig())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")

			return nil
		},
	}
}

// readToken prompts without echo on a terminal and reads one line otherwise.
func readToken(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()

	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) { //nolint:gosec // fd fits in int
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Token: ")

		raw, err := term.ReadPassword(int(file.Fd())) //nolint:gosec // fd fits in int

		_, _ = fmt.Fprintln(cmd.ErrOrStderr())

		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}

		return strings.TrimSpace(string(raw)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	return strings.TrimSpace(line), nil
}
