package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/zesty-client/internal/client"
)

// NewFormatPathCommand creates the format-path command. It needs no
// credentials.
func NewFormatPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "format-path TITLE...",
		Short:   "Turn a title into a URL path part",
		Example: `  zesty format-path "Rock & Roll"   # rock-and-roll`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := client.FormatPath(strings.Join(args, " "))
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)

			return nil
		},
	}
}
