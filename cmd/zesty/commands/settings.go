package commands

import (
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

// NewSettingsCommand creates the settings command group.
func NewSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"setting"},
		Short:   "Inspect instance settings",
	}

	cmd.AddCommand(newSettingsListCommand())
	cmd.AddCommand(newSettingsGetCommand())

	return cmd
}

func newSettingsListCommand() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			settingsClient := client.Instance().Settings()

			var settings *zesty.Result[[]zesty.Setting]
			if category != "" {
				settings, err = settingsClient.GetSettingsByCategory(cmd.Context(), category)
			} else {
				settings, err = settingsClient.GetSettings(cmd.Context())
			}

			if err != nil {
				return fmt.Errorf("failed to list settings: %w", err)
			}

			err = requireSuccess("settings list", settings)
			if err != nil {
				return err
			}

			return render(cmd, settings.Data, func(out io.Writer) error {
				table := newTable(out, "zuid", "category", "key", "value")
				for _, setting := range settings.Data {
					_ = table.Append(setting.ZUID, setting.Category, setting.Key, setting.Value)
				}

				return renderTable(table)
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only list settings in this category")

	return cmd
}

func newSettingsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SETTING",
		Short: "Show a setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			setting, err := client.Instance().Settings().GetSetting(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get setting: %w", err)
			}

			err = requireSuccess("settings get", setting)
			if err != nil {
				return err
			}

			return render(cmd, setting.Data, func(out io.Writer) error {
				return renderProperties(out, [][]string{
					{"ZUID", setting.Data.ZUID},
					{"Category", setting.Data.Category},
					{"Key", setting.Data.Key},
					{"Value", setting.Data.Value},
					{"Data Type", valueOrNA(setting.Data.DataType)},
					{"Admin", formatBool(setting.Data.Admin)},
				})
			})
		},
	}
}

// NewAuditsCommand creates the audits command group.
func NewAuditsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "audits",
		Aliases: []string{"audit"},
		Short:   "Inspect the audit trail",
	}

	cmd.AddCommand(newAuditsListCommand())
	cmd.AddCommand(newAuditsGetCommand())

	return cmd
}

func newAuditsListCommand() *cobra.Command {
	var affected string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List audit log entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			auditClient := client.Instance().AuditLogs()

			var audits *zesty.Result[[]zesty.AuditLog]
			if affected != "" {
				audits, err = auditClient.SearchAuditLogs(cmd.Context(), url.Values{"affectedZUID": {affected}})
			} else {
				audits, err = auditClient.GetAuditLogs(cmd.Context())
			}

			if err != nil {
				return fmt.Errorf("failed to list audit logs: %w", err)
			}

			err = requireSuccess("audits list", audits)
			if err != nil {
				return err
			}

			return render(cmd, audits.Data, func(out io.Writer) error {
				table := newTable(out, "zuid", "affected", "action", "email", "created")
				for _, audit := range audits.Data {
					_ = table.Append(audit.ZUID, audit.AffectedZUID, strconv.Itoa(audit.Action),
						valueOrNA(audit.Email), valueOrNA(audit.CreatedAt))
				}

				return renderTable(table)
			})
		},
	}

	cmd.Flags().StringVar(&affected, "affected", "", "only list entries affecting this ZUID")

	return cmd
}

func newAuditsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get AUDIT",
		Short: "Show an audit log entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			audit, err := client.Instance().AuditLogs().GetAuditLog(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get audit log: %w", err)
			}

			err = requireSuccess("audits get", audit)
			if err != nil {
				return err
			}

			return render(cmd, audit.Data, func(out io.Writer) error {
				return renderProperties(out, [][]string{
					{"ZUID", audit.Data.ZUID},
					{"Affected", audit.Data.AffectedZUID},
					{"Action", strconv.Itoa(audit.Data.Action)},
					{"User", valueOrNA(audit.Data.ActionByUserZUID)},
					{"Email", valueOrNA(audit.Data.Email)},
					{"Created", valueOrNA(audit.Data.CreatedAt)},
				})
			})
		},
	}
}
