package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// NewAccountCommand creates the account command group.
func NewAccountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Show account data about the instance",
	}

	cmd.AddCommand(newAccountInstanceCommand())
	cmd.AddCommand(newAccountUsersCommand())
	cmd.AddCommand(newAccountDomainsCommand())

	return cmd
}

func newAccountInstanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "instance",
		Short: "Show the configured instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			instance, err := client.Account().GetInstance(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get instance: %w", err)
			}

			err = requireSuccess("account instance", instance)
			if err != nil {
				return err
			}

			return render(cmd, instance.Data, func(out io.Writer) error {
				return renderProperties(out, [][]string{
					{"ZUID", instance.Data.ZUID},
					{"Name", instance.Data.Name},
					{"Domain", valueOrNA(instance.Data.Domain)},
					{"Ecosystem", valueOrNA(instance.Data.EcoZUID)},
					{"Created", valueOrNA(instance.Data.CreatedAt)},
				})
			})
		},
	}
}

func newAccountUsersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List the users of the instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			users, err := client.Account().GetInstanceUsers(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			err = requireSuccess("account users", users)
			if err != nil {
				return err
			}

			return render(cmd, users.Data, func(out io.Writer) error {
				table := newTable(out, "zuid", "name", "email", "role")
				for _, user := range users.Data {
					name := strings.TrimSpace(user.FirstName + " " + user.LastName)
					_ = table.Append(user.ZUID, valueOrNA(name), user.Email, valueOrNA(user.Role.Name))
				}

				return renderTable(table)
			})
		},
	}
}

func newAccountDomainsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "domains",
		Short: "List the domains of the instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			domains, err := client.Account().GetInstanceDomains(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list domains: %w", err)
			}

			err = requireSuccess("account domains", domains)
			if err != nil {
				return err
			}

			return render(cmd, domains.Data, func(out io.Writer) error {
				table := newTable(out, "zuid", "domain", "branch")
				for _, domain := range domains.Data {
					_ = table.Append(domain.ZUID, domain.Domain, valueOrNA(domain.Branch))
				}

				return renderTable(table)
			})
		},
	}
}
