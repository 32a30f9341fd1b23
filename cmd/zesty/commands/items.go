package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/zesty-client/internal/constants"
	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

// NewItemsCommand creates the items command group.
func NewItemsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "items",
		Aliases: []string{"item"},
		Short:   "Manage content items",
		Long:    "List, inspect, search and publish the content items of a model",
	}

	cmd.AddCommand(newItemsListCommand())
	cmd.AddCommand(newItemsGetCommand())
	cmd.AddCommand(newItemsVersionsCommand())
	cmd.AddCommand(newItemsPublishCommand())
	cmd.AddCommand(newItemsFindCommand())

	return cmd
}

func renderItems(cmd *cobra.Command, items []zesty.Item) error {
	return render(cmd, items, func(out io.Writer) error {
		table := newTable(out, "zuid", "version", "title", "path part")
		for _, item := range items {
			_ = table.Append(item.Meta.ZUID, strconv.Itoa(item.Meta.Version),
				valueOrNA(item.Web.MetaTitle), valueOrNA(item.Web.PathPart))
		}

		return renderTable(table)
	})
}

func newItemsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list MODEL",
		Short: "List the items of a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			modelZUID, err := resolveModelZUID(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}

			items, err := client.Instance().Items().GetItems(cmd.Context(), modelZUID)
			if err != nil {
				return fmt.Errorf("failed to list items: %w", err)
			}

			err = requireSuccess("items list", items)
			if err != nil {
				return err
			}

			return renderItems(cmd, items.Data)
		},
	}
}

func newItemsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get MODEL ITEM",
		Short: "Show an item",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			modelZUID, err := resolveModelZUID(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}

			item, err := client.Instance().Items().GetItem(cmd.Context(), modelZUID, args[1])
			if err != nil {
				return fmt.Errorf("failed to get item: %w", err)
			}

			err = requireSuccess("items get", item)
			if err != nil {
				return err
			}

			return render(cmd, item.Data, func(out io.Writer) error {
				rows := [][]string{
					{"ZUID", item.Data.Meta.ZUID},
					{"Model", item.Data.Meta.ContentModelZUID},
					{"Version", strconv.Itoa(item.Data.Meta.Version)},
					{"Title", valueOrNA(item.Data.Web.MetaTitle)},
					{"Path", valueOrNA(item.Data.Web.Path)},
					{"Path Part", valueOrNA(item.Data.Web.PathPart)},
				}
				if item.Data.Publishing != nil {
					rows = append(rows, []string{"Published Version", strconv.Itoa(item.Data.Publishing.Version)})
				}

				return renderProperties(out, rows)
			})
		},
	}
}

func newItemsVersionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "versions MODEL ITEM",
		Short: "List the versions of an item",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			modelZUID, err := resolveModelZUID(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}

			versions, err := client.Instance().Items().GetItemVersions(cmd.Context(), modelZUID, args[1])
			if err != nil {
				return fmt.Errorf("failed to list item versions: %w", err)
			}

			err = requireSuccess("items versions", versions)
			if err != nil {
				return err
			}

			return renderItems(cmd, versions.Data)
		},
	}
}

func newItemsPublishCommand() *cobra.Command {
	var (
		version int
		now     bool
	)

	cmd := &cobra.Command{
		Use:   "publish MODEL ITEM",
		Short: "Publish an item",
		Long: `Publish a version of an item. Without --version the latest version is
published. With --now the legacy immediate-publish endpoint is used.`,
		Args: cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("version") && version < 1 {
				return fmt.Errorf("%w: %d", constants.ErrInvalidVersion, version)
			}

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			modelZUID, err := resolveModelZUID(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}

			itemZUID := args[1]

			if now {
				return publishImmediately(cmd, client, modelZUID, itemZUID, version)
			}

			var published *zesty.Result[zesty.Publishing]

			if version == 0 {
				published, err = client.Actions().PublishLatestVersion(cmd.Context(), modelZUID, itemZUID)
			} else {
				published, err = client.Instance().Items().PublishItem(cmd.Context(), modelZUID, itemZUID,
					&zesty.PublishRequest{Version: version})
			}

			if err != nil {
				return fmt.Errorf("failed to publish item: %w", err)
			}

			err = requireSuccess("items publish", published)
			if err != nil {
				return err
			}

			return render(cmd, published.Data, func(out io.Writer) error {
				return renderProperties(out, [][]string{
					{"Item", itemZUID},
					{"Version", strconv.Itoa(published.Data.Version)},
					{"Publishing", valueOrNA(published.Data.ZUID)},
				})
			})
		},
	}

	cmd.Flags().IntVar(&version, "version", 0, "version to publish (default latest)")
	cmd.Flags().BoolVar(&now, "now", false, "publish immediately through the legacy API")

	return cmd
}

func publishImmediately(cmd *cobra.Command, client zesty.Client, modelZUID, itemZUID string, version int) error {
	if version == 0 {
		item, err := client.Instance().Items().GetItem(cmd.Context(), modelZUID, itemZUID)
		if err != nil {
			return fmt.Errorf("failed to get item: %w", err)
		}

		err = requireSuccess("items publish", item)
		if err != nil {
			return err
		}

		version = item.Data.Meta.Version
	}

	published, err := client.Instance().Items().PublishItemImmediately(cmd.Context(), itemZUID, version)
	if err != nil {
		return fmt.Errorf("failed to publish item: %w", err)
	}

	err = requireSuccess("items publish", published)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Published version %d of %s\n", version, itemZUID)

	return nil
}

func newItemsFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find QUERY",
		Short: "Search items across models",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			found, err := client.Instance().Items().FindItem(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to search items: %w", err)
			}

			err = requireSuccess("items find", found)
			if err != nil {
				return err
			}

			return renderItems(cmd, found.Data)
		},
	}
}
