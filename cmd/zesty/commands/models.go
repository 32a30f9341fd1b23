package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/zesty-client/internal/constants"
)

// NewModelsCommand creates the models command group.
func NewModelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "models",
		Aliases: []string{"model"},
		Short:   "Manage content models",
		Long:    "List, inspect and delete the content models of the configured instance",
	}

	cmd.AddCommand(newModelsListCommand())
	cmd.AddCommand(newModelsGetCommand())
	cmd.AddCommand(newModelsDeleteCommand())

	return cmd
}

func newModelsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List content models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			models, err := client.Instance().Models().GetModels(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list models: %w", err)
			}

			err = requireSuccess("models list", models)
			if err != nil {
				return err
			}

			return render(cmd, models.Data, func(out io.Writer) error {
				table := newTable(out, "zuid", "name", "label", "type", "listed")
				for _, model := range models.Data {
					_ = table.Append(model.ZUID, model.Name, model.Label, model.Type, formatBool(model.Listed))
				}

				return renderTable(table)
			})
		},
	}
}

func newModelsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get MODEL",
		Short: "Show a content model",
		Long:  "Show a content model by ZUID, name or label",
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

			model, err := client.Instance().Models().GetModel(cmd.Context(), modelZUID)
			if err != nil {
				return fmt.Errorf("failed to get model: %w", err)
			}

			err = requireSuccess("models get", model)
			if err != nil {
				return err
			}

			return render(cmd, model.Data, func(out io.Writer) error {
				return renderProperties(out, [][]string{
					{"ZUID", model.Data.ZUID},
					{"Name", model.Data.Name},
					{"Label", model.Data.Label},
					{"Type", model.Data.Type},
					{"Description", valueOrNA(model.Data.Description)},
					{"Parent", valueOrNA(model.Data.ParentZUID)},
					{"Listed", formatBool(model.Data.Listed)},
					{"Created", valueOrNA(model.Data.CreatedAt)},
					{"Updated", valueOrNA(model.Data.UpdatedAt)},
				})
			})
		},
	}
}

func newModelsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete MODEL",
		Short: "Delete a content model",
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

			deleted, err := client.Instance().Models().DeleteModel(cmd.Context(), modelZUID)
			if err != nil {
				return fmt.Errorf("failed to delete model: %w", err)
			}

			err = requireSuccess("models delete", deleted)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted model %s\n", modelZUID)

			return nil
		},
	}
}

// NewFieldsCommand creates the fields command group.
func NewFieldsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fields",
		Aliases: []string{"field"},
		Short:   "Inspect model fields",
		Long:    "List and inspect the fields of a content model",
	}

	cmd.AddCommand(newFieldsListCommand())
	cmd.AddCommand(newFieldsGetCommand())

	return cmd
}

func newFieldsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list MODEL",
		Short: "List the fields of a model",
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

			fields, err := client.Instance().Fields().GetFields(cmd.Context(), modelZUID)
			if err != nil {
				return fmt.Errorf("failed to list fields: %w", err)
			}

			err = requireSuccess("fields list", fields)
			if err != nil {
				return err
			}

			return render(cmd, fields.Data, func(out io.Writer) error {
				table := newTable(out, "zuid", "name", "label", "datatype", "required", "sort")
				for _, field := range fields.Data {
					_ = table.Append(field.ZUID, field.Name, field.Label, field.Datatype,
						formatBool(field.Required), strconv.Itoa(field.Sort))
				}

				return renderTable(table)
			})
		},
	}
}

func newFieldsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get MODEL FIELD",
		Short: "Show a field",
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

			field, err := client.Instance().Fields().GetField(cmd.Context(), modelZUID, args[1])
			if err != nil {
				return fmt.Errorf("failed to get field: %w", err)
			}

			err = requireSuccess("fields get", field)
			if err != nil {
				return err
			}

			return render(cmd, field.Data, func(out io.Writer) error {
				return renderProperties(out, [][]string{
					{"ZUID", field.Data.ZUID},
					{"Model", field.Data.ContentModelZUID},
					{"Name", field.Data.Name},
					{"Label", field.Data.Label},
					{"Datatype", field.Data.Datatype},
					{"Required", formatBool(field.Data.Required)},
					{"Sort", strconv.Itoa(field.Data.Sort)},
					{"Related Model", valueOrNA(field.Data.RelatedModelZUID)},
				})
			})
		},
	}
}
