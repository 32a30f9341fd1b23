package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/zesty-client/internal/constants"
	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

// NewMediaCommand creates the media command group.
func NewMediaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Manage media bins and files",
		Long:  "List media bins, groups and files, and upload or delete files",
	}

	cmd.AddCommand(newMediaBinsCommand())
	cmd.AddCommand(newMediaBinCommand())
	cmd.AddCommand(newMediaGroupsCommand())
	cmd.AddCommand(newMediaFilesCommand())
	cmd.AddCommand(newMediaFileCommand())
	cmd.AddCommand(newMediaUploadCommand())
	cmd.AddCommand(newMediaDeleteFileCommand())

	return cmd
}

func renderBins(cmd *cobra.Command, bins []zesty.Bin) error {
	return render(cmd, bins, func(out io.Writer) error {
		table := newTable(out, "id", "name", "storage", "default")
		for _, bin := range bins {
			storage := constants.NotAvailable
			if bin.StorageDriver != "" {
				storage = bin.StorageDriver + ":" + bin.StorageName
			}

			_ = table.Append(bin.ID, bin.Name, storage, formatBool(bin.Default))
		}

		return renderTable(table)
	})
}

func renderFiles(cmd *cobra.Command, files []zesty.File) error {
	return render(cmd, files, func(out io.Writer) error {
		table := newTable(out, "id", "filename", "title", "group", "url")
		for _, file := range files {
			_ = table.Append(file.ID, file.Filename, valueOrNA(file.Title), file.GroupID, valueOrNA(file.URL))
		}

		return renderTable(table)
	})
}

func newMediaBinsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bins",
		Short: "List the media bins of the instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			bins, err := client.Media().GetBins(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list bins: %w", err)
			}

			err = requireSuccess("media bins", bins)
			if err != nil {
				return err
			}

			return renderBins(cmd, bins.Data)
		},
	}
}

func newMediaBinCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bin BIN",
		Short: "Show a media bin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			bin, err := client.Media().GetBin(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get bin: %w", err)
			}

			err = requireSuccess("media bin", bin)
			if err != nil {
				return err
			}

			return renderBins(cmd, bin.Data)
		},
	}
}

func newMediaGroupsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "groups BIN",
		Short: "List the groups of a bin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			groups, err := client.Media().GetGroups(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list groups: %w", err)
			}

			err = requireSuccess("media groups", groups)
			if err != nil {
				return err
			}

			return render(cmd, groups.Data, func(out io.Writer) error {
				table := newTable(out, "id", "name", "parent")
				for _, group := range groups.Data {
					_ = table.Append(group.ID, group.Name, group.GroupID)
				}

				return renderTable(table)
			})
		},
	}
}

func newMediaFilesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "files BIN",
		Short: "List the files of a bin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			files, err := client.Media().GetFiles(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list files: %w", err)
			}

			err = requireSuccess("media files", files)
			if err != nil {
				return err
			}

			return renderFiles(cmd, files.Data)
		},
	}
}

func newMediaFileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "file FILE",
		Short: "Show a media file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			file, err := client.Media().GetFile(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get file: %w", err)
			}

			err = requireSuccess("media file", file)
			if err != nil {
				return err
			}

			return renderFiles(cmd, file.Data)
		},
	}
}

func newMediaUploadCommand() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "upload BIN PATH",
		Short: "Upload a file into a bin",
		Long:  "Upload a local file into a media bin. The title defaults to the file name.",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := validateUploadPath(args[1])
			if err != nil {
				return err
			}

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			uploaded, err := client.Actions().UploadFile(cmd.Context(), args[0], path, title)
			if err != nil {
				return fmt.Errorf("failed to upload file: %w", err)
			}

			err = requireSuccess("media upload", uploaded)
			if err != nil {
				return err
			}

			return renderFiles(cmd, uploaded.Data)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "title of the uploaded file")

	return cmd
}

func newMediaDeleteFileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-file FILE",
		Short: "Delete a media file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			deleted, err := client.Media().DeleteFile(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete file: %w", err)
			}

			err = requireSuccess("media delete-file", deleted)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted file %s\n", args[0])

			return nil
		},
	}
}

// validateUploadPath rejects relative paths that escape the working directory.
func validateUploadPath(path string) (string, error) {
	cleanPath := filepath.Clean(path)

	if filepath.IsAbs(path) {
		if cleanPath != path {
			return "", fmt.Errorf("%w: %s", constants.ErrDirectoryTraversal, path)
		}

		return cleanPath, nil
	}

	if cleanPath == ".." || strings.HasPrefix(cleanPath, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", constants.ErrDirectoryTraversal, path)
	}

	return cleanPath, nil
}
