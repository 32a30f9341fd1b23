package client

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/fivetwenty-io/zesty-client/internal/constants"
	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

// ActionsClient implements zesty.ActionsClient on top of a full client.
// Unlike the resource clients, actions treat an unexpected status as an
// error and return it as a *zesty.StatusError.
type ActionsClient struct {
	client zesty.Client
}

// NewActionsClient creates a new actions client.
func NewActionsClient(client zesty.Client) *ActionsClient {
	return &ActionsClient{
		client: client,
	}
}

// FindModelByName implements zesty.ActionsClient.FindModelByName. The name
// is matched against the model name first, then case-insensitively against
// its label.
func (c *ActionsClient) FindModelByName(ctx context.Context, name string) (*zesty.Model, error) {
	if name == "" {
		return nil, zesty.NewMissingArgument("Actions.FindModelByName", "name")
	}

	models, err := c.client.Instance().Models().GetModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing models: %w", err)
	}

	if !models.IsSuccess() {
		return nil, zesty.NewStatusError("Actions.FindModelByName", models.Envelope)
	}

	for i := range models.Data {
		if models.Data[i].Name == name {
			return &models.Data[i], nil
		}
	}

	for i := range models.Data {
		if strings.EqualFold(models.Data[i].Label, name) {
			return &models.Data[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %s", zesty.ErrModelNotFound, name)
}

// PublishLatestVersion implements zesty.ActionsClient.PublishLatestVersion.
func (c *ActionsClient) PublishLatestVersion(ctx context.Context, modelZUID, itemZUID string) (*zesty.Result[zesty.Publishing], error) {
	if modelZUID == "" {
		return nil, zesty.NewMissingArgument("Actions.PublishLatestVersion", "modelZUID")
	}

	if itemZUID == "" {
		return nil, zesty.NewMissingArgument("Actions.PublishLatestVersion", "itemZUID")
	}

	items := c.client.Instance().Items()

	versions, err := items.GetItemVersions(ctx, modelZUID, itemZUID)
	if err != nil {
		return nil, fmt.Errorf("listing item versions: %w", err)
	}

	if !versions.IsSuccess() {
		return nil, zesty.NewStatusError("Actions.PublishLatestVersion", versions.Envelope)
	}

	latest := 0
	for _, version := range versions.Data {
		latest = max(latest, version.Meta.Version)
	}

	if latest == 0 {
		return nil, fmt.Errorf("%w: item %s", zesty.ErrNoVersionsFound, itemZUID)
	}

	published, err := items.PublishItem(ctx, modelZUID, itemZUID, &zesty.PublishRequest{Version: latest})
	if err != nil {
		return nil, fmt.Errorf("publishing item version %d: %w", latest, err)
	}

	if !published.IsSuccess() {
		return nil, zesty.NewStatusError("Actions.PublishLatestVersion", published.Envelope)
	}

	return published, nil
}

// UploadFile implements zesty.ActionsClient.UploadFile. The title defaults
// to the file's base name.
func (c *ActionsClient) UploadFile(ctx context.Context, binZUID, filePath, title string) (*zesty.Result[[]zesty.File], error) {
	if binZUID == "" {
		return nil, zesty.NewMissingArgument("Actions.UploadFile", "binZUID")
	}

	if filePath == "" {
		return nil, zesty.NewMissingArgument("Actions.UploadFile", "filePath")
	}

	cleanPath := filepath.Clean(filePath)

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("reading upload file: %w", err)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", constants.ErrNotRegularFile, cleanPath)
	}

	file, err := os.Open(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("opening upload file: %w", err)
	}
	defer file.Close()

	fileName := filepath.Base(cleanPath)
	if title == "" {
		title = fileName
	}

	uploaded, err := c.client.Media().CreateFile(ctx, binZUID, file, zesty.FileOptions{
		Title:       title,
		FileName:    fileName,
		ContentType: mime.TypeByExtension(filepath.Ext(fileName)),
	})
	if err != nil {
		return nil, fmt.Errorf("uploading file: %w", err)
	}

	if !uploaded.IsSuccess() {
		return nil, zesty.NewStatusError("Actions.UploadFile", uploaded.Envelope)
	}

	return uploaded, nil
}
