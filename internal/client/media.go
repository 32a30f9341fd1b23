package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/fivetwenty-io/zesty-client/internal/constants"
	"github.com/fivetwenty-io/zesty-client/internal/service"
	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

const (
	mediaBinsPath   = "/site/INSTANCE_ZUID/bins"
	mediaBinPath    = "/bin/BIN_ID"
	mediaGroupsPath = "/bin/BIN_ID/groups"
	mediaFilesPath  = "/bin/BIN_ID/files"
	mediaNewGroup   = "/group"
	mediaGroupPath  = "/group/GROUP_ID"
	mediaFilePath   = "/file/FILE_ID"
	mediaUploadPath = "/upload/STORAGE_DRIVER/STORAGE_NAME"
)

// MediaClient implements zesty.MediaClient. Metadata calls go to the media
// manager; uploads go to the storage service of the target bin.
type MediaClient struct {
	instanceZUID string
	service      *service.Service
	storage      *service.Service
}

// NewMediaClient creates a new media client.
func NewMediaClient(instanceZUID string, manager, storage *service.Service) *MediaClient {
	return &MediaClient{
		instanceZUID: instanceZUID,
		service:      manager,
		storage:      storage,
	}
}

// GetBins implements zesty.MediaClient.GetBins.
func (c *MediaClient) GetBins(ctx context.Context) (*zesty.Result[[]zesty.Bin], error) {
	if c.instanceZUID == "" {
		return nil, zesty.NewMissingArgument("Media.GetBins", "instanceZUID")
	}

	path := c.service.Interpolate(mediaBinsPath, map[string]string{constants.InstanceZUIDPlaceholder: c.instanceZUID})

	return decode[[]zesty.Bin](c.service.Get(ctx, path, nil))
}

// GetBin implements zesty.MediaClient.GetBin.
func (c *MediaClient) GetBin(ctx context.Context, binZUID string) (*zesty.Result[[]zesty.Bin], error) {
	if binZUID == "" {
		return nil, zesty.NewMissingArgument("Media.GetBin", "binZUID")
	}

	path := c.service.Interpolate(mediaBinPath, map[string]string{"BIN_ID": binZUID})

	return decode[[]zesty.Bin](c.service.Get(ctx, path, nil))
}

// UpdateBin implements zesty.MediaClient.UpdateBin.
func (c *MediaClient) UpdateBin(ctx context.Context, binZUID string, fields map[string]string) (*zesty.Result[[]zesty.Bin], error) {
	if binZUID == "" {
		return nil, zesty.NewMissingArgument("Media.UpdateBin", "binZUID")
	}

	if len(fields) == 0 {
		return nil, zesty.NewMissingArgument("Media.UpdateBin", "payload")
	}

	path := c.service.Interpolate(mediaBinPath, map[string]string{"BIN_ID": binZUID})

	return decode[[]zesty.Bin](c.service.Patch(ctx, path, formOptions(fields)))
}

// GetGroups implements zesty.MediaClient.GetGroups.
func (c *MediaClient) GetGroups(ctx context.Context, binZUID string) (*zesty.Result[[]zesty.Group], error) {
	if binZUID == "" {
		return nil, zesty.NewMissingArgument("Media.GetGroups", "binZUID")
	}

	path := c.service.Interpolate(mediaGroupsPath, map[string]string{"BIN_ID": binZUID})

	return decode[[]zesty.Group](c.service.Get(ctx, path, nil))
}

// GetGroup implements zesty.MediaClient.GetGroup.
func (c *MediaClient) GetGroup(ctx context.Context, groupZUID string) (*zesty.Result[[]zesty.Group], error) {
	if groupZUID == "" {
		return nil, zesty.NewMissingArgument("Media.GetGroup", "groupZUID")
	}

	path := c.service.Interpolate(mediaGroupPath, map[string]string{"GROUP_ID": groupZUID})

	return decode[[]zesty.Group](c.service.Get(ctx, path, nil))
}

// CreateGroup implements zesty.MediaClient.CreateGroup. An empty parentZUID
// places the group at the root of the bin.
func (c *MediaClient) CreateGroup(ctx context.Context, binZUID, parentZUID, name string) (*zesty.Result[[]zesty.Group], error) {
	if binZUID == "" {
		return nil, zesty.NewMissingArgument("Media.CreateGroup", "binZUID")
	}

	if name == "" {
		return nil, zesty.NewMissingArgument("Media.CreateGroup", "name")
	}

	if parentZUID == "" {
		parentZUID = binZUID
	}

	return decode[[]zesty.Group](c.service.Post(ctx, mediaNewGroup, formOptions(map[string]string{
		"bin_id":   binZUID,
		"group_id": parentZUID,
		"name":     name,
	})))
}

// UpdateGroup implements zesty.MediaClient.UpdateGroup.
func (c *MediaClient) UpdateGroup(ctx context.Context, groupZUID string, fields map[string]string) (*zesty.Result[[]zesty.Group], error) {
	if groupZUID == "" {
		return nil, zesty.NewMissingArgument("Media.UpdateGroup", "groupZUID")
	}

	if len(fields) == 0 {
		return nil, zesty.NewMissingArgument("Media.UpdateGroup", "payload")
	}

	path := c.service.Interpolate(mediaGroupPath, map[string]string{"GROUP_ID": groupZUID})

	return decode[[]zesty.Group](c.service.Patch(ctx, path, formOptions(fields)))
}

// DeleteGroup implements zesty.MediaClient.DeleteGroup.
func (c *MediaClient) DeleteGroup(ctx context.Context, groupZUID string) (*zesty.Result[json.RawMessage], error) {
	if groupZUID == "" {
		return nil, zesty.NewMissingArgument("Media.DeleteGroup", "groupZUID")
	}

	path := c.service.Interpolate(mediaGroupPath, map[string]string{"GROUP_ID": groupZUID})

	return decode[json.RawMessage](c.service.Delete(ctx, path, nil))
}

// GetFiles implements zesty.MediaClient.GetFiles.
func (c *MediaClient) GetFiles(ctx context.Context, binZUID string) (*zesty.Result[[]zesty.File], error) {
	if binZUID == "" {
		return nil, zesty.NewMissingArgument("Media.GetFiles", "binZUID")
	}

	path := c.service.Interpolate(mediaFilesPath, map[string]string{"BIN_ID": binZUID})

	return decode[[]zesty.File](c.service.Get(ctx, path, nil))
}

// GetFile implements zesty.MediaClient.GetFile.
func (c *MediaClient) GetFile(ctx context.Context, fileZUID string) (*zesty.Result[[]zesty.File], error) {
	if fileZUID == "" {
		return nil, zesty.NewMissingArgument("Media.GetFile", "fileZUID")
	}

	path := c.service.Interpolate(mediaFilePath, map[string]string{"FILE_ID": fileZUID})

	return decode[[]zesty.File](c.service.Get(ctx, path, nil))
}

// CreateFile implements zesty.MediaClient.CreateFile.
//
// The bin is looked up first to find its storage driver and bucket. When
// that lookup does not succeed its result is returned as-is, with no file
// data, and nothing is uploaded.
func (c *MediaClient) CreateFile(ctx context.Context, binZUID string, stream io.Reader, opts zesty.FileOptions) (*zesty.Result[[]zesty.File], error) {
	if binZUID == "" {
		return nil, zesty.NewMissingArgument("Media.CreateFile", "binZUID")
	}

	if stream == nil {
		return nil, zesty.NewMissingArgument("Media.CreateFile", "stream")
	}

	if opts.FileName == "" {
		return nil, zesty.NewMissingArgument("Media.CreateFile", "fileName")
	}

	bin, err := c.GetBin(ctx, binZUID)
	if err != nil {
		return nil, fmt.Errorf("getting bin for upload: %w", err)
	}

	if bin.StatusCode != http.StatusOK || len(bin.Data) == 0 {
		return &zesty.Result[[]zesty.File]{
			StatusCode: bin.StatusCode,
			Message:    bin.Message,
			Envelope:   bin.Envelope,
		}, nil
	}

	target := bin.Data[0]
	if target.StorageDriver == "" || target.StorageName == "" {
		return nil, fmt.Errorf("%w: %s", zesty.ErrStorageUnavailable, binZUID)
	}

	groupZUID := opts.GroupZUID
	if groupZUID == "" {
		groupZUID = binZUID
	}

	path := c.storage.Interpolate(mediaUploadPath, map[string]string{
		"STORAGE_DRIVER": target.StorageDriver,
		"STORAGE_NAME":   target.StorageName,
	})

	form := &zesty.FormData{
		Fields: map[string]string{
			"bin_id":   binZUID,
			"group_id": groupZUID,
			"title":    opts.Title,
		},
		File: &zesty.FormFile{
			FileName:    opts.FileName,
			ContentType: opts.ContentType,
			Reader:      stream,
		},
	}

	return decode[[]zesty.File](c.storage.Post(ctx, path, &service.Options{
		Payload:     form,
		FormData:    true,
		XAuthHeader: true,
	}))
}

// UpdateFile implements zesty.MediaClient.UpdateFile.
func (c *MediaClient) UpdateFile(ctx context.Context, fileZUID string, fields map[string]string) (*zesty.Result[[]zesty.File], error) {
	if fileZUID == "" {
		return nil, zesty.NewMissingArgument("Media.UpdateFile", "fileZUID")
	}

	if len(fields) == 0 {
		return nil, zesty.NewMissingArgument("Media.UpdateFile", "payload")
	}

	path := c.service.Interpolate(mediaFilePath, map[string]string{"FILE_ID": fileZUID})

	return decode[[]zesty.File](c.service.Patch(ctx, path, formOptions(fields)))
}

// DeleteFile implements zesty.MediaClient.DeleteFile.
func (c *MediaClient) DeleteFile(ctx context.Context, fileZUID string) (*zesty.Result[json.RawMessage], error) {
	if fileZUID == "" {
		return nil, zesty.NewMissingArgument("Media.DeleteFile", "fileZUID")
	}

	path := c.service.Interpolate(mediaFilePath, map[string]string{"FILE_ID": fileZUID})

	return decode[json.RawMessage](c.service.Delete(ctx, path, nil))
}

func formOptions(fields map[string]string) *service.Options {
	return &service.Options{
		Payload:  zesty.NewFormData(fields),
		FormData: true,
	}
}
