package client

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	zestyhttp "github.com/fivetwenty-io/zesty-client/internal/http"
	"github.com/fivetwenty-io/zesty-client/internal/testutil"
	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

var errConnectionReset = errors.New("connection reset")

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestMediaClient(t *testing.T) {
	t.Parallel()

	t.Run("bins", func(t *testing.T) {
		t.Parallel()

		client, platform := newPlatformClient(t)
		media := client.Media()

		bins, err := media.GetBins(t.Context())
		require.NoError(t, err)
		require.Len(t, bins.Data, 1)
		assert.Equal(t, testutil.MediaBinZUID, bins.Data[0].ID)
		assert.Equal(t, testutil.MediaPrefix+"/site/"+testutil.TestInstanceZUID+"/bins", platform.LastRequest().Path)

		bin, err := media.GetBin(t.Context(), testutil.MediaBinZUID)
		require.NoError(t, err)
		require.Len(t, bin.Data, 1)
		assert.Equal(t, testutil.StorageDriver, bin.Data[0].StorageDriver)

		renamed, err := media.UpdateBin(t.Context(), testutil.MediaBinZUID, map[string]string{"name": "Archive"})
		require.NoError(t, err)
		assert.Equal(t, "Archive", renamed.Data[0].Name)

		fields, _, err := platform.LastRequest().Multipart()
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"name": "Archive"}, fields)
	})

	t.Run("groups", func(t *testing.T) {
		t.Parallel()

		client, platform := newPlatformClient(t)
		media := client.Media()

		groups, err := media.GetGroups(t.Context(), testutil.MediaBinZUID)
		require.NoError(t, err)
		require.Len(t, groups.Data, 1)
		assert.Equal(t, "Heroes", groups.Data[0].Name)

		created, err := media.CreateGroup(t.Context(), testutil.MediaBinZUID, "", "Villains")
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, created.StatusCode)
		require.Len(t, created.Data, 1)
		assert.Equal(t, testutil.MediaBinZUID, created.Data[0].GroupID)

		fields, _, err := platform.LastRequest().Multipart()
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"bin_id":   testutil.MediaBinZUID,
			"group_id": testutil.MediaBinZUID,
			"name":     "Villains",
		}, fields)

		nested, err := media.CreateGroup(t.Context(), testutil.MediaBinZUID, testutil.MediaGroupZUID, "Turks")
		require.NoError(t, err)
		assert.Equal(t, testutil.MediaGroupZUID, nested.Data[0].GroupID)

		updated, err := media.UpdateGroup(t.Context(), created.Data[0].ID, map[string]string{"name": "Shinra"})
		require.NoError(t, err)
		assert.Equal(t, "Shinra", updated.Data[0].Name)

		group, err := media.GetGroup(t.Context(), created.Data[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "Shinra", group.Data[0].Name)

		deleted, err := media.DeleteGroup(t.Context(), created.Data[0].ID)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, deleted.StatusCode)

		gone, err := media.GetGroup(t.Context(), created.Data[0].ID)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, gone.StatusCode)
		assert.Empty(t, gone.Data)
	})

	t.Run("files", func(t *testing.T) {
		t.Parallel()

		client, _ := newPlatformClient(t)
		media := client.Media()

		files, err := media.GetFiles(t.Context(), testutil.MediaBinZUID)
		require.NoError(t, err)
		require.Len(t, files.Data, 1)

		file, err := media.GetFile(t.Context(), testutil.MediaFileZUID)
		require.NoError(t, err)
		assert.Equal(t, "cloud.jpg", file.Data[0].Filename)

		updated, err := media.UpdateFile(t.Context(), testutil.MediaFileZUID, map[string]string{"title": "Cloud Strife"})
		require.NoError(t, err)
		assert.Equal(t, "Cloud Strife", updated.Data[0].Title)

		deleted, err := media.DeleteFile(t.Context(), testutil.MediaFileZUID)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, deleted.StatusCode)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestMediaClient_CreateFile(t *testing.T) {
	t.Parallel()

	t.Run("uploads to the storage of the bin", func(t *testing.T) {
		t.Parallel()

		client, platform := newPlatformClient(t)

		result, err := client.Media().CreateFile(t.Context(), testutil.MediaBinZUID, strings.NewReader("PNGDATA"), zesty.FileOptions{
			Title:       "Buster Sword",
			FileName:    "buster.png",
			ContentType: "image/png",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, result.StatusCode)
		require.Len(t, result.Data, 1)
		assert.Equal(t, "file", result.Data[0].Type)
		assert.Equal(t, "buster.png", result.Data[0].Filename)
		assert.Equal(t, testutil.MediaBinZUID, result.Data[0].GroupID)

		requests := platform.Requests()
		require.Len(t, requests, 2)
		assert.Equal(t, testutil.MediaPrefix+"/bin/"+testutil.MediaBinZUID, requests[0].Path)

		upload := requests[1]
		assert.Equal(t, testutil.StoragePrefix+"/upload/"+testutil.StorageDriver+"/"+testutil.StorageName, upload.Path)
		assert.Equal(t, testutil.TestToken, upload.Header.Get("X-Auth"))

		fields, file, err := upload.Multipart()
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"bin_id":   testutil.MediaBinZUID,
			"group_id": testutil.MediaBinZUID,
			"title":    "Buster Sword",
		}, fields)
		require.NotNil(t, file)
		assert.Equal(t, "file", file.FieldName)
		assert.Equal(t, "buster.png", file.FileName)
		assert.Equal(t, "image/png", file.ContentType)
		assert.Equal(t, "PNGDATA", string(file.Content))
	})

	t.Run("into a group", func(t *testing.T) {
		t.Parallel()

		client, _ := newPlatformClient(t)

		result, err := client.Media().CreateFile(t.Context(), testutil.MediaBinZUID, strings.NewReader("x"), zesty.FileOptions{
			FileName:  "materia.txt",
			GroupZUID: testutil.MediaGroupZUID,
		})
		require.NoError(t, err)
		assert.Equal(t, testutil.MediaGroupZUID, result.Data[0].GroupID)
	})

	t.Run("unknown bin skips the upload", func(t *testing.T) {
		t.Parallel()

		client, platform := newPlatformClient(t)

		result, err := client.Media().CreateFile(t.Context(), "1-missing", strings.NewReader("x"), zesty.FileOptions{FileName: "a.txt"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, result.StatusCode)
		assert.Equal(t, "Bin not found", result.Message)
		assert.Nil(t, result.Data)
		assert.Len(t, platform.Requests(), 1)
	})

	t.Run("bin without storage", func(t *testing.T) {
		t.Parallel()

		client, transport := newRecordingClient(t, http.StatusOK, map[string]interface{}{
			"data": []map[string]string{{"id": "1-nostorage"}},
		})

		_, err := client.Media().CreateFile(t.Context(), "1-nostorage", strings.NewReader("x"), zesty.FileOptions{FileName: "a.txt"})
		require.ErrorIs(t, err, zesty.ErrStorageUnavailable)
		assert.Equal(t, 1, transport.Calls())
	})

	t.Run("bin lookup transport error", func(t *testing.T) {
		t.Parallel()

		client, transport := newRecordingClient(t, http.StatusOK, nil)
		transport.Respond = func(*zestyhttp.Request) (*zestyhttp.Response, error) {
			return nil, errConnectionReset
		}

		_, err := client.Media().CreateFile(t.Context(), testutil.MediaBinZUID, strings.NewReader("x"), zesty.FileOptions{FileName: "a.txt"})
		require.ErrorIs(t, err, errConnectionReset)
		assert.Contains(t, err.Error(), "getting bin for upload")
		assert.Equal(t, 1, transport.Calls())
	})

	t.Run("missing arguments", func(t *testing.T) {
		t.Parallel()

		client, transport := newRecordingClient(t, http.StatusOK, nil)
		media := client.Media()

		_, err := media.CreateFile(t.Context(), "", strings.NewReader("x"), zesty.FileOptions{FileName: "a"})
		requireArgumentError(t, err, "Media.CreateFile", "binZUID")

		_, err = media.CreateFile(t.Context(), "1-abc", nil, zesty.FileOptions{FileName: "a"})
		requireArgumentError(t, err, "Media.CreateFile", "stream")

		_, err = media.CreateFile(t.Context(), "1-abc", strings.NewReader("x"), zesty.FileOptions{})
		requireArgumentError(t, err, "Media.CreateFile", "fileName")

		assert.Equal(t, 0, transport.Calls())
	})
}

func TestMediaClient_MissingArguments(t *testing.T) {
	t.Parallel()

	client, transport := newRecordingClient(t, http.StatusOK, nil)
	media := client.Media()

	_, err := media.GetBin(t.Context(), "")
	requireArgumentError(t, err, "Media.GetBin", "binZUID")

	_, err = media.UpdateBin(t.Context(), "1-abc", nil)
	requireArgumentError(t, err, "Media.UpdateBin", "payload")

	_, err = media.GetGroups(t.Context(), "")
	requireArgumentError(t, err, "Media.GetGroups", "binZUID")

	_, err = media.GetGroup(t.Context(), "")
	requireArgumentError(t, err, "Media.GetGroup", "groupZUID")

	_, err = media.CreateGroup(t.Context(), "1-abc", "", "")
	requireArgumentError(t, err, "Media.CreateGroup", "name")

	_, err = media.UpdateGroup(t.Context(), "", map[string]string{"name": "x"})
	requireArgumentError(t, err, "Media.UpdateGroup", "groupZUID")

	_, err = media.DeleteGroup(t.Context(), "")
	requireArgumentError(t, err, "Media.DeleteGroup", "groupZUID")

	_, err = media.GetFiles(t.Context(), "")
	requireArgumentError(t, err, "Media.GetFiles", "binZUID")

	_, err = media.GetFile(t.Context(), "")
	requireArgumentError(t, err, "Media.GetFile", "fileZUID")

	_, err = media.UpdateFile(t.Context(), "3-abc", map[string]string{})
	requireArgumentError(t, err, "Media.UpdateFile", "payload")

	_, err = media.DeleteFile(t.Context(), "")
	requireArgumentError(t, err, "Media.DeleteFile", "fileZUID")

	assert.Equal(t, 0, transport.Calls())
}
