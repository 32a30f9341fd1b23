package client

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/zesty-client/internal/testutil"
	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

const articlePath = testutil.InstancePrefix + "/content/models/" + testutil.ArticlesModelZUID + "/items/" + testutil.ArticleItemZUID

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestItemsClient(t *testing.T) {
	t.Parallel()

	t.Run("list and get", func(t *testing.T) {
		t.Parallel()

		client, platform := newPlatformClient(t)
		items := client.Instance().Items()

		list, err := items.GetItems(t.Context(), testutil.ArticlesModelZUID)
		require.NoError(t, err)
		require.Len(t, list.Data, 2)

		item, err := items.GetItem(t.Context(), testutil.ArticlesModelZUID, testutil.ArticleItemZUID)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, item.StatusCode)
		assert.Equal(t, testutil.ArticleLatest, item.Data.Meta.Version)
		assert.Equal(t, "Welcome to Midgar", item.Data.Data["title"])
		assert.Equal(t, articlePath, platform.LastRequest().Path)
	})

	t.Run("create and update bumps the version", func(t *testing.T) {
		t.Parallel()

		client, _ := newPlatformClient(t)
		items := client.Instance().Items()

		created, err := items.CreateItem(t.Context(), testutil.ArticlesModelZUID, map[string]interface{}{
			"data": map[string]string{"title": "Sector 7"},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, created.StatusCode)
		assert.Equal(t, 1, created.Data.Meta.Version)

		updated, err := items.UpdateItem(t.Context(), testutil.ArticlesModelZUID, created.Data.Meta.ZUID, map[string]interface{}{
			"data": map[string]string{"title": "Sector 7 Slums"},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, updated.StatusCode)
		assert.Equal(t, 2, updated.Data.Meta.Version)

		versions, err := items.GetItemVersions(t.Context(), testutil.ArticlesModelZUID, created.Data.Meta.ZUID)
		require.NoError(t, err)
		assert.Len(t, versions.Data, 2)

		deleted, err := items.DeleteItem(t.Context(), testutil.ArticlesModelZUID, created.Data.Meta.ZUID)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, deleted.StatusCode)
	})

	t.Run("versions", func(t *testing.T) {
		t.Parallel()

		client, platform := newPlatformClient(t)
		items := client.Instance().Items()

		versions, err := items.GetItemVersions(t.Context(), testutil.ArticlesModelZUID, testutil.ArticleItemZUID)
		require.NoError(t, err)
		assert.Len(t, versions.Data, testutil.ArticleLatest)
		assert.Equal(t, articlePath+"/versions", platform.LastRequest().Path)

		version, err := items.GetItemVersion(t.Context(), testutil.ArticlesModelZUID, testutil.ArticleItemZUID, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, version.Data.Meta.Version)
		assert.Equal(t, articlePath+"/versions/2", platform.LastRequest().Path)

		missing, err := items.GetItemVersion(t.Context(), testutil.ArticlesModelZUID, testutil.ArticleItemZUID, 99)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, missing.StatusCode)
	})

	t.Run("publish and unpublish", func(t *testing.T) {
		t.Parallel()

		client, platform := newPlatformClient(t)
		items := client.Instance().Items()

		published, err := items.PublishItem(t.Context(), testutil.ArticlesModelZUID, testutil.ArticleItemZUID, &zesty.PublishRequest{Version: 3})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, published.StatusCode)
		assert.Equal(t, 3, published.Data.Version)

		request := platform.LastRequest()
		assert.Equal(t, articlePath+"/publishings", request.Path)
		assert.JSONEq(t, `{"version":3}`, string(request.Body))

		publishings, err := items.GetItemPublishings(t.Context(), testutil.ArticlesModelZUID, testutil.ArticleItemZUID)
		require.NoError(t, err)
		assert.Len(t, publishings.Data, 2)

		unpublished, err := items.UnpublishItem(t.Context(), testutil.ArticlesModelZUID, testutil.ArticleItemZUID, published.Data.ZUID)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, unpublished.StatusCode)
		assert.Equal(t, http.MethodDelete, platform.LastRequest().Method)
		assert.Equal(t, articlePath+"/publishings/"+published.Data.ZUID, platform.LastRequest().Path)
	})

	t.Run("find", func(t *testing.T) {
		t.Parallel()

		client, platform := newPlatformClient(t)

		found, err := client.Instance().Items().FindItem(t.Context(), "midgar")
		require.NoError(t, err)
		require.Len(t, found.Data, 1)
		assert.Equal(t, testutil.ArticleItemZUID, found.Data[0].Meta.ZUID)

		request := platform.LastRequest()
		assert.Equal(t, testutil.InstancePrefix+"/search/items", request.Path)
		assert.Equal(t, "midgar", request.Query.Get("q"))
	})

	t.Run("find escapes the query", func(t *testing.T) {
		t.Parallel()

		client, transport := newRecordingClient(t, http.StatusOK, map[string]interface{}{"data": []interface{}{}})

		_, err := client.Instance().Items().FindItem(t.Context(), "rock & roll")
		require.NoError(t, err)
		assert.Equal(t, "https://"+testutil.TestInstanceZUID+".api.zesty.io/v1/search/items?q=rock+%26+roll", transport.Last().URL)
	})
}

func TestItemsClient_Legacy(t *testing.T) {
	t.Parallel()

	t.Run("publish immediately uses cookie auth", func(t *testing.T) {
		t.Parallel()

		client, platform := newPlatformClient(t)

		result, err := client.Instance().Items().PublishItemImmediately(t.Context(), testutil.ArticleItemZUID, 3)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, result.StatusCode)

		request := platform.LastRequest()
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, testutil.LegacyPrefix+"/content/items/"+testutil.ArticleItemZUID+"/publish-schedule", request.Path)
		assert.Equal(t, testutil.TestCookieName+"="+testutil.TestToken, request.Header.Get("Cookie"))
		assert.JSONEq(t, `{"version_num":3}`, string(request.Body))

		var publishing zesty.Publishing
		require.NoError(t, json.Unmarshal(result.Data, &publishing))
		assert.Equal(t, 3, publishing.Version)
	})

	t.Run("unpublish immediately", func(t *testing.T) {
		t.Parallel()

		client, platform := newPlatformClient(t)

		result, err := client.Instance().Items().UnpublishItemImmediately(t.Context(), testutil.ArticleItemZUID, "18-pub001")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, result.StatusCode)

		request := platform.LastRequest()
		assert.Equal(t, http.MethodPatch, request.Method)
		assert.Equal(t, testutil.LegacyPrefix+"/content/items/"+testutil.ArticleItemZUID+"/publish-schedule/18-pub001", request.Path)
		assert.JSONEq(t, `{"take_offline_at":"now"}`, string(request.Body))
	})

	t.Run("legacy rejects a wrong cookie name", func(t *testing.T) {
		t.Parallel()

		platform := testutil.NewPlatform(t)
		config := platform.Config()
		config.CookieName = "DEV_APP_SID"

		client, err := New(config)
		require.NoError(t, err)

		result, err := client.Instance().Items().PublishItemImmediately(t.Context(), testutil.ArticleItemZUID, 1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, result.StatusCode)
	})
}

func TestItemsClient_MissingArguments(t *testing.T) {
	t.Parallel()

	client, transport := newRecordingClient(t, http.StatusOK, nil)
	items := client.Instance().Items()

	tests := []struct {
		name  string
		call  func() error
		op    string
		param string
	}{
		{"get items", func() error { _, err := items.GetItems(t.Context(), ""); return err }, "Items.GetItems", "modelZUID"},
		{"get item", func() error { _, err := items.GetItem(t.Context(), "6-abc", ""); return err }, "Items.GetItem", "itemZUID"},
		{"create item", func() error { _, err := items.CreateItem(t.Context(), "6-abc", nil); return err }, "Items.CreateItem", "payload"},
		{"update item", func() error { _, err := items.UpdateItem(t.Context(), "", "7-abc", nil); return err }, "Items.UpdateItem", "modelZUID"},
		{"delete item", func() error { _, err := items.DeleteItem(t.Context(), "6-abc", ""); return err }, "Items.DeleteItem", "itemZUID"},
		{"versions", func() error { _, err := items.GetItemVersions(t.Context(), "", ""); return err }, "Items.GetItemVersions", "modelZUID"},
		{"version zero", func() error { _, err := items.GetItemVersion(t.Context(), "6-abc", "7-abc", 0); return err }, "Items.GetItemVersion", "version"},
		{"publishings", func() error { _, err := items.GetItemPublishings(t.Context(), "6-abc", ""); return err }, "Items.GetItemPublishings", "itemZUID"},
		{"publish nil", func() error { _, err := items.PublishItem(t.Context(), "6-abc", "7-abc", nil); return err }, "Items.PublishItem", "request"},
		{"publish version", func() error {
			_, err := items.PublishItem(t.Context(), "6-abc", "7-abc", &zesty.PublishRequest{})
			return err
		}, "Items.PublishItem", "version"},
		{"unpublish", func() error { _, err := items.UnpublishItem(t.Context(), "6-abc", "7-abc", ""); return err }, "Items.UnpublishItem", "publishingZUID"},
		{"find", func() error { _, err := items.FindItem(t.Context(), ""); return err }, "Items.FindItem", "query"},
		{"publish now", func() error { _, err := items.PublishItemImmediately(t.Context(), "", 1); return err }, "Items.PublishItemImmediately", "itemZUID"},
		{"publish now version", func() error { _, err := items.PublishItemImmediately(t.Context(), "7-abc", 0); return err }, "Items.PublishItemImmediately", "version"},
		{"unpublish now", func() error { _, err := items.UnpublishItemImmediately(t.Context(), "7-abc", ""); return err }, "Items.UnpublishItemImmediately", "publishingZUID"},
	}

	for _, testCase := range tests {
		requireArgumentError(t, testCase.call(), testCase.op, testCase.param)
	}

	assert.Equal(t, 0, transport.Calls())
}
