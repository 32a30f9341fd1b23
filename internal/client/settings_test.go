package client

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/zesty-client/internal/testutil"
	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

func TestSettingsClient(t *testing.T) {
	t.Parallel()

	t.Run("list and get", func(t *testing.T) {
		t.Parallel()

		client, platform := newPlatformClient(t)
		settings := client.Instance().Settings()

		list, err := settings.GetSettings(t.Context())
		require.NoError(t, err)
		assert.Len(t, list.Data, 3)
		assert.Equal(t, testutil.InstancePrefix+"/env/settings", platform.LastRequest().Path)

		setting, err := settings.GetSetting(t.Context(), testutil.ProtocolSetting)
		require.NoError(t, err)
		assert.Equal(t, "site_protocol", setting.Data.Key)
		assert.Equal(t, "https", setting.Data.Value)
	})

	t.Run("by category", func(t *testing.T) {
		t.Parallel()

		client, platform := newPlatformClient(t)

		general, err := client.Instance().Settings().GetSettingsByCategory(t.Context(), "general")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, general.StatusCode)
		require.Len(t, general.Data, 2)

		for _, setting := range general.Data {
			assert.Equal(t, "general", setting.Category)
		}

		assert.Equal(t, testutil.InstancePrefix+"/env/settings", platform.LastRequest().Path)

		none, err := client.Instance().Settings().GetSettingsByCategory(t.Context(), "developer")
		require.NoError(t, err)
		assert.Empty(t, none.Data)
		assert.NotNil(t, none.Data)
	})

	t.Run("by category passes errors through", func(t *testing.T) {
		t.Parallel()

		client, platform := newPlatformClient(t)
		platform.FailWith(http.MethodGet, testutil.InstancePrefix+"/env/settings", http.StatusInternalServerError, "boom")

		result, err := client.Instance().Settings().GetSettingsByCategory(t.Context(), "general")
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
		assert.Equal(t, "boom", result.Message)
	})

	t.Run("create update delete", func(t *testing.T) {
		t.Parallel()

		client, _ := newPlatformClient(t)
		settings := client.Instance().Settings()

		created, err := settings.CreateSetting(t.Context(), &zesty.Setting{Category: "developer", Key: "basic_content_api_enabled", Value: "0"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, created.StatusCode)

		updated, err := settings.UpdateSetting(t.Context(), created.Data.ZUID, map[string]string{"value": "1"})
		require.NoError(t, err)
		assert.Equal(t, "1", updated.Data.Value)

		deleted, err := settings.DeleteSetting(t.Context(), created.Data.ZUID)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, deleted.StatusCode)
	})

	t.Run("missing arguments", func(t *testing.T) {
		t.Parallel()

		client, transport := newRecordingClient(t, http.StatusOK, nil)
		settings := client.Instance().Settings()

		_, err := settings.GetSetting(t.Context(), "")
		requireArgumentError(t, err, "Settings.GetSetting", "settingZUID")
		assert.Equal(t, "Settings.GetSetting: missing required `settingZUID` argument", err.Error())

		_, err = settings.GetSettingsByCategory(t.Context(), "")
		requireArgumentError(t, err, "Settings.GetSettingsByCategory", "category")

		_, err = settings.CreateSetting(t.Context(), nil)
		requireArgumentError(t, err, "Settings.CreateSetting", "payload")

		_, err = settings.UpdateSetting(t.Context(), "", map[string]string{})
		requireArgumentError(t, err, "Settings.UpdateSetting", "settingZUID")

		_, err = settings.DeleteSetting(t.Context(), "")
		requireArgumentError(t, err, "Settings.DeleteSetting", "settingZUID")

		assert.Equal(t, 0, transport.Calls())
	})
}

func TestFilterByCategory(t *testing.T) {
	t.Parallel()

	env := zesty.NewEnvelope(http.StatusOK, nil, []byte(`{"data":[{"category":"a","key":"x"},{"category":"b"},{"key":"no category"}]}`))

	filtered := filterByCategory("a")(env)
	assert.JSONEq(t, `[{"category":"a","key":"x"}]`, string(filtered.Data()))

	raw := zesty.NewEnvelope(http.StatusOK, nil, []byte(`{"data":{"not":"a list"}}`))
	assert.JSONEq(t, `{"not":"a list"}`, string(filterByCategory("a")(raw).Data()))
}
