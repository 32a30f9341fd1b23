//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/zesty-client/pkg/sdk"
	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

func TestSDK_ReadOnlyTour(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewClient(t)
	ctx := t.Context()

	instance, err := client.Account().GetInstance(ctx)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, instance.StatusCode, instance.Message)
	assert.Equal(t, config.InstanceZUID, instance.Data.ZUID)

	models, err := client.Instance().Models().GetModels(ctx)
	require.NoError(t, err)
	require.True(t, models.IsSuccess(), models.Message)

	settings, err := client.Instance().Settings().GetSettings(ctx)
	require.NoError(t, err)
	assert.True(t, settings.IsSuccess(), settings.Message)

	bins, err := client.Media().GetBins(ctx)
	require.NoError(t, err)
	assert.True(t, bins.IsSuccess(), bins.Message)
}

func TestSDK_RejectsInvalidToken(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	_, err := sdk.NewWithToken(t.Context(), config.InstanceZUID, GenerateTestName("invalid"))
	require.Error(t, err)
	assert.True(t, zesty.IsUnauthorized(err), err.Error())
}

func TestSDK_ItemLifecycle(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	if config.ModelName == "" {
		t.Skip("ZESTY_TEST_MODEL not set, skipping item lifecycle test")
	}

	client := config.NewClient(t)
	ctx := t.Context()

	model, err := client.Actions().FindModelByName(ctx, config.ModelName)
	require.NoError(t, err)

	title := GenerateTestName("integration item")
	path, err := client.Instance().FormatPath(title)
	require.NoError(t, err)

	created, err := client.Instance().Items().CreateItem(ctx, model.ZUID, map[string]any{
		"data": map[string]any{"title": title},
		"web":  map[string]any{"metaTitle": title, "pathPart": path},
	})
	require.NoError(t, err)
	require.True(t, created.IsSuccess(), created.Message)

	itemZUID := created.Data.Meta.ZUID

	t.Cleanup(func() {
		_, _ = client.Instance().Items().DeleteItem(t.Context(), model.ZUID, itemZUID)
	})

	published, err := client.Actions().PublishLatestVersion(ctx, model.ZUID, itemZUID)
	require.NoError(t, err)
	assert.Equal(t, created.Data.Meta.Version, published.Data.Version)

	found, err := client.Instance().Items().FindItem(ctx, title)
	require.NoError(t, err)
	assert.True(t, found.IsSuccess(), found.Message)
}
