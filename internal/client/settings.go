package client

import (
	"context"
	"encoding/json"

	"github.com/fivetwenty-io/zesty-client/internal/service"
	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

const (
	settingsPath = "/env/settings"
	settingPath  = "/env/settings/SETTING_ZUID"
)

// SettingsClient implements zesty.SettingsClient.
type SettingsClient struct {
	service *service.Service
}

// NewSettingsClient creates a new settings client.
func NewSettingsClient(svc *service.Service) *SettingsClient {
	return &SettingsClient{
		service: svc,
	}
}

// GetSettings implements zesty.SettingsClient.GetSettings.
func (c *SettingsClient) GetSettings(ctx context.Context) (*zesty.Result[[]zesty.Setting], error) {
	return decode[[]zesty.Setting](c.service.Get(ctx, settingsPath, nil))
}

// GetSetting implements zesty.SettingsClient.GetSetting.
func (c *SettingsClient) GetSetting(ctx context.Context, settingZUID string) (*zesty.Result[zesty.Setting], error) {
	if settingZUID == "" {
		return nil, zesty.NewMissingArgument("Settings.GetSetting", "settingZUID")
	}

	path := c.service.Interpolate(settingPath, map[string]string{"SETTING_ZUID": settingZUID})

	return decode[zesty.Setting](c.service.Get(ctx, path, nil))
}

// GetSettingsByCategory implements zesty.SettingsClient.GetSettingsByCategory.
// The platform has no category filter; the full list is fetched and
// filtered client-side.
func (c *SettingsClient) GetSettingsByCategory(ctx context.Context, category string) (*zesty.Result[[]zesty.Setting], error) {
	if category == "" {
		return nil, zesty.NewMissingArgument("Settings.GetSettingsByCategory", "category")
	}

	return decode[[]zesty.Setting](c.service.Get(ctx, settingsPath, &service.Options{
		Formatter: filterByCategory(category),
	}))
}

// CreateSetting implements zesty.SettingsClient.CreateSetting.
func (c *SettingsClient) CreateSetting(ctx context.Context, payload any) (*zesty.Result[zesty.Setting], error) {
	if payload == nil {
		return nil, zesty.NewMissingArgument("Settings.CreateSetting", "payload")
	}

	return decode[zesty.Setting](c.service.Post(ctx, settingsPath, &service.Options{Payload: payload}))
}

// UpdateSetting implements zesty.SettingsClient.UpdateSetting.
func (c *SettingsClient) UpdateSetting(ctx context.Context, settingZUID string, payload any) (*zesty.Result[zesty.Setting], error) {
	if settingZUID == "" {
		return nil, zesty.NewMissingArgument("Settings.UpdateSetting", "settingZUID")
	}

	if payload == nil {
		return nil, zesty.NewMissingArgument("Settings.UpdateSetting", "payload")
	}

	path := c.service.Interpolate(settingPath, map[string]string{"SETTING_ZUID": settingZUID})

	return decode[zesty.Setting](c.service.Put(ctx, path, &service.Options{Payload: payload}))
}

// DeleteSetting implements zesty.SettingsClient.DeleteSetting.
func (c *SettingsClient) DeleteSetting(ctx context.Context, settingZUID string) (*zesty.Result[json.RawMessage], error) {
	if settingZUID == "" {
		return nil, zesty.NewMissingArgument("Settings.DeleteSetting", "settingZUID")
	}

	path := c.service.Interpolate(settingPath, map[string]string{"SETTING_ZUID": settingZUID})

	return decode[json.RawMessage](c.service.Delete(ctx, path, nil))
}

// filterByCategory keeps the data entries whose "category" equals category.
// Envelopes without a list in data are returned untouched.
func filterByCategory(category string) func(*zesty.Envelope) *zesty.Envelope {
	return func(env *zesty.Envelope) *zesty.Envelope {
		var entries []map[string]json.RawMessage

		err := json.Unmarshal(env.Data(), &entries)
		if err != nil {
			return env
		}

		kept := make([]map[string]json.RawMessage, 0, len(entries))

		for _, entry := range entries {
			var value string
			if json.Unmarshal(entry["category"], &value) == nil && value == category {
				kept = append(kept, entry)
			}
		}

		data, err := json.Marshal(kept)
		if err != nil {
			return env
		}

		env.Fields["data"] = data

		return env
	}
}
