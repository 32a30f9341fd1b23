package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/zesty-client/internal/service"
	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

const (
	itemsPath       = "/content/models/MODEL_ZUID/items"
	itemPath        = "/content/models/MODEL_ZUID/items/ITEM_ZUID"
	itemVersions    = "/content/models/MODEL_ZUID/items/ITEM_ZUID/versions"
	itemVersion     = "/content/models/MODEL_ZUID/items/ITEM_ZUID/versions/VERSION_NUMBER"
	itemPublishings = "/content/models/MODEL_ZUID/items/ITEM_ZUID/publishings"
	itemPublishing  = "/content/models/MODEL_ZUID/items/ITEM_ZUID/publishings/PUBLISHING_ZUID"
	itemSearch      = "/search/items"

	// Served by the legacy sites service.
	legacyPublishSchedule   = "/content/items/ITEM_ZUID/publish-schedule"
	legacyUnpublishSchedule = "/content/items/ITEM_ZUID/publish-schedule/PUBLISHING_ZUID"
)

// ItemsClient implements zesty.ItemsClient.
type ItemsClient struct {
	service *service.Service
	legacy  *service.Service
}

// NewItemsClient creates a new items client. The legacy dispatcher serves
// the immediate publish and unpublish calls.
func NewItemsClient(svc, legacy *service.Service) *ItemsClient {
	return &ItemsClient{
		service: svc,
		legacy:  legacy,
	}
}

// GetItems implements zesty.ItemsClient.GetItems.
func (c *ItemsClient) GetItems(ctx context.Context, modelZUID string) (*zesty.Result[[]zesty.Item], error) {
	if modelZUID == "" {
		return nil, zesty.NewMissingArgument("Items.GetItems", "modelZUID")
	}

	path := c.service.Interpolate(itemsPath, map[string]string{"MODEL_ZUID": modelZUID})

	return decode[[]zesty.Item](c.service.Get(ctx, path, nil))
}

// GetItem implements zesty.ItemsClient.GetItem.
func (c *ItemsClient) GetItem(ctx context.Context, modelZUID, itemZUID string) (*zesty.Result[zesty.Item], error) {
	path, err := c.resolveItemPath("Items.GetItem", itemPath, modelZUID, itemZUID)
	if err != nil {
		return nil, err
	}

	return decode[zesty.Item](c.service.Get(ctx, path, nil))
}

// CreateItem implements zesty.ItemsClient.CreateItem.
func (c *ItemsClient) CreateItem(ctx context.Context, modelZUID string, payload any) (*zesty.Result[zesty.Item], error) {
	if modelZUID == "" {
		return nil, zesty.NewMissingArgument("Items.CreateItem", "modelZUID")
	}

	if payload == nil {
		return nil, zesty.NewMissingArgument("Items.CreateItem", "payload")
	}

	path := c.service.Interpolate(itemsPath, map[string]string{"MODEL_ZUID": modelZUID})

	return decode[zesty.Item](c.service.Post(ctx, path, &service.Options{Payload: payload}))
}

// UpdateItem implements zesty.ItemsClient.UpdateItem.
func (c *ItemsClient) UpdateItem(ctx context.Context, modelZUID, itemZUID string, payload any) (*zesty.Result[zesty.Item], error) {
	path, err := c.resolveItemPath("Items.UpdateItem", itemPath, modelZUID, itemZUID)
	if err != nil {
		return nil, err
	}

	if payload == nil {
		return nil, zesty.NewMissingArgument("Items.UpdateItem", "payload")
	}

	return decode[zesty.Item](c.service.Put(ctx, path, &service.Options{Payload: payload}))
}

// DeleteItem implements zesty.ItemsClient.DeleteItem.
func (c *ItemsClient) DeleteItem(ctx context.Context, modelZUID, itemZUID string) (*zesty.Result[json.RawMessage], error) {
	path, err := c.resolveItemPath("Items.DeleteItem", itemPath, modelZUID, itemZUID)
	if err != nil {
		return nil, err
	}

	return decode[json.RawMessage](c.service.Delete(ctx, path, nil))
}

// GetItemVersions implements zesty.ItemsClient.GetItemVersions.
func (c *ItemsClient) GetItemVersions(ctx context.Context, modelZUID, itemZUID string) (*zesty.Result[[]zesty.Item], error) {
	path, err := c.resolveItemPath("Items.GetItemVersions", itemVersions, modelZUID, itemZUID)
	if err != nil {
		return nil, err
	}

	return decode[[]zesty.Item](c.service.Get(ctx, path, nil))
}

// GetItemVersion implements zesty.ItemsClient.GetItemVersion.
func (c *ItemsClient) GetItemVersion(ctx context.Context, modelZUID, itemZUID string, version int) (*zesty.Result[zesty.Item], error) {
	path, err := c.resolveItemPath("Items.GetItemVersion", itemVersion, modelZUID, itemZUID)
	if err != nil {
		return nil, err
	}

	if version < 1 {
		return nil, zesty.NewInvalidArgument("Items.GetItemVersion", "version", "must be a positive integer")
	}

	path = c.service.Interpolate(path, map[string]string{"VERSION_NUMBER": strconv.Itoa(version)})

	return decode[zesty.Item](c.service.Get(ctx, path, nil))
}

// GetItemPublishings implements zesty.ItemsClient.GetItemPublishings.
func (c *ItemsClient) GetItemPublishings(ctx context.Context, modelZUID, itemZUID string) (*zesty.Result[[]zesty.Publishing], error) {
	path, err := c.resolveItemPath("Items.GetItemPublishings", itemPublishings, modelZUID, itemZUID)
	if err != nil {
		return nil, err
	}

	return decode[[]zesty.Publishing](c.service.Get(ctx, path, nil))
}

// PublishItem implements zesty.ItemsClient.PublishItem.
func (c *ItemsClient) PublishItem(ctx context.Context, modelZUID, itemZUID string, request *zesty.PublishRequest) (*zesty.Result[zesty.Publishing], error) {
	path, err := c.resolveItemPath("Items.PublishItem", itemPublishings, modelZUID, itemZUID)
	if err != nil {
		return nil, err
	}

	if request == nil {
		return nil, zesty.NewMissingArgument("Items.PublishItem", "request")
	}

	if request.Version < 1 {
		return nil, zesty.NewInvalidArgument("Items.PublishItem", "version", "must be a positive integer")
	}

	return decode[zesty.Publishing](c.service.Post(ctx, path, &service.Options{Payload: request}))
}

// UnpublishItem implements zesty.ItemsClient.UnpublishItem.
func (c *ItemsClient) UnpublishItem(ctx context.Context, modelZUID, itemZUID, publishingZUID string) (*zesty.Result[json.RawMessage], error) {
	path, err := c.resolveItemPath("Items.UnpublishItem", itemPublishing, modelZUID, itemZUID)
	if err != nil {
		return nil, err
	}

	if publishingZUID == "" {
		return nil, zesty.NewMissingArgument("Items.UnpublishItem", "publishingZUID")
	}

	path = c.service.Interpolate(path, map[string]string{"PUBLISHING_ZUID": publishingZUID})

	return decode[json.RawMessage](c.service.Delete(ctx, path, nil))
}

// FindItem implements zesty.ItemsClient.FindItem.
func (c *ItemsClient) FindItem(ctx context.Context, query string) (*zesty.Result[[]zesty.Item], error) {
	if query == "" {
		return nil, zesty.NewMissingArgument("Items.FindItem", "query")
	}

	return decode[[]zesty.Item](c.service.Get(ctx, itemSearch, &service.Options{
		Query: url.Values{"q": []string{query}},
	}))
}

// PublishItemImmediately implements zesty.ItemsClient.PublishItemImmediately.
// It goes through the legacy sites service, which authenticates by cookie.
func (c *ItemsClient) PublishItemImmediately(ctx context.Context, itemZUID string, version int) (*zesty.Result[json.RawMessage], error) {
	if itemZUID == "" {
		return nil, zesty.NewMissingArgument("Items.PublishItemImmediately", "itemZUID")
	}

	if version < 1 {
		return nil, zesty.NewInvalidArgument("Items.PublishItemImmediately", "version", "must be a positive integer")
	}

	path := c.legacy.Interpolate(legacyPublishSchedule, map[string]string{"ITEM_ZUID": itemZUID})

	return decode[json.RawMessage](c.legacy.Post(ctx, path, &service.Options{
		Payload:     map[string]int{"version_num": version},
		CookieAuth:  true,
		SuccessCode: http.StatusOK,
	}))
}

// UnpublishItemImmediately implements zesty.ItemsClient.UnpublishItemImmediately.
func (c *ItemsClient) UnpublishItemImmediately(ctx context.Context, itemZUID, publishingZUID string) (*zesty.Result[json.RawMessage], error) {
	if itemZUID == "" {
		return nil, zesty.NewMissingArgument("Items.UnpublishItemImmediately", "itemZUID")
	}

	if publishingZUID == "" {
		return nil, zesty.NewMissingArgument("Items.UnpublishItemImmediately", "publishingZUID")
	}

	path := c.legacy.Interpolate(legacyUnpublishSchedule, map[string]string{
		"ITEM_ZUID":       itemZUID,
		"PUBLISHING_ZUID": publishingZUID,
	})

	return decode[json.RawMessage](c.legacy.Patch(ctx, path, &service.Options{
		Payload:    map[string]string{"take_offline_at": "now"},
		CookieAuth: true,
	}))
}

func (c *ItemsClient) resolveItemPath(op, template, modelZUID, itemZUID string) (string, error) {
	if modelZUID == "" {
		return "", zesty.NewMissingArgument(op, "modelZUID")
	}

	if itemZUID == "" {
		return "", zesty.NewMissingArgument(op, "itemZUID")
	}

	return c.service.Interpolate(template, map[string]string{
		"MODEL_ZUID": modelZUID,
		"ITEM_ZUID":  itemZUID,
	}), nil
}
