package client

import (
	"context"
	"encoding/json"

	"github.com/fivetwenty-io/zesty-client/internal/service"
	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

const (
	fieldsPath = "/content/models/MODEL_ZUID/fields"
	fieldPath  = "/content/models/MODEL_ZUID/fields/FIELD_ZUID"
)

// FieldsClient implements zesty.FieldsClient.
type FieldsClient struct {
	service *service.Service
}

// NewFieldsClient creates a new fields client.
func NewFieldsClient(svc *service.Service) *FieldsClient {
	return &FieldsClient{
		service: svc,
	}
}

// GetFields implements zesty.FieldsClient.GetFields.
func (c *FieldsClient) GetFields(ctx context.Context, modelZUID string) (*zesty.Result[[]zesty.Field], error) {
	if modelZUID == "" {
		return nil, zesty.NewMissingArgument("Fields.GetFields", "modelZUID")
	}

	path := c.service.Interpolate(fieldsPath, map[string]string{"MODEL_ZUID": modelZUID})

	return decode[[]zesty.Field](c.service.Get(ctx, path, nil))
}

// GetField implements zesty.FieldsClient.GetField.
func (c *FieldsClient) GetField(ctx context.Context, modelZUID, fieldZUID string) (*zesty.Result[zesty.Field], error) {
	path, err := c.resolveFieldPath("Fields.GetField", modelZUID, fieldZUID)
	if err != nil {
		return nil, err
	}

	return decode[zesty.Field](c.service.Get(ctx, path, nil))
}

// CreateField implements zesty.FieldsClient.CreateField.
func (c *FieldsClient) CreateField(ctx context.Context, modelZUID string, payload any) (*zesty.Result[zesty.Field], error) {
	if modelZUID == "" {
		return nil, zesty.NewMissingArgument("Fields.CreateField", "modelZUID")
	}

	if payload == nil {
		return nil, zesty.NewMissingArgument("Fields.CreateField", "payload")
	}

	path := c.service.Interpolate(fieldsPath, map[string]string{"MODEL_ZUID": modelZUID})

	return decode[zesty.Field](c.service.Post(ctx, path, &service.Options{Payload: payload}))
}

// UpdateField implements zesty.FieldsClient.UpdateField.
func (c *FieldsClient) UpdateField(ctx context.Context, modelZUID, fieldZUID string, payload any) (*zesty.Result[zesty.Field], error) {
	path, err := c.resolveFieldPath("Fields.UpdateField", modelZUID, fieldZUID)
	if err != nil {
		return nil, err
	}

	if payload == nil {
		return nil, zesty.NewMissingArgument("Fields.UpdateField", "payload")
	}

	return decode[zesty.Field](c.service.Put(ctx, path, &service.Options{Payload: payload}))
}

// DeleteField implements zesty.FieldsClient.DeleteField.
func (c *FieldsClient) DeleteField(ctx context.Context, modelZUID, fieldZUID string) (*zesty.Result[json.RawMessage], error) {
	path, err := c.resolveFieldPath("Fields.DeleteField", modelZUID, fieldZUID)
	if err != nil {
		return nil, err
	}

	return decode[json.RawMessage](c.service.Delete(ctx, path, nil))
}

func (c *FieldsClient) resolveFieldPath(op, modelZUID, fieldZUID string) (string, error) {
	if modelZUID == "" {
		return "", zesty.NewMissingArgument(op, "modelZUID")
	}

	if fieldZUID == "" {
		return "", zesty.NewMissingArgument(op, "fieldZUID")
	}

	return c.service.Interpolate(fieldPath, map[string]string{
		"MODEL_ZUID": modelZUID,
		"FIELD_ZUID": fieldZUID,
	}), nil
}
