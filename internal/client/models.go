package client

import (
	"context"
	"encoding/json"

	"github.com/fivetwenty-io/zesty-client/internal/service"
	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

const (
	modelsPath = "/content/models"
	modelPath  = "/content/models/MODEL_ZUID"
)

// ModelsClient implements zesty.ModelsClient.
type ModelsClient struct {
	service *service.Service
}

// NewModelsClient creates a new models client.
func NewModelsClient(svc *service.Service) *ModelsClient {
	return &ModelsClient{
		service: svc,
	}
}

// GetModels implements zesty.ModelsClient.GetModels.
func (c *ModelsClient) GetModels(ctx context.Context) (*zesty.Result[[]zesty.Model], error) {
	return decode[[]zesty.Model](c.service.Get(ctx, modelsPath, nil))
}

// GetModel implements zesty.ModelsClient.GetModel.
func (c *ModelsClient) GetModel(ctx context.Context, modelZUID string) (*zesty.Result[zesty.Model], error) {
	if modelZUID == "" {
		return nil, zesty.NewMissingArgument("Models.GetModel", "modelZUID")
	}

	path := c.service.Interpolate(modelPath, map[string]string{"MODEL_ZUID": modelZUID})

	return decode[zesty.Model](c.service.Get(ctx, path, nil))
}

// CreateModel implements zesty.ModelsClient.CreateModel.
func (c *ModelsClient) CreateModel(ctx context.Context, payload any) (*zesty.Result[zesty.Model], error) {
	if payload == nil {
		return nil, zesty.NewMissingArgument("Models.CreateModel", "payload")
	}

	return decode[zesty.Model](c.service.Post(ctx, modelsPath, &service.Options{Payload: payload}))
}

// UpdateModel implements zesty.ModelsClient.UpdateModel.
func (c *ModelsClient) UpdateModel(ctx context.Context, modelZUID string, payload any) (*zesty.Result[zesty.Model], error) {
	if modelZUID == "" {
		return nil, zesty.NewMissingArgument("Models.UpdateModel", "modelZUID")
	}

	if payload == nil {
		return nil, zesty.NewMissingArgument("Models.UpdateModel", "payload")
	}

	path := c.service.Interpolate(modelPath, map[string]string{"MODEL_ZUID": modelZUID})

	return decode[zesty.Model](c.service.Put(ctx, path, &service.Options{Payload: payload}))
}

// DeleteModel implements zesty.ModelsClient.DeleteModel.
func (c *ModelsClient) DeleteModel(ctx context.Context, modelZUID string) (*zesty.Result[json.RawMessage], error) {
	if modelZUID == "" {
		return nil, zesty.NewMissingArgument("Models.DeleteModel", "modelZUID")
	}

	path := c.service.Interpolate(modelPath, map[string]string{"MODEL_ZUID": modelZUID})

	return decode[json.RawMessage](c.service.Delete(ctx, path, nil))
}
