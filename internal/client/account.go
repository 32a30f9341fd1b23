package client

import (
	"context"

	"github.com/fivetwenty-io/zesty-client/internal/constants"
	"github.com/fivetwenty-io/zesty-client/internal/service"
	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

const (
	accountInstancePath = "/instances/INSTANCE_ZUID"
	accountUsersPath    = "/instances/INSTANCE_ZUID/users/roles"
	accountDomainsPath  = "/instances/INSTANCE_ZUID/domains"
)

// AccountClient implements zesty.AccountClient.
type AccountClient struct {
	instanceZUID string
	service      *service.Service
}

// NewAccountClient creates a new account client scoped to one instance.
func NewAccountClient(instanceZUID string, svc *service.Service) *AccountClient {
	return &AccountClient{
		instanceZUID: instanceZUID,
		service:      svc,
	}
}

// GetInstance implements zesty.AccountClient.GetInstance.
func (c *AccountClient) GetInstance(ctx context.Context) (*zesty.Result[zesty.Instance], error) {
	path, err := c.instancePath("Account.GetInstance", accountInstancePath)
	if err != nil {
		return nil, err
	}

	return decode[zesty.Instance](c.service.Get(ctx, path, nil))
}

// GetInstanceUsers implements zesty.AccountClient.GetInstanceUsers.
func (c *AccountClient) GetInstanceUsers(ctx context.Context) (*zesty.Result[[]zesty.InstanceUser], error) {
	path, err := c.instancePath("Account.GetInstanceUsers", accountUsersPath)
	if err != nil {
		return nil, err
	}

	return decode[[]zesty.InstanceUser](c.service.Get(ctx, path, nil))
}

// GetInstanceDomains implements zesty.AccountClient.GetInstanceDomains.
func (c *AccountClient) GetInstanceDomains(ctx context.Context) (*zesty.Result[[]zesty.Domain], error) {
	path, err := c.instancePath("Account.GetInstanceDomains", accountDomainsPath)
	if err != nil {
		return nil, err
	}

	return decode[[]zesty.Domain](c.service.Get(ctx, path, nil))
}

func (c *AccountClient) instancePath(op, template string) (string, error) {
	if c.instanceZUID == "" {
		return "", zesty.NewMissingArgument(op, "instanceZUID")
	}

	return c.service.Interpolate(template, map[string]string{constants.InstanceZUIDPlaceholder: c.instanceZUID}), nil
}
