package client

import (
	"context"

	"github.com/fivetwenty-io/zesty-client/internal/service"
	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

const authVerifyPath = "/verify"

// AuthClient implements zesty.AuthClient. The token to verify is the one the
// request is authenticated with, so a dispatcher is built per call.
type AuthClient struct {
	baseURL string
	opts    []service.Option
}

// NewAuthClient creates a new auth client.
func NewAuthClient(baseURL string, opts ...service.Option) *AuthClient {
	return &AuthClient{
		baseURL: baseURL,
		opts:    opts,
	}
}

// VerifyToken implements zesty.AuthClient.VerifyToken.
func (c *AuthClient) VerifyToken(ctx context.Context, token string) (*zesty.Result[zesty.Session], error) {
	if token == "" {
		return nil, zesty.NewMissingArgument("Auth.VerifyToken", "token")
	}

	svc, err := service.New(c.baseURL, token, c.opts...)
	if err != nil {
		return nil, err
	}

	return decode[zesty.Session](svc.Get(ctx, authVerifyPath, nil))
}
