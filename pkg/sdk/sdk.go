package sdk

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/zesty-client/internal/client"
	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

// SDK is a verified client for one instance.
type SDK struct {
	client  *client.Client
	session zesty.Session
}

var _ zesty.Client = (*SDK)(nil)

// New validates config, builds the resource clients and verifies the token.
func New(ctx context.Context, config *zesty.Config) (*SDK, error) {
	if config == nil {
		return nil, zesty.ErrConfigRequired
	}

	c, err := client.New(config)
	if err != nil {
		return nil, err
	}

	verified, err := c.Auth().VerifyToken(ctx, config.Token)
	if err != nil {
		return nil, fmt.Errorf("verifying token: %w", err)
	}

	if verified.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %w", zesty.ErrTokenVerification, zesty.NewStatusError("SDK.New", verified.Envelope))
	}

	if config.Logger != nil {
		config.Logger.Debug("token verified", map[string]interface{}{
			"instance": config.InstanceZUID,
			"user":     verified.Data.UserZUID,
		})
	}

	return &SDK{
		client:  c,
		session: verified.Data,
	}, nil
}

// NewWithToken creates a client for an instance using the default platform URLs.
func NewWithToken(ctx context.Context, instanceZUID, token string) (*SDK, error) {
	return New(ctx, &zesty.Config{
		InstanceZUID: instanceZUID,
		Token:        token,
	})
}

// Account implements zesty.Client.Account.
func (s *SDK) Account() zesty.AccountClient {
	return s.client.Account()
}

// Instance implements zesty.Client.Instance.
func (s *SDK) Instance() zesty.InstanceClient {
	return s.client.Instance()
}

// Media implements zesty.Client.Media.
func (s *SDK) Media() zesty.MediaClient {
	return s.client.Media()
}

// Auth implements zesty.Client.Auth.
func (s *SDK) Auth() zesty.AuthClient {
	return s.client.Auth()
}

// Actions implements zesty.Client.Actions.
func (s *SDK) Actions() zesty.ActionsClient {
	return s.client.Actions()
}

// InstanceZUID implements zesty.Client.InstanceZUID.
func (s *SDK) InstanceZUID() string {
	return s.client.InstanceZUID()
}

// Session returns what the auth service reported for the token at construction.
func (s *SDK) Session() zesty.Session {
	return s.session
}
