package client

import (
	"github.com/fivetwenty-io/zesty-client/internal/constants"
	"github.com/fivetwenty-io/zesty-client/internal/http"
	"github.com/fivetwenty-io/zesty-client/internal/service"
	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

// Endpoints holds the resolved base URL of every platform family.
type Endpoints struct {
	Instances    string
	Legacy       string
	Accounts     string
	Media        string
	MediaStorage string
	Auth         string
}

// ResolveEndpoints applies the configured overrides on top of the default
// base URLs and substitutes the instance ZUID.
func ResolveEndpoints(config *zesty.Config) Endpoints {
	replacements := map[string]string{constants.InstanceZUIDPlaceholder: config.InstanceZUID}

	return Endpoints{
		Instances:    service.Interpolate(firstNonEmpty(config.InstancesAPIURL, constants.DefaultInstancesAPIURL), replacements),
		Legacy:       service.Interpolate(firstNonEmpty(config.LegacyAPIURL, constants.DefaultLegacyAPIURL), replacements),
		Accounts:     firstNonEmpty(config.AccountsAPIURL, constants.DefaultAccountsAPIURL),
		Media:        firstNonEmpty(config.MediaAPIURL, constants.DefaultMediaAPIURL),
		MediaStorage: firstNonEmpty(config.MediaStorageAPIURL, constants.DefaultMediaStorageAPIURL),
		Auth:         firstNonEmpty(config.AuthURL, constants.DefaultAuthURL),
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}

// Client implements the zesty.Client interface.
type Client struct {
	instanceZUID string
	endpoints    Endpoints
	transport    http.Doer

	// Resource clients
	account  *AccountClient
	instance *InstanceClient
	media    *MediaClient
	auth     *AuthClient
	actions  *ActionsClient
}

// createHTTPClientOptions builds transport options from config.
func createHTTPClientOptions(config *zesty.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	return httpOpts
}

// New builds every resource client over a single transport. It does not
// contact the platform.
func New(config *zesty.Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return NewWithTransport(config, http.NewClient(createHTTPClientOptions(config)...))
}

// NewWithTransport is New with a caller-supplied transport.
func NewWithTransport(config *zesty.Config, transport http.Doer) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	endpoints := ResolveEndpoints(config)

	serviceOpts := []service.Option{
		service.WithTransport(transport),
		service.WithCookieName(config.CookieName),
	}

	if config.Logger != nil {
		serviceOpts = append(serviceOpts, service.WithLogger(config.Logger))
	}

	newService := func(baseURL string) (*service.Service, error) {
		return service.New(baseURL, config.Token, serviceOpts...)
	}

	instanceService, err := newService(endpoints.Instances)
	if err != nil {
		return nil, err
	}

	legacyService, err := newService(endpoints.Legacy)
	if err != nil {
		return nil, err
	}

	accountsService, err := newService(endpoints.Accounts)
	if err != nil {
		return nil, err
	}

	mediaService, err := newService(endpoints.Media)
	if err != nil {
		return nil, err
	}

	storageService, err := newService(endpoints.MediaStorage)
	if err != nil {
		return nil, err
	}

	instance, err := NewInstanceClient(config.InstanceZUID, instanceService, legacyService)
	if err != nil {
		return nil, err
	}

	client := &Client{
		instanceZUID: config.InstanceZUID,
		endpoints:    endpoints,
		transport:    transport,
		instance:     instance,
		account:      NewAccountClient(config.InstanceZUID, accountsService),
		media:        NewMediaClient(config.InstanceZUID, mediaService, storageService),
		auth:         NewAuthClient(endpoints.Auth, serviceOpts...),
	}

	client.actions = NewActionsClient(client)

	return client, nil
}

// InstanceZUID implements zesty.Client.InstanceZUID.
func (c *Client) InstanceZUID() string {
	return c.instanceZUID
}

// Endpoints returns the resolved base URLs.
func (c *Client) Endpoints() Endpoints {
	return c.endpoints
}

// Resource client accessors

// Account implements zesty.Client.Account.
func (c *Client) Account() zesty.AccountClient {
	return c.account
}

// Instance implements zesty.Client.Instance.
func (c *Client) Instance() zesty.InstanceClient {
	return c.instance
}

// Media implements zesty.Client.Media.
func (c *Client) Media() zesty.MediaClient {
	return c.media
}

// Auth implements zesty.Client.Auth.
func (c *Client) Auth() zesty.AuthClient {
	return c.auth
}

// Actions implements zesty.Client.Actions.
func (c *Client) Actions() zesty.ActionsClient {
	return c.actions
}

// decode finishes a dispatcher call by decoding the envelope's data field.
// Dispatcher errors are returned unchanged.
func decode[T any](env *zesty.Envelope, err error) (*zesty.Result[T], error) {
	if err != nil {
		return nil, err
	}

	return zesty.DecodeResult[T](env)
}
