package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/fivetwenty-io/zesty-client/internal/constants"
	"github.com/fivetwenty-io/zesty-client/internal/logging"
	"github.com/fivetwenty-io/zesty-client/pkg/sdk"
	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

// Configuration keys shared by viper, the config file and the flags.
const (
	keyInstance        = "instance"
	keyToken           = "token"
	keyOutput          = "output"
	keyVerbose         = "verbose"
	keyCookieName      = "cookie_name"
	keyInstanceAPI     = "instance_api"
	keyLegacyAPI       = "legacy_api"
	keyAccountsAPI     = "accounts_api"
	keyMediaAPI        = "media_api"
	keyMediaStorageAPI = "media_storage_api"
	keyAuthAPI         = "auth_api"
)

const modelZUIDPrefix = "6-"

// BindEnvironment maps the platform environment variables onto config keys.
func BindEnvironment() error {
	bindings := map[string]string{
		keyInstance:        constants.EnvInstanceZUID,
		keyToken:           constants.EnvToken,
		keyCookieName:      constants.EnvCookieName,
		keyInstanceAPI:     constants.EnvInstancesAPI,
		keyLegacyAPI:       constants.EnvLegacyAPI,
		keyAccountsAPI:     constants.EnvAccountsAPI,
		keyMediaAPI:        constants.EnvMediaAPI,
		keyMediaStorageAPI: constants.EnvMediaStorageAPI,
		keyAuthAPI:         constants.EnvAuthAPI,
	}

	for key, env := range bindings {
		err := viper.BindEnv(key, env)
		if err != nil {
			return fmt.Errorf("binding %s: %w", env, err)
		}
	}

	return nil
}

// buildSDKConfig assembles a client configuration from the CLI settings.
func buildSDKConfig(instance, token string) *zesty.Config {
	verbose := viper.GetBool(keyVerbose)

	return &zesty.Config{
		InstanceZUID:       instance,
		Token:              token,
		InstancesAPIURL:    viper.GetString(keyInstanceAPI),
		LegacyAPIURL:       viper.GetString(keyLegacyAPI),
		AccountsAPIURL:     viper.GetString(keyAccountsAPI),
		MediaAPIURL:        viper.GetString(keyMediaAPI),
		MediaStorageAPIURL: viper.GetString(keyMediaStorageAPI),
		AuthURL:            viper.GetString(keyAuthAPI),
		CookieName:         viper.GetString(keyCookieName),
		HTTPTimeout:        constants.DefaultHTTPTimeout,
		Debug:              verbose,
		Logger:             logging.NewVerbose(verbose),
	}
}

// createClient builds a verified client for the configured instance.
func createClient(ctx context.Context) (*sdk.SDK, error) {
	instance := viper.GetString(keyInstance)
	if instance == "" {
		return nil, constants.ErrNoInstanceConfigured
	}

	token := viper.GetString(keyToken)
	if token == "" {
		return nil, constants.ErrNotAuthenticated
	}

	client, err := sdk.New(ctx, buildSDKConfig(instance, token))
	if err != nil {
		return nil, fmt.Errorf("connecting to instance %s: %w", instance, err)
	}

	return client, nil
}

// requireSuccess turns a non-2xx result into a *zesty.StatusError.
func requireSuccess[T any](op string, result *zesty.Result[T]) error {
	if result.IsSuccess() {
		return nil
	}

	return zesty.NewStatusError(op, result.Envelope)
}

// resolveModelZUID accepts a model ZUID or a model name or label.
func resolveModelZUID(ctx context.Context, client zesty.Client, nameOrZUID string) (string, error) {
	if strings.HasPrefix(nameOrZUID, modelZUIDPrefix) {
		return nameOrZUID, nil
	}

	model, err := client.Actions().FindModelByName(ctx, nameOrZUID)
	if err != nil {
		return "", fmt.Errorf("resolving model %q: %w", nameOrZUID, err)
	}

	return model.ZUID, nil
}
