package zesty

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an SDK.
//
// # Base URLs
//
// Every platform family has a default base URL; each can be overridden here.
// The library never consults the environment: reading ZESTY_* variables is
// the job of the program embedding it (the zesty CLI does so through viper).
//
//   - InstancesAPIURL: default "https://{InstanceZUID}.api.zesty.io/v1"
//   - LegacyAPIURL: default "https://svc.zesty.io/sites-service/{InstanceZUID}"
//   - AccountsAPIURL: default "https://accounts.api.zesty.io/v1"
//   - MediaAPIURL: default "https://svc.zesty.io/media-manager-service"
//   - MediaStorageAPIURL: default "https://svc.zesty.io/media-storage-service"
//   - AuthURL: default "https://auth.api.zesty.io"
//
// # Timeouts and retries
//
// Requests are sent exactly once. Per-request deadlines come from the context
// passed to each call; HTTPTimeout bounds the underlying http.Client.
type Config struct {
	// InstanceZUID identifies the content instance (e.g. "8-aaeffee09b-7w6v22").
	InstanceZUID string `validate:"required"`
	// Token is the session token sent with every request.
	Token string `validate:"required"`

	InstancesAPIURL    string `validate:"omitempty,url"`
	LegacyAPIURL       string `validate:"omitempty,url"`
	AccountsAPIURL     string `validate:"omitempty,url"`
	MediaAPIURL        string `validate:"omitempty,url"`
	MediaStorageAPIURL string `validate:"omitempty,url"`
	AuthURL            string `validate:"omitempty,url"`

	// CookieName names the session cookie used by cookie-authenticated
	// endpoints. Defaults to "APP_SID".
	CookieName string

	// HTTPTimeout bounds every request. Defaults to 30s.
	HTTPTimeout time.Duration `validate:"gte=0"`
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger.
	Logger Logger
	// HTTPClient replaces the underlying *http.Client (proxies, tests).
	HTTPClient *http.Client
}

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration and reports the first problem as an
// *ArgumentError naming the field.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigRequired
	}

	err := configValidator.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validating config: %w", err)
	}

	first := fieldErrs[0]
	if first.Tag() == "required" {
		return NewMissingArgument("Config.Validate", first.Field())
	}

	return NewInvalidArgument("Config.Validate", first.Field(), fmt.Sprintf("failed %q check", first.Tag()))
}
