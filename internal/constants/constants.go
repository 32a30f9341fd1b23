package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for token verification from the CLI.
	ShortHTTPTimeout = 10 * time.Second
)

// HTTP status codes the dispatcher defaults to.
const (
	// HTTPStatusOK is the expected status of GET, PUT, PATCH and DELETE calls.
	HTTPStatusOK = 200

	// HTTPStatusCreated is the expected status of POST calls.
	HTTPStatusCreated = 201
)

// Authentication.
const (
	// DefaultCookieName is the session cookie sent by cookie-authenticated calls.
	DefaultCookieName = "APP_SID"

	// XAuthHeader carries the token for endpoints that read it from a custom header.
	XAuthHeader = "X-Auth"

	// RequestIDHeader correlates a request with client-side logs.
	RequestIDHeader = "X-Request-Id"

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "zesty-client-go"
)

// Default base URLs. INSTANCE_ZUID is replaced with the instance identifier.
const (
	DefaultInstancesAPIURL    = "https://INSTANCE_ZUID.api.zesty.io/v1"
	DefaultLegacyAPIURL       = "https://svc.zesty.io/sites-service/INSTANCE_ZUID"
	DefaultAccountsAPIURL     = "https://accounts.api.zesty.io/v1"
	DefaultMediaAPIURL        = "https://svc.zesty.io/media-manager-service"
	DefaultMediaStorageAPIURL = "https://svc.zesty.io/media-storage-service"
	DefaultAuthURL            = "https://auth.api.zesty.io"

	// InstanceZUIDPlaceholder is substituted in base URL and endpoint templates.
	InstanceZUIDPlaceholder = "INSTANCE_ZUID"
)

// Environment variables read at the CLI boundary.
const (
	EnvInstancesAPI    = "ZESTY_INSTANCE_API"
	EnvLegacyAPI       = "ZESTY_INSTANCE_LEGACY_API"
	EnvAccountsAPI     = "ZESTY_ACCOUNTS_API"
	EnvMediaAPI        = "ZESTY_MEDIA_API"
	EnvMediaStorageAPI = "ZESTY_MEDIA_STORAGE_API"
	EnvAuthAPI         = "ZESTY_AUTH_API"
	EnvToken           = "ZESTY_TOKEN"
	EnvInstanceZUID    = "ZESTY_INSTANCE_ZUID"
	EnvCookieName      = "COOKIE"
)

// Format constants.
const (
	// FormatJSON is the JSON output format.
	FormatJSON = "json"

	// FormatYAML is the YAML output format.
	FormatYAML = "yaml"

	// FormatTable is the default table output format.
	FormatTable = "table"

	// JSONIndentSize is the indent used by JSON and YAML encoders.
	JSONIndentSize = 2
)

// UI and display constants.
const (
	// NotAvailable is displayed for empty values.
	NotAvailable = "N/A"

	// MaskedSecret replaces tokens in displayed configuration.
	MaskedSecret = "***"

	// MinimumArgumentCount is the argument count of KEY VALUE commands.
	MinimumArgumentCount = 2
)
