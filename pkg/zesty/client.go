package zesty

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
)

// ModelsClient manages content models.
type ModelsClient interface {
	GetModels(ctx context.Context) (*Result[[]Model], error)
	GetModel(ctx context.Context, modelZUID string) (*Result[Model], error)
	CreateModel(ctx context.Context, payload any) (*Result[Model], error)
	UpdateModel(ctx context.Context, modelZUID string, payload any) (*Result[Model], error)
	DeleteModel(ctx context.Context, modelZUID string) (*Result[json.RawMessage], error)
}

// FieldsClient manages the fields of a content model.
type FieldsClient interface {
	GetFields(ctx context.Context, modelZUID string) (*Result[[]Field], error)
	GetField(ctx context.Context, modelZUID, fieldZUID string) (*Result[Field], error)
	CreateField(ctx context.Context, modelZUID string, payload any) (*Result[Field], error)
	UpdateField(ctx context.Context, modelZUID, fieldZUID string, payload any) (*Result[Field], error)
	DeleteField(ctx context.Context, modelZUID, fieldZUID string) (*Result[json.RawMessage], error)
}

// ItemsClient manages content items, their versions and publishings.
type ItemsClient interface {
	GetItems(ctx context.Context, modelZUID string) (*Result[[]Item], error)
	GetItem(ctx context.Context, modelZUID, itemZUID string) (*Result[Item], error)
	CreateItem(ctx context.Context, modelZUID string, payload any) (*Result[Item], error)
	UpdateItem(ctx context.Context, modelZUID, itemZUID string, payload any) (*Result[Item], error)
	DeleteItem(ctx context.Context, modelZUID, itemZUID string) (*Result[json.RawMessage], error)
	GetItemVersions(ctx context.Context, modelZUID, itemZUID string) (*Result[[]Item], error)
	GetItemVersion(ctx context.Context, modelZUID, itemZUID string, version int) (*Result[Item], error)
	GetItemPublishings(ctx context.Context, modelZUID, itemZUID string) (*Result[[]Publishing], error)
	PublishItem(ctx context.Context, modelZUID, itemZUID string, request *PublishRequest) (*Result[Publishing], error)
	UnpublishItem(ctx context.Context, modelZUID, itemZUID, publishingZUID string) (*Result[json.RawMessage], error)
	FindItem(ctx context.Context, query string) (*Result[[]Item], error)
	PublishItemImmediately(ctx context.Context, itemZUID string, version int) (*Result[json.RawMessage], error)
	UnpublishItemImmediately(ctx context.Context, itemZUID, publishingZUID string) (*Result[json.RawMessage], error)
}

// SettingsClient manages instance settings.
type SettingsClient interface {
	GetSettings(ctx context.Context) (*Result[[]Setting], error)
	GetSetting(ctx context.Context, settingZUID string) (*Result[Setting], error)
	GetSettingsByCategory(ctx context.Context, category string) (*Result[[]Setting], error)
	CreateSetting(ctx context.Context, payload any) (*Result[Setting], error)
	UpdateSetting(ctx context.Context, settingZUID string, payload any) (*Result[Setting], error)
	DeleteSetting(ctx context.Context, settingZUID string) (*Result[json.RawMessage], error)
}

// AuditLogsClient reads the instance audit trail.
type AuditLogsClient interface {
	GetAuditLogs(ctx context.Context) (*Result[[]AuditLog], error)
	GetAuditLog(ctx context.Context, auditZUID string) (*Result[AuditLog], error)
	SearchAuditLogs(ctx context.Context, params url.Values) (*Result[[]AuditLog], error)
}

// InstanceClient groups the instance-scoped operation sets. Each set is an
// independent component sharing one dispatcher.
type InstanceClient interface {
	Models() ModelsClient
	Fields() FieldsClient
	Items() ItemsClient
	Settings() SettingsClient
	AuditLogs() AuditLogsClient

	InstanceZUID() string
	FormatPath(path string) (string, error)
}

// AccountClient reads account-level data about the instance.
type AccountClient interface {
	GetInstance(ctx context.Context) (*Result[Instance], error)
	GetInstanceUsers(ctx context.Context) (*Result[[]InstanceUser], error)
	GetInstanceDomains(ctx context.Context) (*Result[[]Domain], error)
}

// MediaClient manages media bins, groups and files.
type MediaClient interface {
	GetBins(ctx context.Context) (*Result[[]Bin], error)
	GetBin(ctx context.Context, binZUID string) (*Result[[]Bin], error)
	UpdateBin(ctx context.Context, binZUID string, fields map[string]string) (*Result[[]Bin], error)

	GetGroups(ctx context.Context, binZUID string) (*Result[[]Group], error)
	GetGroup(ctx context.Context, groupZUID string) (*Result[[]Group], error)
	CreateGroup(ctx context.Context, binZUID, parentZUID, name string) (*Result[[]Group], error)
	UpdateGroup(ctx context.Context, groupZUID string, fields map[string]string) (*Result[[]Group], error)
	DeleteGroup(ctx context.Context, groupZUID string) (*Result[json.RawMessage], error)

	GetFiles(ctx context.Context, binZUID string) (*Result[[]File], error)
	GetFile(ctx context.Context, fileZUID string) (*Result[[]File], error)
	CreateFile(ctx context.Context, binZUID string, stream io.Reader, opts FileOptions) (*Result[[]File], error)
	UpdateFile(ctx context.Context, fileZUID string, fields map[string]string) (*Result[[]File], error)
	DeleteFile(ctx context.Context, fileZUID string) (*Result[json.RawMessage], error)
}

// AuthClient verifies session tokens.
type AuthClient interface {
	VerifyToken(ctx context.Context, token string) (*Result[Session], error)
}

// ActionsClient provides multi-step helpers built on the resource clients.
type ActionsClient interface {
	FindModelByName(ctx context.Context, name string) (*Model, error)
	PublishLatestVersion(ctx context.Context, modelZUID, itemZUID string) (*Result[Publishing], error)
	UploadFile(ctx context.Context, binZUID, filePath, title string) (*Result[[]File], error)
}

// Client is the full SDK surface.
type Client interface {
	Account() AccountClient
	Instance() InstanceClient
	Media() MediaClient
	Auth() AuthClient
	Actions() ActionsClient

	InstanceZUID() string
}
