package client

import (
	"regexp"
	"strings"

	"github.com/fivetwenty-io/zesty-client/internal/service"
	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// InstanceClient implements zesty.InstanceClient. Each operation set is its
// own component; all of them share the instance dispatcher.
type InstanceClient struct {
	instanceZUID string

	models    *ModelsClient
	fields    *FieldsClient
	items     *ItemsClient
	settings  *SettingsClient
	auditLogs *AuditLogsClient
}

// NewInstanceClient creates a new instance client.
func NewInstanceClient(instanceZUID string, svc, legacy *service.Service) (*InstanceClient, error) {
	if instanceZUID == "" {
		return nil, zesty.NewMissingArgument("Instance.New", "instanceZUID")
	}

	return &InstanceClient{
		instanceZUID: instanceZUID,
		models:       NewModelsClient(svc),
		fields:       NewFieldsClient(svc),
		items:        NewItemsClient(svc, legacy),
		settings:     NewSettingsClient(svc),
		auditLogs:    NewAuditLogsClient(svc),
	}, nil
}

// Models implements zesty.InstanceClient.Models.
func (c *InstanceClient) Models() zesty.ModelsClient {
	return c.models
}

// Fields implements zesty.InstanceClient.Fields.
func (c *InstanceClient) Fields() zesty.FieldsClient {
	return c.fields
}

// Items implements zesty.InstanceClient.Items.
func (c *InstanceClient) Items() zesty.ItemsClient {
	return c.items
}

// Settings implements zesty.InstanceClient.Settings.
func (c *InstanceClient) Settings() zesty.SettingsClient {
	return c.settings
}

// AuditLogs implements zesty.InstanceClient.AuditLogs.
func (c *InstanceClient) AuditLogs() zesty.AuditLogsClient {
	return c.auditLogs
}

// InstanceZUID implements zesty.InstanceClient.InstanceZUID.
func (c *InstanceClient) InstanceZUID() string {
	return c.instanceZUID
}

// FormatPath implements zesty.InstanceClient.FormatPath.
func (c *InstanceClient) FormatPath(path string) (string, error) {
	return FormatPath(path)
}

// FormatPath turns a title into a URL path part: trimmed, lowercased, "&"
// spelled out as "and" and every other non-alphanumeric character replaced
// by "-". Runs of separators are not collapsed.
func FormatPath(path string) (string, error) {
	if path == "" {
		return "", zesty.NewMissingArgument("Instance.FormatPath", "path")
	}

	formatted := strings.ToLower(strings.TrimSpace(path))
	formatted = strings.ReplaceAll(formatted, "&", "and")

	return nonAlphanumeric.ReplaceAllString(formatted, "-"), nil
}
