package client

import (
	"context"
	"net/url"

	"github.com/fivetwenty-io/zesty-client/internal/service"
	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

const (
	auditLogsPath = "/env/audits"
	auditLogPath  = "/env/audits/AUDIT_ZUID"
)

// AuditLogsClient implements zesty.AuditLogsClient.
type AuditLogsClient struct {
	service *service.Service
}

// NewAuditLogsClient creates a new audit logs client.
func NewAuditLogsClient(svc *service.Service) *AuditLogsClient {
	return &AuditLogsClient{
		service: svc,
	}
}

// GetAuditLogs implements zesty.AuditLogsClient.GetAuditLogs.
func (c *AuditLogsClient) GetAuditLogs(ctx context.Context) (*zesty.Result[[]zesty.AuditLog], error) {
	return decode[[]zesty.AuditLog](c.service.Get(ctx, auditLogsPath, nil))
}

// GetAuditLog implements zesty.AuditLogsClient.GetAuditLog.
func (c *AuditLogsClient) GetAuditLog(ctx context.Context, auditZUID string) (*zesty.Result[zesty.AuditLog], error) {
	if auditZUID == "" {
		return nil, zesty.NewMissingArgument("AuditLogs.GetAuditLog", "auditZUID")
	}

	path := c.service.Interpolate(auditLogPath, map[string]string{"AUDIT_ZUID": auditZUID})

	return decode[zesty.AuditLog](c.service.Get(ctx, path, nil))
}

// SearchAuditLogs implements zesty.AuditLogsClient.SearchAuditLogs.
func (c *AuditLogsClient) SearchAuditLogs(ctx context.Context, params url.Values) (*zesty.Result[[]zesty.AuditLog], error) {
	if len(params) == 0 {
		return nil, zesty.NewMissingArgument("AuditLogs.SearchAuditLogs", "params")
	}

	return decode[[]zesty.AuditLog](c.service.Get(ctx, auditLogsPath, &service.Options{Query: params}))
}
