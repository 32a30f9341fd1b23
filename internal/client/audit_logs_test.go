package client

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/zesty-client/internal/testutil"
)

func TestAuditLogsClient(t *testing.T) {
	t.Parallel()

	t.Run("list get search", func(t *testing.T) {
		t.Parallel()

		client, platform := newPlatformClient(t)
		audits := client.Instance().AuditLogs()

		list, err := audits.GetAuditLogs(t.Context())
		require.NoError(t, err)
		assert.Len(t, list.Data, 2)

		audit, err := audits.GetAuditLog(t.Context(), testutil.FirstAuditZUID)
		require.NoError(t, err)
		assert.Equal(t, testutil.ArticleItemZUID, audit.Data.AffectedZUID)
		assert.Equal(t, testutil.InstancePrefix+"/env/audits/"+testutil.FirstAuditZUID, platform.LastRequest().Path)

		found, err := audits.SearchAuditLogs(t.Context(), url.Values{"affectedZUID": []string{testutil.ArticlesModelZUID}})
		require.NoError(t, err)
		require.Len(t, found.Data, 1)
		assert.Equal(t, testutil.SecondAuditZUID, found.Data[0].ZUID)
		assert.Equal(t, testutil.ArticlesModelZUID, platform.LastRequest().Query.Get("affectedZUID"))
	})

	t.Run("unknown audit", func(t *testing.T) {
		t.Parallel()

		client, _ := newPlatformClient(t)

		result, err := client.Instance().AuditLogs().GetAuditLog(t.Context(), "15-missing")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, result.StatusCode)
	})

	t.Run("missing arguments", func(t *testing.T) {
		t.Parallel()

		client, transport := newRecordingClient(t, http.StatusOK, nil)
		audits := client.Instance().AuditLogs()

		_, err := audits.GetAuditLog(t.Context(), "")
		requireArgumentError(t, err, "AuditLogs.GetAuditLog", "auditZUID")

		_, err = audits.SearchAuditLogs(t.Context(), nil)
		requireArgumentError(t, err, "AuditLogs.SearchAuditLogs", "params")

		assert.Equal(t, 0, transport.Calls())
	})
}
