package client

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/zesty-client/internal/testutil"
)

func TestAccountClient(t *testing.T) {
	t.Parallel()

	t.Run("instance", func(t *testing.T) {
		t.Parallel()

		client, platform := newPlatformClient(t)

		instance, err := client.Account().GetInstance(t.Context())
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, instance.StatusCode)
		assert.Equal(t, "Midgar Times", instance.Data.Name)
		assert.Equal(t, testutil.AccountsPrefix+"/instances/"+testutil.TestInstanceZUID, platform.LastRequest().Path)
	})

	t.Run("users", func(t *testing.T) {
		t.Parallel()

		client, platform := newPlatformClient(t)

		users, err := client.Account().GetInstanceUsers(t.Context())
		require.NoError(t, err)
		require.Len(t, users.Data, 2)
		assert.Equal(t, "Owner", users.Data[0].Role.Name)
		assert.Equal(t, testutil.AccountsPrefix+"/instances/"+testutil.TestInstanceZUID+"/users/roles", platform.LastRequest().Path)
	})

	t.Run("domains", func(t *testing.T) {
		t.Parallel()

		client, _ := newPlatformClient(t)

		domains, err := client.Account().GetInstanceDomains(t.Context())
		require.NoError(t, err)
		require.Len(t, domains.Data, 1)
		assert.Equal(t, "midgar.example.com", domains.Data[0].Domain)
	})

	t.Run("unknown instance", func(t *testing.T) {
		t.Parallel()

		platform := testutil.NewPlatform(t)
		config := platform.Config()
		config.InstanceZUID = "8-unknown"

		client, err := New(config)
		require.NoError(t, err)

		instance, err := client.Account().GetInstance(t.Context())
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, instance.StatusCode)
		assert.Equal(t, "Instance not found", instance.Message)
	})

	t.Run("missing instance", func(t *testing.T) {
		t.Parallel()

		account := NewAccountClient("", nil)

		_, err := account.GetInstance(t.Context())
		requireArgumentError(t, err, "Account.GetInstance", "instanceZUID")

		_, err = account.GetInstanceUsers(t.Context())
		requireArgumentError(t, err, "Account.GetInstanceUsers", "instanceZUID")

		_, err = account.GetInstanceDomains(t.Context())
		requireArgumentError(t, err, "Account.GetInstanceDomains", "instanceZUID")
	})
}
