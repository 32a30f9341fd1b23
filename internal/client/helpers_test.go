package client

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/zesty-client/internal/testutil"
	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

// newPlatformClient returns a client wired to a fresh fake platform.
func newPlatformClient(t *testing.T) (*Client, *testutil.Platform) {
	t.Helper()

	platform := testutil.NewPlatform(t)

	client, err := New(platform.Config())
	require.NoError(t, err)

	return client, platform
}

// newRecordingClient returns a client whose transport answers every call with
// status and body and records what was sent.
func newRecordingClient(t *testing.T, status int, body interface{}) (*Client, *testutil.RecordingTransport) {
	t.Helper()

	transport := testutil.NewRecordingTransport(status, body)

	client, err := NewWithTransport(&zesty.Config{
		InstanceZUID: testutil.TestInstanceZUID,
		Token:        testutil.TestToken,
	}, transport)
	require.NoError(t, err)

	return client, transport
}

// requireArgumentError asserts err is an argument error naming op and param.
func requireArgumentError(t *testing.T, err error, op, param string) {
	t.Helper()

	require.Error(t, err)

	argErr, ok := err.(*zesty.ArgumentError) //nolint:errorlint // argument errors are returned unwrapped
	require.True(t, ok, "expected *zesty.ArgumentError, got %T: %v", err, err)
	require.Equal(t, op, argErr.Op)
	require.Equal(t, param, argErr.Param)
}
