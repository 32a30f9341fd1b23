package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Hello World", want: "hello-world"},
		{name: "trimmed", in: "  About Us  ", want: "about-us"},
		{name: "ampersand", in: "Rock & Roll", want: "rock-and-roll"},
		{name: "punctuation not collapsed", in: "What's new?!", want: "what-s-new--"},
		{name: "already formatted", in: "midgar-times-2", want: "midgar-times-2"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := FormatPath(testCase.in)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestFormatPath_Empty(t *testing.T) {
	t.Parallel()

	_, err := FormatPath("")
	requireArgumentError(t, err, "Instance.FormatPath", "path")
}

func TestNewInstanceClient_RequiresInstanceZUID(t *testing.T) {
	t.Parallel()

	_, err := NewInstanceClient("", nil, nil)
	requireArgumentError(t, err, "Instance.New", "instanceZUID")
}

func TestInstanceClient_FormatPath(t *testing.T) {
	t.Parallel()

	client, _ := newRecordingClient(t, 200, nil)

	got, err := client.Instance().FormatPath("Shinra & Co")
	require.NoError(t, err)
	assert.Equal(t, "shinra-and-co", got)
}
