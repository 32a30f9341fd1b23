package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []interface{}
		want map[string]interface{}
	}{
		{name: "empty", in: nil, want: map[string]interface{}{}},
		{name: "pairs", in: []interface{}{"method", "GET", "attempt", 1}, want: map[string]interface{}{"method": "GET", "attempt": 1}},
		{name: "dangling key", in: []interface{}{"url"}, want: map[string]interface{}{"url": nil}},
		{name: "non-string key", in: []interface{}{42, "x"}, want: map[string]interface{}{"42": "x"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.want, toFields(testCase.in))
		})
	}
}

func TestEscapeQuotes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `say \"hi\"`, escapeQuotes(`say "hi"`))
	assert.Equal(t, `a\\b`, escapeQuotes(`a\b`))
}
