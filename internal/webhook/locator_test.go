package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLocator(t *testing.T) {
	const base = "https://stoat.chat/api/webhooks"

	tests := []struct {
		name     string
		args     []string
		expected string
		wantErr  error
	}{
		{
			name:     "full URL returned unchanged",
			args:     []string{"https://stoat.chat/api/webhooks/abc/secret"},
			expected: "https://stoat.chat/api/webhooks/abc/secret",
		},
		{
			name:     "trailing slashes stripped",
			args:     []string{"https://stoat.chat/api/webhooks/abc/secret///"},
			expected: "https://stoat.chat/api/webhooks/abc/secret",
		},
		{
			name:     "plain http URL accepted",
			args:     []string{"http://localhost:8080/webhooks/abc/secret"},
			expected: "http://localhost:8080/webhooks/abc/secret",
		},
		{
			name:    "single argument that is not a URL",
			args:    []string{"abc123"},
			wantErr: ErrNotAURL,
		},
		{
			name:     "id and token joined onto base",
			args:     []string{"01ABCDEF", "s3cret"},
			expected: "https://stoat.chat/api/webhooks/01ABCDEF/s3cret",
		},
		{
			name:    "no arguments",
			args:    []string{},
			wantErr: ErrBadArgCount,
		},
		{
			name:    "too many arguments",
			args:    []string{"a", "b", "c"},
			wantErr: ErrBadArgCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveLocator(tt.args, base)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveLocator_BaseTrailingSlash(t *testing.T) {
	got, err := ResolveLocator([]string{"id", "token"}, "https://example.com/api/webhooks/")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api/webhooks/id/token", got)
}
