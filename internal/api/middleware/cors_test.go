package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginAllowed(t *testing.T) {
	t.Parallel()

	patterns := []string{
		"https://taskflow.app",
		"http://localhost:3000",
		"https://*.taskflow.app",
	}

	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{name: "exact match", origin: "https://taskflow.app", want: true},
		{name: "exact match with port", origin: "http://localhost:3000", want: true},
		{name: "wildcard subdomain", origin: "https://admin.taskflow.app", want: true},
		{name: "wildcard deeper subdomain", origin: "https://eu.admin.taskflow.app", want: true},
		{name: "wildcard wrong scheme", origin: "http://admin.taskflow.app", want: false},
		{name: "unrelated host", origin: "https://evil.example.com", want: false},
		{name: "suffix lookalike", origin: "https://eviltaskflow.app", want: false},
		{name: "empty origin", origin: "", want: false},
		{name: "garbage origin", origin: "not a url", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, OriginAllowed(patterns, tt.origin))
		})
	}
}

func TestOriginAllowedSchemelessWildcard(t *testing.T) {
	t.Parallel()

	patterns := []string{"*.taskflow.app"}
	assert.True(t, OriginAllowed(patterns, "http://shop.taskflow.app"))
	assert.True(t, OriginAllowed(patterns, "https://shop.taskflow.app"))
	assert.False(t, OriginAllowed(patterns, "https://taskflow.app.evil.com"))
}
