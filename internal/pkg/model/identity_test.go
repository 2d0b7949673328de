package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityFallbackUsername(t *testing.T) {
	tests := []struct {
		name     string
		identity Identity
		expected string
	}{
		{
			name:     "prefers display name",
			identity: Identity{DisplayName: "Sharpshooter", Email: "a@b.com"},
			expected: "Sharpshooter",
		},
		{
			name:     "falls back to email local part",
			identity: Identity{Email: "player.one@example.com"},
			expected: "player.one",
		},
		{
			name:     "falls back to User when nothing usable",
			identity: Identity{},
			expected: "User",
		},
		{
			name:     "ignores malformed email",
			identity: Identity{Email: "@example.com"},
			expected: "User",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.identity.FallbackUsername())
		})
	}
}
