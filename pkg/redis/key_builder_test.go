package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewKeyBuilder(t *testing.T) {
	tests := []struct {
		environment string
		wantPrefix  string
	}{
		{environment: "production", wantPrefix: "prod"},
		{environment: "development", wantPrefix: "staging"},
		{environment: "staging", wantPrefix: "staging"},
		{environment: "test", wantPrefix: "staging"},
		{environment: "", wantPrefix: "prod"},
	}

	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			kb := NewKeyBuilder(tt.environment)
			assert.Equal(t, tt.wantPrefix, kb.GetPrefix())
		})
	}
}

func TestKeyBuilders(t *testing.T) {
	kb := NewKeyBuilder("production")

	assert.Equal(t, "prod:blog:42", kb.KeyBlogByID(42))
	assert.Equal(t, "prod:blogs:author:u1", kb.KeyBlogsByUser("u1"))
	assert.Equal(t, "prod:profile:user:u1", kb.KeyUserProfile("u1"))
}
