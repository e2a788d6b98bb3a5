package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveIconKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"github", "github"},
		{"linkedin", "linkedin"},
		{"email", "email"},
		{"mastodon", "link"},
		{"GitHub", "link"},
		{"", "link"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveIconKey(tt.key), "key %q", tt.key)
	}
}
