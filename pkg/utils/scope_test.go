package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAdmin(t *testing.T) {
	tests := []struct {
		name  string
		scope []string
		want  bool
	}{
		{"admin only", []string{ScopeAdmin}, true},
		{"user and admin", []string{ScopeUser, ScopeAdmin}, true},
		{"user only", []string{ScopeUser}, false},
		{"empty", nil, false},
		{"case sensitive", []string{"Admin"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAdmin(tt.scope))
		})
	}
}
