package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name    string
		login   string
		wantErr bool
	}{
		{name: "valid simple login", login: "user123"},
		{name: "valid with underscore", login: "test_user"},
		{name: "minimum length", login: "abc"},
		{name: "maximum length", login: strings.Repeat("a", 32)},
		{name: "empty login", login: "", wantErr: true},
		{name: "too short", login: "ab", wantErr: true},
		{name: "too long", login: strings.Repeat("a", 33), wantErr: true},
		{name: "with dash", login: "user-name", wantErr: true},
		{name: "with space", login: "user name", wantErr: true},
		{name: "with cyrillic", login: "пользователь", wantErr: true},
		{name: "with at sign", login: "user@host", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogin(tt.login)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid password", password: "password123"},
		{name: "minimum length", password: strings.Repeat("p", 8)},
		{name: "maximum length", password: strings.Repeat("p", 72)},
		{name: "empty password", password: "", wantErr: true},
		{name: "too short", password: "short", wantErr: true},
		{name: "exceeds bcrypt limit", password: strings.Repeat("p", 73), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
