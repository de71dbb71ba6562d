//go:build unit

package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain address", input: "guest@example.com", want: "guest@example.com"},
		{name: "plus tag", input: "guest+tag@example.com", want: "guest+tag@example.com"},
		{name: "surrounding whitespace trimmed", input: "  guest@example.com  ", want: "guest@example.com"},
		{name: "missing at sign", input: "guest.example.com", wantErr: true},
		{name: "missing tld", input: "guest@example", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := NewEmail(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEmail)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, email.Value())
		})
	}
}

func TestNewPassword(t *testing.T) {
	_, err := NewPassword("short")
	assert.ErrorIs(t, err, ErrPasswordTooWeak)

	pw, err := NewPassword("longenough")
	require.NoError(t, err)
	assert.Equal(t, "longenough", pw.Value())
}

func TestNewRole(t *testing.T) {
	role, err := NewRole("admin")
	require.NoError(t, err)
	assert.True(t, role.IsAdmin())

	role, err = NewRole("user")
	require.NoError(t, err)
	assert.False(t, role.IsAdmin())

	_, err = NewRole("superuser")
	assert.ErrorIs(t, err, ErrInvalidRole)
}
