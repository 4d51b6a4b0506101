package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid mixed case with digit", "Abcdefg1", true},
		{"valid longer", "SuperSecret99", true},
		{"too short", "Abc1", false},
		{"no uppercase", "abcdefg1", false},
		{"no lowercase", "ABCDEFG1", false},
		{"no digit", "Abcdefgh", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPassword(tt.password))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"valid", "farmer@example.com", true},
		{"valid with subdomain", "a.b@mail.example.co", true},
		{"missing at", "farmer.example.com", false},
		{"missing tld", "farmer@example", false},
		{"single letter tld", "farmer@example.c", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("0712345678"))
	assert.False(t, IsValidPhone("071234567"))   // 9 digits
	assert.False(t, IsValidPhone("07123456789")) // 11 digits
	assert.False(t, IsValidPhone("07123456ab"))
	assert.False(t, IsValidPhone(""))
}

func TestIsValidRole(t *testing.T) {
	for _, role := range []string{RoleUser, RoleFarmer, RoleBroker, RoleAdmin} {
		assert.True(t, IsValidRole(role), role)
	}
	assert.False(t, IsValidRole("buyer"))
	assert.False(t, IsValidRole(""))
}

func TestUserSoftDeleteRestore(t *testing.T) {
	user := &User{IsActive: true}

	user.SoftDelete()
	assert.True(t, user.IsDeleted)
	assert.False(t, user.IsActive)
	assert.NotNil(t, user.DeletedAt)

	user.Restore()
	assert.False(t, user.IsDeleted)
	assert.True(t, user.IsActive)
	assert.Nil(t, user.DeletedAt)
}
