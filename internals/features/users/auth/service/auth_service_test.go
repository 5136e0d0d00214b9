package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dakwahku_backend/internals/constants"
)

func TestResolveInitialRole(t *testing.T) {
	// sign-in pertama yang email-nya cocok dengan INITIAL_ADMIN_EMAIL
	// langsung jadi admin (bootstrap), sisanya pending
	assert.Equal(t, constants.RoleAdmin,
		ResolveInitialRole("admin@dakwahku.org", "admin@dakwahku.org"))

	// case-insensitive
	assert.Equal(t, constants.RoleAdmin,
		ResolveInitialRole("Admin@Dakwahku.org", "admin@dakwahku.org"))

	assert.Equal(t, constants.RolePending,
		ResolveInitialRole("dai@dakwahku.org", "admin@dakwahku.org"))

	// env tidak di-set → tidak ada yang otomatis jadi admin
	assert.Equal(t, constants.RolePending,
		ResolveInitialRole("admin@dakwahku.org", ""))
}

func TestComputeRefreshHash(t *testing.T) {
	h1 := computeRefreshHash("token-a", "secret")
	h2 := computeRefreshHash("token-a", "secret")
	h3 := computeRefreshHash("token-b", "secret")
	h4 := computeRefreshHash("token-a", "secret-lain")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.NotEqual(t, h1, h4)
	assert.Len(t, h1, 32) // HMAC-SHA256
}
