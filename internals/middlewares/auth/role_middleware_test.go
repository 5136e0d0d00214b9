package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dakwahku_backend/internals/constants"
)

// newRoleTestApp memasang role di Locals (menggantikan AuthMiddleware)
// lalu gate admin-only di belakangnya.
func newRoleTestApp(role string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("userRole", role)
		}
		return c.Next()
	})
	app.Get("/admin",
		OnlyRolesSlice(constants.RoleErrorAdmin("manajemen"), constants.AdminOnly),
		func(c *fiber.Ctx) error { return c.SendString("ok") },
	)
	return app
}

func TestOnlyRolesSlice(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{"admin lolos", constants.RoleAdmin, fiber.StatusOK},
		{"dai ditolak", constants.RoleDai, fiber.StatusForbidden},
		{"pending ditolak", constants.RolePending, fiber.StatusForbidden},
		{"tanpa role = unauthorized", "", fiber.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newRoleTestApp(tt.role)
			resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestOnlyRoles_ApprovedSlice(t *testing.T) {
	// ApprovedRoles harus meloloskan dai tapi tetap menolak pending
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userRole", constants.RoleDai)
		return c.Next()
	})
	app.Get("/u",
		OnlyRolesSlice(constants.RoleErrorApproved("dakwah"), constants.ApprovedRoles),
		func(c *fiber.Ctx) error { return c.SendString("ok") },
	)

	resp, err := app.Test(httptest.NewRequest("GET", "/u", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
