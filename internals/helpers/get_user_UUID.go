package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserUUID ambil user_id yang diset AuthMiddleware.
// Return uuid.Nil kalau tidak ada (route tanpa auth).
func GetUserUUID(c *fiber.Ctx) uuid.UUID {
	if userIDRaw := c.Locals("user_id"); userIDRaw != nil {
		if userIDStr, ok := userIDRaw.(string); ok {
			if parsed, err := uuid.Parse(userIDStr); err == nil {
				return parsed
			}
		}
	}
	return uuid.Nil
}

// GetUserRole ambil role dari Locals (diset AuthMiddleware dari klaim JWT)
func GetUserRole(c *fiber.Ctx) string {
	if v, ok := c.Locals("userRole").(string); ok {
		return v
	}
	return ""
}

// GetUserName ambil display name dari Locals
func GetUserName(c *fiber.Ctx) string {
	if v, ok := c.Locals("user_name").(string); ok {
		return v
	}
	return ""
}

func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}
