// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dakwahku_backend/internals/constants"
	authMiddleware "dakwahku_backend/internals/middlewares/auth"
	routeDetails "dakwahku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE =====================
	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// ===================== AUTH (PUBLIC) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PRIVATE (APPROVED) =====================
	// Semua role yang sudah di-approve (admin + dai).
	// Role "pending" mental di sini → fail closed.
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorApproved("dakwah"),
			constants.ApprovedRoles,
		),
	)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("manajemen"),
			constants.AdminOnly,
		),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Preacher routes...")
	routeDetails.PreacherUserRoutes(private, db)
	routeDetails.PreacherAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Dakwah routes...")
	routeDetails.DakwahUserRoutes(private, db)
	routeDetails.DakwahAdminRoutes(admin, db)
}
