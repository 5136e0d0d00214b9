package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	preacherController "dakwahku_backend/internals/features/users/preacher/controller"
)

// PreacherUserRoutes: daftar da'i untuk dropdown filter/transfer
func PreacherUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := preacherController.NewPreacherController(db)

	r.Get("/preachers/dais", ctrl.GetDais)
}

// PreacherAdminRoutes: manajemen role & approval (admin only)
func PreacherAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := preacherController.NewPreacherController(db)

	r.Get("/preachers", ctrl.GetPreachers)
	r.Get("/preachers/pending", ctrl.GetPendingPreachers)
	r.Patch("/preachers/:id/role", ctrl.UpdateRole)
	r.Delete("/preachers/:id/reject", ctrl.RejectPending)
}
