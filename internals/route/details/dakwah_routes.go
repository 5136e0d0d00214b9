package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityController "dakwahku_backend/internals/features/dakwah/activities/controller"
	analyticsController "dakwahku_backend/internals/features/dakwah/analytics/controller"
	attendanceController "dakwahku_backend/internals/features/dakwah/attendance/controller"
	beneficiaryController "dakwahku_backend/internals/features/dakwah/beneficiaries/controller"
)

// DakwahUserRoutes: fitur harian da'i (dan admin) — mad'u, kegiatan,
// absensi, analitik.
func DakwahUserRoutes(r fiber.Router, db *gorm.DB) {
	benCtrl := beneficiaryController.NewBeneficiaryController(db)
	actCtrl := activityController.NewActivityController(db)
	attCtrl := attendanceController.NewAttendanceController(db)
	anaCtrl := analyticsController.NewAnalyticsController(db)

	// Mad'u
	r.Post("/beneficiaries", benCtrl.Create)
	r.Get("/beneficiaries", benCtrl.GetAll)
	r.Get("/beneficiaries/:id", benCtrl.GetByID)
	r.Put("/beneficiaries/:id", benCtrl.Update)

	// Kegiatan (authz per jenis dicek di controller)
	r.Post("/activities", actCtrl.Create)
	r.Get("/activities", actCtrl.GetAll)
	r.Get("/activities/my-maqari", actCtrl.GetMyMaqari)
	r.Get("/activities/:id", actCtrl.GetByID)
	r.Delete("/activities/:id", actCtrl.Delete)

	// Absensi
	r.Get("/attendance/:activity_id/sheet", attCtrl.GetSheet)
	r.Get("/attendance/:activity_id/attendees", attCtrl.GetAttendees)
	r.Post("/attendance/:activity_id", attCtrl.Save)

	// Analitik
	r.Get("/analytics/dashboard", anaCtrl.GetDashboardStats)
	r.Get("/analytics/beneficiaries", anaCtrl.GetBeneficiaryAnalytics)
	r.Get("/analytics/activities", anaCtrl.GetActivityAnalytics)
}

// DakwahAdminRoutes: operasi destruktif / lintas da'i (admin only)
func DakwahAdminRoutes(r fiber.Router, db *gorm.DB) {
	benCtrl := beneficiaryController.NewBeneficiaryController(db)
	attCtrl := attendanceController.NewAttendanceController(db)
	anaCtrl := analyticsController.NewAnalyticsController(db)

	r.Post("/beneficiaries/:id/transfer", benCtrl.Transfer)
	r.Delete("/beneficiaries/:id", benCtrl.Delete)

	r.Delete("/attendance/records/:id", attCtrl.DeleteRecord)

	r.Get("/analytics/leaderboard", anaCtrl.GetPreacherLeaderboard)
}
