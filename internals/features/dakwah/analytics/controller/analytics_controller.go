package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"dakwahku_backend/internals/constants"
	actModel "dakwahku_backend/internals/features/dakwah/activities/model"
	analyticsDTO "dakwahku_backend/internals/features/dakwah/analytics/dto"
	analyticsService "dakwahku_backend/internals/features/dakwah/analytics/service"
	attendanceModel "dakwahku_backend/internals/features/dakwah/attendance/model"
	benModel "dakwahku_backend/internals/features/dakwah/beneficiaries/model"
	preacherModel "dakwahku_backend/internals/features/users/preacher/model"
	helper "dakwahku_backend/internals/helpers"
)

// Mad'u dianggap tidak aktif kalau 30 hari tidak tercatat hadir
const inactiveThreshold = 30 * 24 * time.Hour

type AnalyticsController struct {
	DB *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

// GET /api/u/analytics/dashboard
// Total + aktif bulan ini + pertumbuhan bulan-ke-bulan.
func (ctrl *AnalyticsController) GetDashboardStats(c *fiber.Ctx) error {
	var stats analyticsDTO.DashboardStatsResponse

	if err := ctrl.DB.Model(&benModel.BeneficiaryModel{}).Count(&stats.TotalBeneficiaries).Error; err != nil {
		log.Println("[ERROR] Gagal menghitung mad'u:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}
	if err := ctrl.DB.Model(&preacherModel.PreacherModel{}).
		Where("role <> ?", constants.RolePending).
		Count(&stats.TotalPreachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}
	if err := ctrl.DB.Model(&actModel.ActivityModel{}).Count(&stats.TotalActivities).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevStart := monthStart.AddDate(0, -1, 0)

	// Aktif bulan ini = mad'u unik yang tercatat hadir sejak awal bulan
	if err := ctrl.DB.Model(&attendanceModel.AttendanceRecordModel{}).
		Where("present = TRUE AND logged_at >= ?", monthStart).
		Distinct("beneficiary_id").
		Count(&stats.ActiveThisMonth).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}

	var curNew, prevNew int64
	if err := ctrl.DB.Model(&benModel.BeneficiaryModel{}).
		Where("created_at >= ?", monthStart).
		Count(&curNew).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}
	if err := ctrl.DB.Model(&benModel.BeneficiaryModel{}).
		Where("created_at >= ? AND created_at < ?", prevStart, monthStart).
		Count(&prevNew).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}
	stats.GrowthPercent = analyticsService.GrowthPercent(prevNew, curNew)

	return helper.JsonOK(c, "ok", stats)
}

// GET /api/u/analytics/beneficiaries
// Distribusi tahap (selalu 6 tahap), distribusi batch, tren 6 bulan,
// jumlah mad'u tidak aktif 30 hari.
func (ctrl *AnalyticsController) GetBeneficiaryAnalytics(c *fiber.Ctx) error {
	var beneficiaries []benModel.BeneficiaryModel
	if err := ctrl.DB.Find(&beneficiaries).Error; err != nil {
		log.Println("[ERROR] Gagal mengambil data mad'u:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data analitik")
	}

	batchDist := map[string]int64{}
	createdAts := make([]time.Time, 0, len(beneficiaries))
	for _, b := range beneficiaries {
		batchDist[b.Batch]++
		createdAts = append(createdAts, b.CreatedAt)
	}

	// Kehadiran terakhir per mad'u, satu query MAX + GROUP BY
	type lastRow struct {
		BeneficiaryID uuid.UUID
		LastAt        time.Time
	}
	var lastRows []lastRow
	if err := ctrl.DB.Model(&attendanceModel.AttendanceRecordModel{}).
		Select("beneficiary_id, MAX(logged_at) AS last_at").
		Where("present = TRUE").
		Group("beneficiary_id").
		Scan(&lastRows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data analitik")
	}
	lastAttendance := make(map[uuid.UUID]time.Time, len(lastRows))
	for _, r := range lastRows {
		lastAttendance[r.BeneficiaryID] = r.LastAt
	}

	now := time.Now()
	resp := analyticsDTO.BeneficiaryAnalyticsResponse{
		StageDistribution: analyticsService.StageDistribution(beneficiaries),
		BatchDistribution: batchDist,
		MonthlyGrowth:     analyticsService.MonthlyBuckets(createdAts, 6, now),
		InactiveCount:     int64(len(analyticsService.SelectInactive(beneficiaries, lastAttendance, now, inactiveThreshold))),
	}
	return helper.JsonOK(c, "ok", resp)
}

// GET /api/u/analytics/activities
// Jumlah kegiatan per jenis + tren kehadiran 6 bulan.
func (ctrl *AnalyticsController) GetActivityAnalytics(c *fiber.Ctx) error {
	type kindRow struct {
		Kind  string
		Total int64
	}
	var kindRows []kindRow
	if err := ctrl.DB.Model(&actModel.ActivityModel{}).
		Select("activity_kind AS kind, COUNT(*) AS total").
		Group("activity_kind").
		Scan(&kindRows).Error; err != nil {
		log.Println("[ERROR] Gagal menghitung kegiatan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data analitik")
	}
	kindCounts := map[string]int64{}
	for _, kind := range constants.ActivityKinds {
		kindCounts[kind] = 0
	}
	for _, r := range kindRows {
		kindCounts[r.Kind] = r.Total
	}

	sixMonthsAgo := time.Now().AddDate(0, -6, 0)
	var loggedAts []time.Time
	if err := ctrl.DB.Model(&attendanceModel.AttendanceRecordModel{}).
		Where("present = TRUE AND logged_at >= ?", sixMonthsAgo).
		Pluck("logged_at", &loggedAts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data analitik")
	}

	resp := analyticsDTO.ActivityAnalyticsResponse{
		KindCounts:        kindCounts,
		MonthlyAttendance: analyticsService.MonthlyBuckets(loggedAts, 6, time.Now()),
	}
	return helper.JsonOK(c, "ok", resp)
}

// GET /api/a/analytics/leaderboard
// Ranking da'i: jumlah mad'u binaan + absensi yang dia catat.
func (ctrl *AnalyticsController) GetPreacherLeaderboard(c *fiber.Ctx) error {
	// is_active di luar filter role: admin nonaktif juga tidak ikut
	var preachers []preacherModel.PreacherModel
	if err := ctrl.DB.
		Where("role IN ? AND is_active = TRUE", constants.ApprovedRoles).
		Find(&preachers).Error; err != nil {
		log.Println("[ERROR] Gagal mengambil daftar da'i:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil leaderboard")
	}

	type countRow struct {
		ID    uuid.UUID
		Total int64
	}
	benCounts := map[uuid.UUID]int64{}
	var benRows []countRow
	if err := ctrl.DB.Model(&benModel.BeneficiaryModel{}).
		Select("da_i_id AS id, COUNT(*) AS total").
		Group("da_i_id").
		Scan(&benRows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil leaderboard")
	}
	for _, r := range benRows {
		benCounts[r.ID] = r.Total
	}

	attCounts := map[uuid.UUID]int64{}
	var attRows []countRow
	if err := ctrl.DB.Model(&attendanceModel.AttendanceRecordModel{}).
		Select("logged_by_id AS id, COUNT(*) AS total").
		Group("logged_by_id").
		Scan(&attRows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil leaderboard")
	}
	for _, r := range attRows {
		attCounts[r.ID] = r.Total
	}

	rows := make([]analyticsService.LeaderboardRow, 0, len(preachers))
	for _, p := range preachers {
		if !analyticsService.EligibleForLeaderboard(p.Role, p.IsActive) {
			continue
		}
		rows = append(rows, analyticsService.LeaderboardRow{
			DaiID:            p.ID,
			DaiName:          p.Name,
			BeneficiaryCount: benCounts[p.ID],
			AttendanceLogged: attCounts[p.ID],
		})
	}

	return helper.JsonOK(c, "ok", analyticsService.RankLeaderboard(rows))
}
