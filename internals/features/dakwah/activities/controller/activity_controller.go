package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"dakwahku_backend/internals/constants"
	actDTO "dakwahku_backend/internals/features/dakwah/activities/dto"
	actModel "dakwahku_backend/internals/features/dakwah/activities/model"
	actService "dakwahku_backend/internals/features/dakwah/activities/service"
	attendanceModel "dakwahku_backend/internals/features/dakwah/attendance/model"
	helper "dakwahku_backend/internals/helpers"
)

var validate = validator.New()

type ActivityController struct {
	DB *gorm.DB
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{DB: db}
}

// attendeeCounts: satu query GROUP BY untuk semua kegiatan sekaligus,
// bukan COUNT per baris.
func (ctrl *ActivityController) attendeeCounts(activityIDs []uuid.UUID) map[uuid.UUID]int64 {
	out := map[uuid.UUID]int64{}
	if len(activityIDs) == 0 {
		return out
	}
	type row struct {
		ActivityID uuid.UUID
		Total      int64
	}
	var rows []row
	if err := ctrl.DB.Model(&attendanceModel.AttendanceRecordModel{}).
		Select("activity_id, COUNT(*) AS total").
		Where("activity_id IN ? AND present = TRUE", activityIDs).
		Group("activity_id").
		Scan(&rows).Error; err != nil {
		log.Println("[WARN] Gagal menghitung kehadiran:", err)
		return out
	}
	for _, r := range rows {
		out[r.ActivityID] = r.Total
	}
	return out
}

func (ctrl *ActivityController) toResponses(list []actModel.ActivityModel) []actDTO.ActivityResponse {
	ids := make([]uuid.UUID, 0, len(list))
	for _, a := range list {
		ids = append(ids, a.ID)
	}
	counts := ctrl.attendeeCounts(ids)
	items := make([]actDTO.ActivityResponse, 0, len(list))
	for _, a := range list {
		items = append(items, actDTO.FromActivityModel(a, counts[a.ID]))
	}
	return items
}

// POST /api/u/activities
// maqra: semua role approved. event/lesson/section: hanya admin (403).
func (ctrl *ActivityController) Create(c *fiber.Ctx) error {
	var req actDTO.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	role := helper.GetUserRole(c)
	if !actService.CanCreateKind(role, req.Kind) {
		return helper.JsonError(c, fiber.StatusForbidden,
			"❌ Hanya admin yang boleh membuat kegiatan terpusat (event/lesson/section)")
	}

	newActivity := actModel.ActivityModel{
		Name:          req.Name,
		Kind:          req.Kind,
		CreatedByID:   helper.GetUserUUID(c),
		CreatedByName: helper.GetUserName(c),
		Description:   req.Description,
		Schedule:      req.Schedule,
		Location:      req.Location,
		EventDate:     req.EventDate,
	}
	if err := ctrl.DB.Create(&newActivity).Error; err != nil {
		log.Println("[ERROR] Gagal membuat kegiatan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kegiatan")
	}

	return helper.JsonCreated(c, "Kegiatan berhasil dibuat", actDTO.FromActivityModel(newActivity, 0))
}

// GET /api/u/activities?kind=&page=&per_page=
// Semua jenis kegiatan dalam satu daftar, terbaru dulu.
func (ctrl *ActivityController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&actModel.ActivityModel{})

	if kind := strings.ToLower(strings.TrimSpace(c.Query("kind"))); kind != "" && kind != "all" {
		if !constants.IsValidActivityKind(kind) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Jenis kegiatan tidak dikenal")
		}
		q = q.Where("activity_kind = ?", kind)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var list []actModel.ActivityModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		log.Println("[ERROR] Gagal mengambil daftar kegiatan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", ctrl.toResponses(list), &pagination)
}

// GET /api/u/activities/my-maqari
// Maqra yang diampu da'i yang sedang login (untuk form absensi).
func (ctrl *ActivityController) GetMyMaqari(c *fiber.Ctx) error {
	var list []actModel.ActivityModel
	if err := ctrl.DB.
		Where("activity_kind = ? AND created_by_id = ?", constants.ActivityKindMaqra, helper.GetUserUUID(c)).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		log.Println("[ERROR] Gagal mengambil maqra:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "ok", ctrl.toResponses(list))
}

// GET /api/u/activities/:id
func (ctrl *ActivityController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var act actModel.ActivityModel
	if err := ctrl.DB.First(&act, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kegiatan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	counts := ctrl.attendeeCounts([]uuid.UUID{act.ID})
	return helper.JsonOK(c, "ok", actDTO.FromActivityModel(act, counts[act.ID]))
}

// DELETE /api/u/activities/:id
// Admin boleh hapus semua; da'i hanya maqra miliknya. Baris absensi
// kegiatan itu ikut dihapus dalam transaksi yang sama.
func (ctrl *ActivityController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var act actModel.ActivityModel
	if err := ctrl.DB.First(&act, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kegiatan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if !actService.CanDelete(helper.GetUserRole(c), helper.GetUserUUID(c), act) {
		return helper.JsonError(c, fiber.StatusForbidden, "❌ Anda tidak berhak menghapus kegiatan ini")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("activity_id = ?", id).
			Delete(&attendanceModel.AttendanceRecordModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&act).Error
	}); err != nil {
		log.Println("[ERROR] Gagal menghapus kegiatan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kegiatan")
	}

	return helper.JsonDeleted(c, "Kegiatan dan absensinya dihapus", fiber.Map{"id": id})
}
