package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"dakwahku_backend/internals/constants"
	actModel "dakwahku_backend/internals/features/dakwah/activities/model"
	attDTO "dakwahku_backend/internals/features/dakwah/attendance/dto"
	attendanceModel "dakwahku_backend/internals/features/dakwah/attendance/model"
	attService "dakwahku_backend/internals/features/dakwah/attendance/service"
	benModel "dakwahku_backend/internals/features/dakwah/beneficiaries/model"
	helper "dakwahku_backend/internals/helpers"
)

var validate = validator.New()

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// loadActivity ambil kegiatan dari path param. Kalau return-nya nil,
// response error SUDAH ditulis — handler wajib berhenti (JsonError
// return nil saat sukses menulis, jadi jangan pakai err sebagai sinyal).
func (ctrl *AttendanceController) loadActivity(c *fiber.Ctx) (*actModel.ActivityModel, error) {
	id, err := helper.ParseUUIDParam(c, "activity_id")
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "ID kegiatan tidak valid")
	}
	var act actModel.ActivityModel
	if err := ctrl.DB.First(&act, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Kegiatan tidak ditemukan")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kegiatan")
	}
	return &act, nil
}

// canLogFor: untuk maqra, hanya pengampu (atau admin) yang boleh absen.
// Kegiatan terpusat boleh diabsen semua role approved.
func (ctrl *AttendanceController) canLogFor(c *fiber.Ctx, act *actModel.ActivityModel) bool {
	if helper.GetUserRole(c) == constants.RoleAdmin {
		return true
	}
	if act.Kind != constants.ActivityKindMaqra {
		return true
	}
	return act.CreatedByID == helper.GetUserUUID(c)
}

// presentSet: id mad'u yang sudah tercatat hadir di kegiatan ini
func (ctrl *AttendanceController) presentSet(tx *gorm.DB, activityID uuid.UUID) (map[uuid.UUID]bool, error) {
	var ids []uuid.UUID
	if err := tx.Model(&attendanceModel.AttendanceRecordModel{}).
		Where("activity_id = ? AND present = TRUE", activityID).
		Pluck("beneficiary_id", &ids).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

// GET /api/u/attendance/:activity_id/sheet
// Lembar absensi: semua mad'u + status hadir. Daftarnya sengaja tidak
// di-scope per da'i — tamu dari binaan da'i lain juga bisa diabsen.
func (ctrl *AttendanceController) GetSheet(c *fiber.Ctx) error {
	act, err := ctrl.loadActivity(c)
	if act == nil {
		return err
	}
	if !ctrl.canLogFor(c, act) {
		return helper.JsonError(c, fiber.StatusForbidden, "❌ Maqra ini bukan ampuan Anda")
	}

	var beneficiaries []benModel.BeneficiaryModel
	if err := ctrl.DB.Order("name ASC").Find(&beneficiaries).Error; err != nil {
		log.Println("[ERROR] Gagal mengambil daftar mad'u:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	present, err := ctrl.presentSet(ctrl.DB, act.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
	}

	rows := make([]attDTO.SheetRow, 0, len(beneficiaries))
	for _, b := range beneficiaries {
		rows = append(rows, attDTO.SheetRow{
			BeneficiaryID:   b.ID,
			BeneficiaryName: b.Name,
			Phone:           b.Phone,
			Stage:           b.Stage,
			Present:         present[b.ID],
		})
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"activity": fiber.Map{
			"id":            act.ID,
			"name":          act.Name,
			"activity_kind": act.Kind,
		},
		"rows": rows,
	})
}

// POST /api/u/attendance/:activity_id
// Simpan batch hadir. Idempotent: yang sudah hadir di-skip; kalau
// setelah disaring tidak ada yang baru, balas 422.
func (ctrl *AttendanceController) Save(c *fiber.Ctx) error {
	act, err := ctrl.loadActivity(c)
	if act == nil {
		return err
	}
	if !ctrl.canLogFor(c, act) {
		return helper.JsonError(c, fiber.StatusForbidden, "❌ Maqra ini bukan ampuan Anda")
	}

	var req attDTO.SaveAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var saved int
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		present, err := ctrl.presentSet(tx, act.ID)
		if err != nil {
			return err
		}
		newlyPresent := attService.SelectNewlyPresent(req.BeneficiaryIDs, present)
		if len(newlyPresent) == 0 {
			return errNothingNew
		}

		var list []benModel.BeneficiaryModel
		if err := tx.Where("id IN ?", newlyPresent).Find(&list).Error; err != nil {
			return err
		}
		byID := make(map[uuid.UUID]benModel.BeneficiaryModel, len(list))
		for _, b := range list {
			byID[b.ID] = b
		}

		records := attService.BuildRecords(
			act.ID, act.Kind, act.Name,
			newlyPresent, byID,
			helper.GetUserUUID(c), helper.GetUserName(c),
			time.Now(),
		)
		if len(records) == 0 {
			return errNothingNew
		}
		if err := tx.Create(&records).Error; err != nil {
			return err
		}
		saved = len(records)
		return nil
	})
	if err != nil {
		if errors.Is(err, errNothingNew) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity,
				"Tidak ada kehadiran baru untuk disimpan")
		}
		log.Println("[ERROR] Gagal menyimpan absensi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
	}

	return helper.JsonCreated(c, "Absensi tersimpan", fiber.Map{"saved": saved})
}

var errNothingNew = errors.New("tidak ada kehadiran baru")

// GET /api/u/attendance/:activity_id/attendees
// Daftar yang hadir di kegiatan ini, terbaru dulu.
func (ctrl *AttendanceController) GetAttendees(c *fiber.Ctx) error {
	act, err := ctrl.loadActivity(c)
	if act == nil {
		return err
	}

	var records []attendanceModel.AttendanceRecordModel
	if err := ctrl.DB.
		Where("activity_id = ? AND present = TRUE", act.ID).
		Order("logged_at DESC").
		Find(&records).Error; err != nil {
		log.Println("[ERROR] Gagal mengambil daftar hadir:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	items := make([]attDTO.AttendanceRecordResponse, 0, len(records))
	for _, r := range records {
		items = append(items, attDTO.FromAttendanceRecordModel(r))
	}
	return helper.JsonOK(c, "ok", items)
}

// DELETE /api/a/attendance/records/:id
// Admin hapus satu baris absensi (salah centang); balas jumlah hadir
// terbaru hasil hitung ulang dari DB, bukan counter dikurangi satu.
func (ctrl *AttendanceController) DeleteRecord(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var rec attendanceModel.AttendanceRecordModel
	if err := ctrl.DB.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Baris absensi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if err := ctrl.DB.Delete(&rec).Error; err != nil {
		log.Println("[ERROR] Gagal menghapus baris absensi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}

	var remaining int64
	_ = ctrl.DB.Model(&attendanceModel.AttendanceRecordModel{}).
		Where("activity_id = ? AND present = TRUE", rec.ActivityID).
		Count(&remaining).Error

	return helper.JsonDeleted(c, "Baris absensi dihapus", fiber.Map{
		"id":             id,
		"activity_id":    rec.ActivityID,
		"attendee_count": remaining,
	})
}
