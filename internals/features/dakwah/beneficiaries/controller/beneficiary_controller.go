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
	benDTO "dakwahku_backend/internals/features/dakwah/beneficiaries/dto"
	benModel "dakwahku_backend/internals/features/dakwah/beneficiaries/model"
	benService "dakwahku_backend/internals/features/dakwah/beneficiaries/service"
	attendanceModel "dakwahku_backend/internals/features/dakwah/attendance/model"
	preacherModel "dakwahku_backend/internals/features/users/preacher/model"
	helper "dakwahku_backend/internals/helpers"
)

var validate = validator.New()

type BeneficiaryController struct {
	DB *gorm.DB
}

func NewBeneficiaryController(db *gorm.DB) *BeneficiaryController {
	return &BeneficiaryController{DB: db}
}

// daiNameMap: id da'i → nama (untuk response list/detail)
func (ctrl *BeneficiaryController) daiNameMap() map[uuid.UUID]string {
	var preachers []preacherModel.PreacherModel
	out := map[uuid.UUID]string{}
	if err := ctrl.DB.Select("id", "name").Find(&preachers).Error; err != nil {
		log.Println("[WARN] Gagal mengambil nama da'i:", err)
		return out
	}
	for _, p := range preachers {
		out[p.ID] = p.Name
	}
	return out
}

// POST /api/u/beneficiaries
// Da'i biasa: mad'u otomatis di-assign ke dirinya.
// Admin: boleh pilih da'i lewat da_i_id.
func (ctrl *BeneficiaryController) Create(c *fiber.Ctx) error {
	var req benDTO.CreateBeneficiaryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	// Stage default = tahap pertama; kalau dikirim harus valid
	if req.Stage == "" {
		req.Stage = constants.DefaultDawaStage()
	} else if !constants.IsValidDawaStage(req.Stage) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tahap dakwah tidak dikenal")
	}

	actorID := helper.GetUserUUID(c)
	role := helper.GetUserRole(c)

	daiID := actorID
	if role == constants.RoleAdmin && req.DaiID != nil {
		daiID = *req.DaiID
	}
	if daiID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Da'i penanggung jawab wajib dipilih")
	}

	// Pre-check duplikat phone (pesan ramah); unique index tetap jadi
	// pengaman terakhir kalau dua create balapan.
	var count int64
	if err := ctrl.DB.Model(&benModel.BeneficiaryModel{}).
		Where("phone = ?", req.Phone).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek nomor telepon")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Nomor telepon sudah terdaftar untuk mad'u lain")
	}

	newBeneficiary := benModel.BeneficiaryModel{
		Name:  req.Name,
		Phone: req.Phone,
		DaiID: daiID,
		Batch: req.Batch,
		Stage: req.Stage,
		Notes: req.Notes,
	}
	if err := ctrl.DB.Create(&newBeneficiary).Error; err != nil {
		if helper.IsDuplicateKeyErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor telepon sudah terdaftar untuk mad'u lain")
		}
		log.Println("[ERROR] Gagal membuat mad'u:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data")
	}

	names := ctrl.daiNameMap()
	return helper.JsonCreated(c, "Mad'u berhasil ditambahkan",
		benDTO.FromBeneficiaryModel(newBeneficiary, names[newBeneficiary.DaiID]))
}

// GET /api/u/beneficiaries?search=&stage=&da_i_id=&page=&per_page=
// Filter search + stage + da'i dikomposisi AND. Non-admin selalu
// di-scope ke mad'u miliknya sendiri.
func (ctrl *BeneficiaryController) GetAll(c *fiber.Ctx) error {
	actorID := helper.GetUserUUID(c)
	role := helper.GetUserRole(c)

	q := ctrl.DB.Order("created_at DESC")
	if role != constants.RoleAdmin {
		q = q.Where("da_i_id = ?", actorID)
	}

	var all []benModel.BeneficiaryModel
	if err := q.Find(&all).Error; err != nil {
		log.Println("[ERROR] Gagal mengambil daftar mad'u:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	filter := benService.Filter{
		Search: c.Query("search"),
		Stage:  c.Query("stage"),
	}
	if raw := strings.TrimSpace(c.Query("da_i_id")); raw != "" && raw != "all" {
		daiID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "da_i_id tidak valid")
		}
		filter.DaiID = daiID
	}
	filtered := benService.FilterBeneficiaries(all, filter)

	// Pagination in-memory: dataset tool admin ini kecil, dan filter
	// substring-nya memang didefinisikan di level aplikasi.
	paging := helper.ResolvePaging(c, 20, 100)
	total := int64(len(filtered))
	start := paging.Offset
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + paging.Limit
	if end > len(filtered) {
		end = len(filtered)
	}

	names := ctrl.daiNameMap()
	items := make([]benDTO.BeneficiaryResponse, 0, end-start)
	for _, b := range filtered[start:end] {
		items = append(items, benDTO.FromBeneficiaryModel(b, names[b.DaiID]))
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", items, &pagination)
}

// GET /api/u/beneficiaries/:id
// Detail + riwayat progress log (terbaru dulu). 404 eksplisit kalau sudah dihapus.
func (ctrl *BeneficiaryController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var b benModel.BeneficiaryModel
	if err := ctrl.DB.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Mad'u tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	// Da'i biasa hanya boleh lihat mad'u miliknya
	if helper.GetUserRole(c) != constants.RoleAdmin && b.DaiID != helper.GetUserUUID(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Mad'u ini bukan binaan Anda")
	}

	var logs []benModel.ProgressLogModel
	if err := ctrl.DB.
		Where("beneficiary_id = ?", id).
		Order("created_at DESC").
		Find(&logs).Error; err != nil {
		log.Println("[WARN] Gagal mengambil progress log:", err)
	}
	logItems := make([]benDTO.ProgressLogResponse, 0, len(logs))
	for _, l := range logs {
		logItems = append(logItems, benDTO.FromProgressLogModel(l))
	}

	// Riwayat kehadiran (terbaru dulu)
	var attendance []attendanceModel.AttendanceRecordModel
	if err := ctrl.DB.
		Where("beneficiary_id = ? AND present = TRUE", id).
		Order("logged_at DESC").
		Find(&attendance).Error; err != nil {
		log.Println("[WARN] Gagal mengambil riwayat kehadiran:", err)
	}
	attendanceItems := make([]fiber.Map, 0, len(attendance))
	for _, rec := range attendance {
		attendanceItems = append(attendanceItems, fiber.Map{
			"id":            rec.ID,
			"activity_id":   rec.ActivityID,
			"activity_kind": rec.ActivityKind,
			"activity_name": rec.ActivityName,
			"logged_at":     rec.LoggedAt,
		})
	}

	names := ctrl.daiNameMap()
	return helper.JsonOK(c, "ok", fiber.Map{
		"beneficiary":      benDTO.FromBeneficiaryModel(b, names[b.DaiID]),
		"progress_logs":    logItems,
		"attendance":       attendanceItems,
		"attendance_count": len(attendanceItems),
	})
}

// PUT /api/u/beneficiaries/:id
// Update field mutable + catat progress log (hanya kalau ada yang berubah).
func (ctrl *BeneficiaryController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req benDTO.UpdateBeneficiaryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	if req.Stage != nil && !constants.IsValidDawaStage(*req.Stage) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tahap dakwah tidak dikenal")
	}

	var b benModel.BeneficiaryModel
	if err := ctrl.DB.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Mad'u tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	actorID := helper.GetUserUUID(c)
	role := helper.GetUserRole(c)
	if role != constants.RoleAdmin && b.DaiID != actorID {
		return helper.JsonError(c, fiber.StatusForbidden, "Mad'u ini bukan binaan Anda")
	}

	changes := benService.ComputeChanges(b, req.Name, req.Phone, req.Batch, req.Stage, req.Notes)
	if len(changes) == 0 {
		names := ctrl.daiNameMap()
		return helper.JsonOK(c, "Tidak ada perubahan", benDTO.FromBeneficiaryModel(b, names[b.DaiID]))
	}

	// Phone berubah → cek duplikat dulu
	if req.Phone != nil && *req.Phone != b.Phone {
		var count int64
		if err := ctrl.DB.Model(&benModel.BeneficiaryModel{}).
			Where("phone = ? AND id <> ?", *req.Phone, id).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek nomor telepon")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor telepon sudah terdaftar untuk mad'u lain")
		}
	}

	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.Phone != nil {
		b.Phone = *req.Phone
	}
	if req.Batch != nil {
		b.Batch = *req.Batch
	}
	if req.Stage != nil {
		b.Stage = *req.Stage
	}
	if req.Notes != nil {
		b.Notes = req.Notes
	}

	action := benService.ResolveLogAction(changes)
	details := benService.BuildChangeDetails(changes)
	actorName := helper.GetUserName(c)

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&b).Error; err != nil {
			return err
		}
		return benService.AppendProgressLog(tx, b.ID, action, details, changes, actorID, actorName)
	}); err != nil {
		if helper.IsDuplicateKeyErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor telepon sudah terdaftar untuk mad'u lain")
		}
		log.Println("[ERROR] Gagal update mad'u:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}

	names := ctrl.daiNameMap()
	return helper.JsonUpdated(c, "Data mad'u diperbarui", benDTO.FromBeneficiaryModel(b, names[b.DaiID]))
}

// POST /api/a/beneficiaries/:id/transfer
// Admin pindahkan mad'u ke da'i lain (harus beda dari da'i sekarang).
func (ctrl *BeneficiaryController) Transfer(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req benDTO.TransferBeneficiaryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var b benModel.BeneficiaryModel
	if err := ctrl.DB.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Mad'u tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if req.DaiID == b.DaiID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Mad'u sudah dipegang da'i tersebut")
	}

	// Target harus da'i aktif
	var target preacherModel.PreacherModel
	if err := ctrl.DB.First(&target, "id = ?", req.DaiID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Da'i tujuan tidak ditemukan")
	}
	if !target.IsApproved() || !target.IsActive {
		return helper.JsonError(c, fiber.StatusBadRequest, "Da'i tujuan belum di-approve atau nonaktif")
	}

	names := ctrl.daiNameMap()
	details := benService.BuildTransferDetails(names[b.DaiID], target.Name, req.Reason)

	actorID := helper.GetUserUUID(c)
	actorName := helper.GetUserName(c)

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&b).Update("da_i_id", req.DaiID).Error; err != nil {
			return err
		}
		return benService.AppendProgressLog(tx, b.ID, benModel.ProgressActionTransfer, details, nil, actorID, actorName)
	}); err != nil {
		log.Println("[ERROR] Gagal transfer mad'u:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses transfer")
	}

	b.DaiID = req.DaiID
	return helper.JsonUpdated(c, "Mad'u berhasil dipindahkan", benDTO.FromBeneficiaryModel(b, target.Name))
}

// DELETE /api/a/beneficiaries/:id
// Admin hapus mad'u + SEMUA attendance & progress log-nya dalam satu
// transaksi — tidak boleh ada baris absensi yatim.
func (ctrl *BeneficiaryController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var b benModel.BeneficiaryModel
	if err := ctrl.DB.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Mad'u tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return benService.DeleteBeneficiaryCascade(tx, &b)
	}); err != nil {
		log.Println("[ERROR] Gagal hapus mad'u:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}

	return helper.JsonDeleted(c, "Mad'u dan seluruh riwayatnya dihapus", fiber.Map{"id": id})
}
