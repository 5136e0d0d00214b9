package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dakwahku_backend/internals/constants"
	preacherDTO "dakwahku_backend/internals/features/users/preacher/dto"
	preacherModel "dakwahku_backend/internals/features/users/preacher/model"
	helper "dakwahku_backend/internals/helpers"
)

var validate = validator.New()

type PreacherController struct {
	DB *gorm.DB
}

func NewPreacherController(db *gorm.DB) *PreacherController {
	return &PreacherController{DB: db}
}

// GET /api/a/preachers?role=dai
// Admin: daftar semua akun (opsional filter role)
func (ctrl *PreacherController) GetPreachers(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&preacherModel.PreacherModel{}).Order("created_at DESC")
	if role := c.Query("role"); role != "" {
		if !constants.IsValidRole(role) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Role tidak dikenal")
		}
		q = q.Where("role = ?", role)
	}

	var preachers []preacherModel.PreacherModel
	if err := q.Find(&preachers).Error; err != nil {
		log.Println("[ERROR] Gagal mengambil daftar preachers:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "ok", preacherDTO.FromPreacherModels(preachers))
}

// GET /api/a/preachers/pending
// Admin: daftar akun baru yang menunggu approval
func (ctrl *PreacherController) GetPendingPreachers(c *fiber.Ctx) error {
	var preachers []preacherModel.PreacherModel
	if err := ctrl.DB.
		Where("role = ?", constants.RolePending).
		Order("created_at ASC").
		Find(&preachers).Error; err != nil {
		log.Println("[ERROR] Gagal mengambil daftar pending:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "ok", preacherDTO.FromPreacherModels(preachers))
}

// GET /api/u/preachers/dais
// Dropdown da'i (dipakai form assign/transfer). Semua user approved boleh lihat.
func (ctrl *PreacherController) GetDais(c *fiber.Ctx) error {
	var preachers []preacherModel.PreacherModel
	if err := ctrl.DB.
		Where("role = ? AND is_active = TRUE", constants.RoleDai).
		Order("name ASC").
		Find(&preachers).Error; err != nil {
		log.Println("[ERROR] Gagal mengambil daftar da'i:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "ok", preacherDTO.FromPreacherModels(preachers))
}

// PATCH /api/a/preachers/:id/role
// Admin approve pending → dai/admin, atau ganti role akun lain.
// Admin tidak boleh mengubah role dirinya sendiri (anti lock-out).
func (ctrl *PreacherController) UpdateRole(c *fiber.Ctx) error {
	targetID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req preacherDTO.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	if targetID == helper.GetUserUUID(c) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak bisa mengubah role akun sendiri")
	}

	var target preacherModel.PreacherModel
	if err := ctrl.DB.First(&target, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Akun tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if err := ctrl.DB.Model(&target).Update("role", req.Role).Error; err != nil {
		log.Println("[ERROR] Gagal update role:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update role")
	}
	target.Role = req.Role

	return helper.JsonUpdated(c, "Role berhasil diubah", preacherDTO.FromPreacherModel(target))
}

// DELETE /api/a/preachers/:id/reject
// Admin reject akun pending (hard delete). Akun yang sudah approved
// tidak boleh dihapus lewat endpoint ini.
func (ctrl *PreacherController) RejectPending(c *fiber.Ctx) error {
	targetID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var target preacherModel.PreacherModel
	if err := ctrl.DB.First(&target, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Akun tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if target.Role != constants.RolePending {
		return helper.JsonError(c, fiber.StatusBadRequest, "Hanya akun pending yang bisa di-reject")
	}

	if err := ctrl.DB.Delete(&target).Error; err != nil {
		log.Println("[ERROR] Gagal reject akun:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus akun")
	}

	return helper.JsonDeleted(c, "Akun pending berhasil di-reject", fiber.Map{"id": targetID})
}
