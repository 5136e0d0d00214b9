package service

import (
	"github.com/google/uuid"

	"dakwahku_backend/internals/constants"
	actModel "dakwahku_backend/internals/features/dakwah/activities/model"
)

// CanCreateKind: maqra boleh dibuat semua role yang sudah approved;
// event/lesson/section (kegiatan terpusat) hanya admin.
func CanCreateKind(role, kind string) bool {
	if !constants.IsValidActivityKind(kind) {
		return false
	}
	if constants.IsCentralActivityKind(kind) {
		return role == constants.RoleAdmin
	}
	return true
}

// CanDelete: admin boleh hapus semua; da'i hanya maqra miliknya sendiri.
func CanDelete(role string, actorID uuid.UUID, act actModel.ActivityModel) bool {
	if role == constants.RoleAdmin {
		return true
	}
	return act.Kind == constants.ActivityKindMaqra && act.CreatedByID == actorID
}
