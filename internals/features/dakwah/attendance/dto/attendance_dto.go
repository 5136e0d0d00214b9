package dto

import (
	"time"

	"github.com/google/uuid"

	attendanceModel "dakwahku_backend/internals/features/dakwah/attendance/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// SaveAttendanceRequest — batch id mad'u yang dicentang hadir
type SaveAttendanceRequest struct {
	BeneficiaryIDs []uuid.UUID `json:"beneficiary_ids" validate:"required,min=1"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// SheetRow = satu baris di lembar absensi: mad'u + status hadirnya
type SheetRow struct {
	BeneficiaryID   uuid.UUID `json:"beneficiary_id"`
	BeneficiaryName string    `json:"beneficiary_name"`
	Phone           string    `json:"phone"`
	Stage           string    `json:"da_wa_stage"`
	Present         bool      `json:"present"`
}

type AttendanceRecordResponse struct {
	ID              uuid.UUID `json:"id"`
	ActivityID      uuid.UUID `json:"activity_id"`
	ActivityKind    string    `json:"activity_kind"`
	ActivityName    string    `json:"activity_name"`
	BeneficiaryID   uuid.UUID `json:"beneficiary_id"`
	BeneficiaryName string    `json:"beneficiary_name"`
	Present         bool      `json:"present"`
	LoggedByID      uuid.UUID `json:"logged_by_id"`
	LoggedByName    string    `json:"logged_by_name"`
	LoggedAt        time.Time `json:"logged_at"`
}

func FromAttendanceRecordModel(m attendanceModel.AttendanceRecordModel) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		ID:              m.ID,
		ActivityID:      m.ActivityID,
		ActivityKind:    m.ActivityKind,
		ActivityName:    m.ActivityName,
		BeneficiaryID:   m.BeneficiaryID,
		BeneficiaryName: m.BeneficiaryName,
		Present:         m.Present,
		LoggedByID:      m.LoggedByID,
		LoggedByName:    m.LoggedByName,
		LoggedAt:        m.LoggedAt,
	}
}
