package service

import (
	"time"

	"github.com/google/uuid"

	attendanceModel "dakwahku_backend/internals/features/dakwah/attendance/model"
	benModel "dakwahku_backend/internals/features/dakwah/beneficiaries/model"
)

// SelectNewlyPresent menyaring id yang benar-benar baru hadir:
// duplikat di request dibuang, yang sudah tercatat hadir di-skip.
// Simpan absensi jadi idempotent — submit dua kali tidak dobel.
func SelectNewlyPresent(requested []uuid.UUID, alreadyPresent map[uuid.UUID]bool) []uuid.UUID {
	seen := map[uuid.UUID]bool{}
	out := make([]uuid.UUID, 0, len(requested))
	for _, id := range requested {
		if id == uuid.Nil || seen[id] || alreadyPresent[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// BuildRecords membangun baris attendance untuk id yang baru hadir.
// Id yang tidak ada di daftar mad'u (mis. sudah dihapus) di-skip diam-diam.
func BuildRecords(
	activityID uuid.UUID, activityKind, activityName string,
	newlyPresent []uuid.UUID,
	beneficiaries map[uuid.UUID]benModel.BeneficiaryModel,
	loggedByID uuid.UUID, loggedByName string,
	loggedAt time.Time,
) []attendanceModel.AttendanceRecordModel {
	records := make([]attendanceModel.AttendanceRecordModel, 0, len(newlyPresent))
	for _, id := range newlyPresent {
		b, ok := beneficiaries[id]
		if !ok {
			continue
		}
		records = append(records, attendanceModel.AttendanceRecordModel{
			ActivityID:      activityID,
			ActivityKind:    activityKind,
			ActivityName:    activityName,
			BeneficiaryID:   id,
			BeneficiaryName: b.Name,
			Present:         true,
			LoggedByID:      loggedByID,
			LoggedByName:    loggedByName,
			LoggedAt:        loggedAt,
		})
	}
	return records
}
