package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	attendanceModel "dakwahku_backend/internals/features/dakwah/attendance/model"
	benModel "dakwahku_backend/internals/features/dakwah/beneficiaries/model"
)

/* ==========================
   Filter (search + stage + da'i, komposisi AND)
========================== */

type Filter struct {
	Search string    // substring name/phone/batch, case-insensitive
	Stage  string    // exact match; "" atau "all" = semua
	DaiID  uuid.UUID // uuid.Nil = semua da'i
}

// MatchesFilter: semua predicate harus lolos (AND).
func MatchesFilter(b benModel.BeneficiaryModel, f Filter) bool {
	if s := strings.ToLower(strings.TrimSpace(f.Search)); s != "" {
		name := strings.ToLower(b.Name)
		phone := strings.ToLower(b.Phone)
		batch := strings.ToLower(b.Batch)
		if !strings.Contains(name, s) && !strings.Contains(phone, s) && !strings.Contains(batch, s) {
			return false
		}
	}
	if f.Stage != "" && f.Stage != "all" && b.Stage != f.Stage {
		return false
	}
	if f.DaiID != uuid.Nil && b.DaiID != f.DaiID {
		return false
	}
	return true
}

func FilterBeneficiaries(list []benModel.BeneficiaryModel, f Filter) []benModel.BeneficiaryModel {
	out := make([]benModel.BeneficiaryModel, 0, len(list))
	for _, b := range list {
		if MatchesFilter(b, f) {
			out = append(out, b)
		}
	}
	return out
}

/* ==========================
   Perubahan field (untuk progress log)
========================== */

type FieldChange struct {
	Field string `json:"field"`
	Old   string `json:"old"`
	New   string `json:"new"`
}

// ComputeChanges membandingkan nilai lama vs request update.
// Return kosong = tidak ada yang berubah = tidak perlu log.
func ComputeChanges(old benModel.BeneficiaryModel, name, phone, batch, stage, notes *string) []FieldChange {
	changes := make([]FieldChange, 0, 5)
	cmp := func(field, oldVal string, newVal *string) {
		if newVal != nil && *newVal != oldVal {
			changes = append(changes, FieldChange{Field: field, Old: oldVal, New: *newVal})
		}
	}
	cmp("name", old.Name, name)
	cmp("phone", old.Phone, phone)
	cmp("batch", old.Batch, batch)
	cmp("da_wa_stage", old.Stage, stage)

	oldNotes := ""
	if old.Notes != nil {
		oldNotes = *old.Notes
	}
	cmp("notes", oldNotes, notes)

	return changes
}

// ResolveLogAction: stage berubah → stage_change, hanya notes → note_added,
// selain itu update biasa.
func ResolveLogAction(changes []FieldChange) string {
	onlyNotes := len(changes) == 1 && changes[0].Field == "notes"
	if onlyNotes {
		return benModel.ProgressActionNoteAdded
	}
	for _, ch := range changes {
		if ch.Field == "da_wa_stage" {
			return benModel.ProgressActionStageChange
		}
	}
	return benModel.ProgressActionUpdate
}

// BuildChangeDetails: ringkasan human-readable "field: old → new"
func BuildChangeDetails(changes []FieldChange) string {
	parts := make([]string, 0, len(changes))
	for _, ch := range changes {
		parts = append(parts, fmt.Sprintf("%s: %q → %q", ch.Field, ch.Old, ch.New))
	}
	return strings.Join(parts, "; ")
}

func BuildTransferDetails(fromName, toName, reason string) string {
	details := fmt.Sprintf("Dipindahkan dari %s ke %s", fromName, toName)
	if strings.TrimSpace(reason) != "" {
		details += " — alasan: " + strings.TrimSpace(reason)
	}
	return details
}

/* ==========================
   Cascade delete (dipakai di dalam tx)
========================== */

// BeneficiaryChildTables: tabel anak yang ikut terhapus saat mad'u
// dihapus, sesuai urutan eksekusi. Baris mad'u sendiri dihapus terakhir.
// Kalau ada tabel baru yang menyimpan beneficiary_id, daftarkan di sini.
func BeneficiaryChildTables() []string {
	return []string{
		attendanceModel.AttendanceRecordModel{}.TableName(),
		benModel.ProgressLogModel{}.TableName(),
	}
}

// DeleteBeneficiaryCascade menghapus semua baris anak lalu baris mad'u,
// dalam transaksi yang sudah berjalan — tidak boleh ada absensi yatim.
func DeleteBeneficiaryCascade(tx *gorm.DB, b *benModel.BeneficiaryModel) error {
	for _, table := range BeneficiaryChildTables() {
		if err := tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE beneficiary_id = ?", table), b.ID).Error; err != nil {
			return err
		}
	}
	return tx.Delete(b).Error
}

/* ==========================
   Progress log writer (dipakai di dalam tx)
========================== */

func AppendProgressLog(tx *gorm.DB, beneficiaryID uuid.UUID, action, details string, changes []FieldChange, actorID uuid.UUID, actorName string) error {
	var meta datatypes.JSON
	if len(changes) > 0 {
		if raw, err := json.Marshal(changes); err == nil {
			meta = datatypes.JSON(raw)
		}
	}
	return tx.Create(&benModel.ProgressLogModel{
		BeneficiaryID:   beneficiaryID,
		Action:          action,
		Details:         details,
		Meta:            meta,
		PerformedBy:     actorID,
		PerformedByName: actorName,
	}).Error
}
