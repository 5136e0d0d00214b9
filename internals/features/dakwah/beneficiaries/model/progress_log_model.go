package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Aksi yang dicatat di progress_logs (append-only, tidak pernah diedit/dihapus)
const (
	ProgressActionTransfer    = "transfer"
	ProgressActionStageChange = "stage_change"
	ProgressActionNoteAdded   = "note_added"
	ProgressActionUpdate      = "update"
)

// ProgressLogModel = jejak audit per mad'u (dulu subcollection progress_logs)
type ProgressLogModel struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BeneficiaryID uuid.UUID `gorm:"type:uuid;not null;index" json:"beneficiary_id"`

	Action  string `gorm:"size:30;not null" json:"action"`
	Details string `gorm:"type:text;not null" json:"details"`

	// Meta menyimpan perubahan field lama→baru dalam JSONB (opsional)
	Meta datatypes.JSON `gorm:"type:jsonb" json:"meta,omitempty"`

	PerformedBy     uuid.UUID `gorm:"type:uuid;not null" json:"performed_by"`
	PerformedByName string    `gorm:"size:100;not null" json:"performed_by_name"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (ProgressLogModel) TableName() string {
	return "progress_logs"
}
