package model

import (
	"time"

	"github.com/google/uuid"
)

// BeneficiaryModel merepresentasikan tabel beneficiaries (mad'u binaan).
// Satu mad'u selalu dipegang tepat satu da'i (da_i_id).
type BeneficiaryModel struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name string    `gorm:"size:100;not null" json:"name"`

	// Unique index = jaminan duplikat yang sebenarnya;
	// pre-check di controller cuma untuk pesan error yang ramah.
	Phone string `gorm:"size:30;unique;not null" json:"phone"`

	DaiID uuid.UUID `gorm:"column:da_i_id;type:uuid;not null;index" json:"da_i_id"`
	Batch string    `gorm:"size:50;not null" json:"batch"`

	// Tahap dakwah: salah satu dari constants.DawaStages (6 tahap, Arab)
	Stage string `gorm:"column:da_wa_stage;size:50;not null" json:"da_wa_stage"`

	Notes *string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (BeneficiaryModel) TableName() string {
	return "beneficiaries"
}
