package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceRecordModel = satu baris kehadiran mad'u di satu kegiatan.
// Nama kegiatan/mad'u/da'i di-denormalisasi supaya riwayat tetap
// terbaca walau sumbernya sudah berganti nama.
type AttendanceRecordModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	ActivityID   uuid.UUID `gorm:"type:uuid;not null;index" json:"activity_id"`
	ActivityKind string    `gorm:"size:20;not null" json:"activity_kind"`
	ActivityName string    `gorm:"size:150;not null" json:"activity_name"`

	BeneficiaryID   uuid.UUID `gorm:"type:uuid;not null;index" json:"beneficiary_id"`
	BeneficiaryName string    `gorm:"size:100;not null" json:"beneficiary_name"`

	Present bool `gorm:"not null;default:true" json:"present"`

	LoggedByID   uuid.UUID `gorm:"type:uuid;not null" json:"logged_by_id"`
	LoggedByName string    `gorm:"size:100;not null" json:"logged_by_name"`

	LoggedAt  time.Time `gorm:"type:timestamptz;not null" json:"logged_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (AttendanceRecordModel) TableName() string {
	return "attendance"
}
