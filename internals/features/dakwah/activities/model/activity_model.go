package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityModel menyatukan semua jenis kegiatan dakwah dalam satu tabel.
// activity_kind membedakan: maqra (halaqah milik da'i), event, lesson,
// section (kegiatan terpusat, hanya admin yang boleh buat).
type ActivityModel struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name string    `gorm:"size:150;not null" json:"name"`

	Kind string `gorm:"column:activity_kind;size:20;not null;index" json:"activity_kind"`

	// Pembuat kegiatan. Untuk maqra ini sekaligus da'i pengampunya.
	CreatedByID   uuid.UUID `gorm:"column:created_by_id;type:uuid;not null;index" json:"created_by_id"`
	CreatedByName string    `gorm:"column:created_by_name;size:100;not null" json:"created_by_name"`

	Description *string    `gorm:"type:text" json:"description,omitempty"`
	Schedule    *string    `gorm:"size:150" json:"schedule,omitempty"`
	Location    *string    `gorm:"size:150" json:"location,omitempty"`
	EventDate   *time.Time `gorm:"type:timestamptz" json:"event_date,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (ActivityModel) TableName() string {
	return "activities"
}
