package model

import (
	"time"

	"github.com/google/uuid"

	"dakwahku_backend/internals/constants"
)

// PreacherModel merepresentasikan tabel preachers: semua akun aplikasi
// (admin, da'i, maupun pending) — 1 baris per identitas login.
type PreacherModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string    `gorm:"size:100;not null" json:"name" validate:"required,min=2,max=100"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"not null" json:"-"`
	GoogleID *string   `gorm:"size:255;unique" json:"google_id,omitempty"`
	PhotoURL *string   `gorm:"size:512" json:"photo_url,omitempty"`

	// Role tunggal: admin / dai / pending.
	// pending = belum di-approve, tidak bisa akses fitur apapun.
	Role string `gorm:"type:varchar(20);not null;default:'pending'" json:"role"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (PreacherModel) TableName() string {
	return "preachers"
}

// SetDefaultValues memastikan nilai default sebelum simpan
func (p *PreacherModel) SetDefaultValues() {
	if p.Role == "" {
		p.Role = constants.RolePending
	}
}

func (p *PreacherModel) IsAdmin() bool {
	return p.Role == constants.RoleAdmin
}

func (p *PreacherModel) IsApproved() bool {
	return p.Role == constants.RoleAdmin || p.Role == constants.RoleDai
}
