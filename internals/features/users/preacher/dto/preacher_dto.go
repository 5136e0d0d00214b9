package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	preacherModel "dakwahku_backend/internals/features/users/preacher/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// UpdateRoleRequest — admin approve / ganti role akun lain
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin dai pending"`
}

func (r *UpdateRoleRequest) Normalize() {
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type PreacherResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	PhotoURL  *string   `json:"photo_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func FromPreacherModel(m preacherModel.PreacherModel) PreacherResponse {
	return PreacherResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Role:      m.Role,
		PhotoURL:  m.PhotoURL,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func FromPreacherModels(ms []preacherModel.PreacherModel) []PreacherResponse {
	out := make([]PreacherResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromPreacherModel(m))
	}
	return out
}
