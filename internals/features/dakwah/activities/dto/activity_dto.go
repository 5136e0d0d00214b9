package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	actModel "dakwahku_backend/internals/features/dakwah/activities/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateActivityRequest struct {
	Name        string     `json:"name" validate:"required,min=2,max=150"`
	Kind        string     `json:"activity_kind" validate:"omitempty,oneof=maqra event lesson section"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=2000"`
	Schedule    *string    `json:"schedule,omitempty" validate:"omitempty,max=150"`
	Location    *string    `json:"location,omitempty" validate:"omitempty,max=150"`
	EventDate   *time.Time `json:"event_date,omitempty"`
}

func (r *CreateActivityRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Kind = strings.ToLower(strings.TrimSpace(r.Kind))
	if r.Kind == "" {
		r.Kind = "maqra" // default: halaqah milik pembuat
	}
	trim := func(p *string) *string {
		if p == nil {
			return nil
		}
		v := strings.TrimSpace(*p)
		if v == "" {
			return nil
		}
		return &v
	}
	r.Description = trim(r.Description)
	r.Schedule = trim(r.Schedule)
	r.Location = trim(r.Location)
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type ActivityResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Kind          string     `json:"activity_kind"`
	CreatedByID   uuid.UUID  `json:"created_by_id"`
	CreatedByName string     `json:"created_by_name"`
	Description   *string    `json:"description,omitempty"`
	Schedule      *string    `json:"schedule,omitempty"`
	Location      *string    `json:"location,omitempty"`
	EventDate     *time.Time `json:"event_date,omitempty"`
	AttendeeCount int64      `json:"attendee_count"`
	CreatedAt     time.Time  `json:"created_at"`
}

func FromActivityModel(m actModel.ActivityModel, attendeeCount int64) ActivityResponse {
	return ActivityResponse{
		ID:            m.ID,
		Name:          m.Name,
		Kind:          m.Kind,
		CreatedByID:   m.CreatedByID,
		CreatedByName: m.CreatedByName,
		Description:   m.Description,
		Schedule:      m.Schedule,
		Location:      m.Location,
		EventDate:     m.EventDate,
		AttendeeCount: attendeeCount,
		CreatedAt:     m.CreatedAt,
	}
}
