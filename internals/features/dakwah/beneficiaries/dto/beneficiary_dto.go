package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	benModel "dakwahku_backend/internals/features/dakwah/beneficiaries/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateBeneficiaryRequest — da'i biasa: da_i_id dipaksa diri sendiri;
// admin boleh pilih da'i lewat da_i_id.
type CreateBeneficiaryRequest struct {
	Name  string  `json:"name" validate:"required,min=2,max=100"`
	Phone string  `json:"phone" validate:"required,min=5,max=30"`
	Batch string  `json:"batch" validate:"required,max=50"`
	Stage string  `json:"da_wa_stage" validate:"omitempty,max=50"`
	Notes *string `json:"notes,omitempty"`
	DaiID *uuid.UUID `json:"da_i_id,omitempty"`
}

func (r *CreateBeneficiaryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Batch = strings.TrimSpace(r.Batch)
	r.Stage = strings.TrimSpace(r.Stage)
	if r.Notes != nil {
		v := strings.TrimSpace(*r.Notes)
		if v == "" {
			r.Notes = nil
		} else {
			r.Notes = &v
		}
	}
}

// UpdateBeneficiaryRequest — partial update (pointer biar bisa bedakan omit vs null)
type UpdateBeneficiaryRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,min=5,max=30"`
	Batch *string `json:"batch,omitempty" validate:"omitempty,max=50"`
	Stage *string `json:"da_wa_stage,omitempty" validate:"omitempty,max=50"`
	Notes *string `json:"notes,omitempty"`
}

func (r *UpdateBeneficiaryRequest) Normalize() {
	trim := func(p *string) *string {
		if p == nil {
			return nil
		}
		v := strings.TrimSpace(*p)
		return &v
	}
	r.Name = trim(r.Name)
	r.Phone = trim(r.Phone)
	r.Batch = trim(r.Batch)
	r.Stage = trim(r.Stage)
	r.Notes = trim(r.Notes)
}

// TransferBeneficiaryRequest — admin pindahkan mad'u ke da'i lain
type TransferBeneficiaryRequest struct {
	DaiID  uuid.UUID `json:"da_i_id" validate:"required"`
	Reason string    `json:"reason,omitempty" validate:"omitempty,max=500"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type BeneficiaryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	DaiID     uuid.UUID `json:"da_i_id"`
	DaiName   string    `json:"da_i_name,omitempty"`
	Batch     string    `json:"batch"`
	Stage     string    `json:"da_wa_stage"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromBeneficiaryModel(m benModel.BeneficiaryModel, daiName string) BeneficiaryResponse {
	return BeneficiaryResponse{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		DaiID:     m.DaiID,
		DaiName:   daiName,
		Batch:     m.Batch,
		Stage:     m.Stage,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}

type ProgressLogResponse struct {
	ID              uuid.UUID `json:"id"`
	Action          string    `json:"action"`
	Details         string    `json:"details"`
	PerformedBy     uuid.UUID `json:"performed_by"`
	PerformedByName string    `json:"performed_by_name"`
	Timestamp       time.Time `json:"timestamp"`
}

func FromProgressLogModel(m benModel.ProgressLogModel) ProgressLogResponse {
	return ProgressLogResponse{
		ID:              m.ID,
		Action:          m.Action,
		Details:         m.Details,
		PerformedBy:     m.PerformedBy,
		PerformedByName: m.PerformedByName,
		Timestamp:       m.CreatedAt,
	}
}
