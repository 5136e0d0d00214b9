package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"dakwahku_backend/internals/constants"
	actModel "dakwahku_backend/internals/features/dakwah/activities/model"
)

func TestCanCreateKind(t *testing.T) {
	tests := []struct {
		name string
		role string
		kind string
		want bool
	}{
		{"dai boleh buat maqra", constants.RoleDai, constants.ActivityKindMaqra, true},
		{"admin boleh buat maqra", constants.RoleAdmin, constants.ActivityKindMaqra, true},
		{"dai tidak boleh buat event", constants.RoleDai, constants.ActivityKindEvent, false},
		{"dai tidak boleh buat lesson", constants.RoleDai, constants.ActivityKindLesson, false},
		{"dai tidak boleh buat section", constants.RoleDai, constants.ActivityKindSection, false},
		{"admin boleh buat event", constants.RoleAdmin, constants.ActivityKindEvent, true},
		{"admin boleh buat section", constants.RoleAdmin, constants.ActivityKindSection, true},
		{"kind tidak dikenal ditolak", constants.RoleAdmin, "webinar", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanCreateKind(tt.role, tt.kind))
		})
	}
}

func TestCanDelete(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	myMaqra := actModel.ActivityModel{Kind: constants.ActivityKindMaqra, CreatedByID: owner}
	event := actModel.ActivityModel{Kind: constants.ActivityKindEvent, CreatedByID: owner}

	assert.True(t, CanDelete(constants.RoleAdmin, other, myMaqra))
	assert.True(t, CanDelete(constants.RoleAdmin, other, event))

	assert.True(t, CanDelete(constants.RoleDai, owner, myMaqra))
	assert.False(t, CanDelete(constants.RoleDai, other, myMaqra))

	// event bukan milik siapa-siapa selain admin, termasuk pembuatnya kalau dia bukan admin
	assert.False(t, CanDelete(constants.RoleDai, owner, event))
}
