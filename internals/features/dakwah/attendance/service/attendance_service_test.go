package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	benModel "dakwahku_backend/internals/features/dakwah/beneficiaries/model"
)

func TestSelectNewlyPresent_SkipsAlreadyPresent(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	already := map[uuid.UUID]bool{a: true}

	got := SelectNewlyPresent([]uuid.UUID{a, b, c}, already)
	require.Len(t, got, 2)
	assert.Equal(t, []uuid.UUID{b, c}, got)

	// submit ulang persis sama → tidak ada yang baru
	already[b], already[c] = true, true
	assert.Empty(t, SelectNewlyPresent([]uuid.UUID{a, b, c}, already))
}

func TestSelectNewlyPresent_DedupesRequest(t *testing.T) {
	a := uuid.New()
	got := SelectNewlyPresent([]uuid.UUID{a, a, a, uuid.Nil}, nil)
	assert.Equal(t, []uuid.UUID{a}, got)
}

func TestBuildRecords(t *testing.T) {
	activityID := uuid.New()
	daiID := uuid.New()
	known := uuid.New()
	ghost := uuid.New() // sudah dihapus dari daftar mad'u
	loggedAt := time.Now()

	beneficiaries := map[uuid.UUID]benModel.BeneficiaryModel{
		known: {ID: known, Name: "Ahmad"},
	}

	records := BuildRecords(
		activityID, "maqra", "Maqra Subuh",
		[]uuid.UUID{known, ghost},
		beneficiaries,
		daiID, "Ustadz A", loggedAt,
	)

	require.Len(t, records, 1)
	r := records[0]
	assert.Equal(t, activityID, r.ActivityID)
	assert.Equal(t, "maqra", r.ActivityKind)
	assert.Equal(t, "Maqra Subuh", r.ActivityName)
	assert.Equal(t, known, r.BeneficiaryID)
	assert.Equal(t, "Ahmad", r.BeneficiaryName)
	assert.True(t, r.Present)
	assert.Equal(t, daiID, r.LoggedByID)
	assert.Equal(t, "Ustadz A", r.LoggedByName)
	assert.Equal(t, loggedAt, r.LoggedAt)
}
