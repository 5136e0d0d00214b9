package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	benModel "dakwahku_backend/internals/features/dakwah/beneficiaries/model"
)

func sampleBeneficiaries() ([]benModel.BeneficiaryModel, uuid.UUID, uuid.UUID) {
	daiA := uuid.New()
	daiB := uuid.New()
	return []benModel.BeneficiaryModel{
		{ID: uuid.New(), Name: "Ahmad Fulan", Phone: "0811111111", Batch: "Batch 1", Stage: "حضور منتظم", DaiID: daiA},
		{ID: uuid.New(), Name: "Budi Santoso", Phone: "0822222222", Batch: "Batch 1", Stage: "تواصل جديد", DaiID: daiA},
		{ID: uuid.New(), Name: "Ahmad Zaki", Phone: "0833333333", Batch: "Batch 2", Stage: "حضور منتظم", DaiID: daiB},
	}, daiA, daiB
}

func TestMatchesFilter_AndComposition(t *testing.T) {
	list, daiA, _ := sampleBeneficiaries()

	// search + stage + da'i sekaligus: hanya yang lolos ketiganya
	got := FilterBeneficiaries(list, Filter{
		Search: "ahmad",
		Stage:  "حضور منتظم",
		DaiID:  daiA,
	})
	require.Len(t, got, 1)
	assert.Equal(t, "Ahmad Fulan", got[0].Name)
}

func TestMatchesFilter_SearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	list, _, _ := sampleBeneficiaries()

	assert.Len(t, FilterBeneficiaries(list, Filter{Search: "AHMAD"}), 2)
	assert.Len(t, FilterBeneficiaries(list, Filter{Search: "0822"}), 1)
	assert.Len(t, FilterBeneficiaries(list, Filter{Search: "batch 2"}), 1)
	assert.Empty(t, FilterBeneficiaries(list, Filter{Search: "tidak ada"}))
}

func TestMatchesFilter_AllSentinels(t *testing.T) {
	list, _, _ := sampleBeneficiaries()

	// "" dan "all" sama-sama berarti semua stage; uuid.Nil semua da'i
	assert.Len(t, FilterBeneficiaries(list, Filter{Stage: "all"}), 3)
	assert.Len(t, FilterBeneficiaries(list, Filter{}), 3)
	assert.Len(t, FilterBeneficiaries(list, Filter{Stage: "حضور منتظم"}), 2)
}

func strPtr(s string) *string { return &s }

func TestComputeChanges(t *testing.T) {
	old := benModel.BeneficiaryModel{
		Name: "Ahmad", Phone: "0811", Batch: "Batch 1", Stage: "تواصل جديد",
	}

	// nil = tidak dikirim = bukan perubahan
	changes := ComputeChanges(old, nil, nil, nil, nil, nil)
	assert.Empty(t, changes)

	// nilai sama = bukan perubahan
	changes = ComputeChanges(old, strPtr("Ahmad"), nil, nil, nil, nil)
	assert.Empty(t, changes)

	changes = ComputeChanges(old, strPtr("Ahmad Fulan"), nil, nil, strPtr("اهتمام أولي"), nil)
	require.Len(t, changes, 2)
	assert.Equal(t, "name", changes[0].Field)
	assert.Equal(t, "Ahmad", changes[0].Old)
	assert.Equal(t, "Ahmad Fulan", changes[0].New)
	assert.Equal(t, "da_wa_stage", changes[1].Field)
}

func TestResolveLogAction(t *testing.T) {
	assert.Equal(t, benModel.ProgressActionNoteAdded,
		ResolveLogAction([]FieldChange{{Field: "notes"}}))

	assert.Equal(t, benModel.ProgressActionStageChange,
		ResolveLogAction([]FieldChange{{Field: "name"}, {Field: "da_wa_stage"}}))

	assert.Equal(t, benModel.ProgressActionUpdate,
		ResolveLogAction([]FieldChange{{Field: "name"}, {Field: "notes"}}))
}

func TestBuildChangeDetails(t *testing.T) {
	details := BuildChangeDetails([]FieldChange{
		{Field: "name", Old: "Ahmad", New: "Ahmad Fulan"},
		{Field: "batch", Old: "Batch 1", New: "Batch 2"},
	})
	assert.Equal(t, `name: "Ahmad" → "Ahmad Fulan"; batch: "Batch 1" → "Batch 2"`, details)
}

func TestBeneficiaryChildTables_CascadeCoversAllChildren(t *testing.T) {
	// Hapus mad'u harus menyapu attendance + progress_logs sebelum baris
	// beneficiaries — kalau urutan/daftarnya berubah, absensi yatim bisa lolos.
	tables := BeneficiaryChildTables()
	require.Equal(t, []string{"attendance", "progress_logs"}, tables)

	// baris mad'u tidak boleh ada di daftar anak (dihapus terakhir, terpisah)
	for _, tbl := range tables {
		assert.NotEqual(t, benModel.BeneficiaryModel{}.TableName(), tbl)
	}
}

func TestBuildTransferDetails(t *testing.T) {
	assert.Equal(t, "Dipindahkan dari Ustadz A ke Ustadz B",
		BuildTransferDetails("Ustadz A", "Ustadz B", ""))
	assert.Equal(t, "Dipindahkan dari Ustadz A ke Ustadz B — alasan: pindah domisili",
		BuildTransferDetails("Ustadz A", "Ustadz B", " pindah domisili "))
}
