package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dakwahku_backend/internals/constants"
	benModel "dakwahku_backend/internals/features/dakwah/beneficiaries/model"
)

func TestGrowthPercent(t *testing.T) {
	// basis nol: 0→5 = 100%, 0→0 = 0%
	assert.Equal(t, float64(100), GrowthPercent(0, 5))
	assert.Equal(t, float64(0), GrowthPercent(0, 0))

	assert.Equal(t, float64(-50), GrowthPercent(10, 5))
	assert.Equal(t, float64(50), GrowthPercent(10, 15))
	assert.Equal(t, float64(0), GrowthPercent(10, 10))
}

func TestStageDistribution_AlwaysAllStagesInOrder(t *testing.T) {
	list := []benModel.BeneficiaryModel{
		{Stage: constants.DawaStages[0]},
		{Stage: constants.DawaStages[0]},
		{Stage: constants.DawaStages[2]},
	}

	dist := StageDistribution(list)
	require.Len(t, dist, len(constants.DawaStages))

	for i, sc := range dist {
		assert.Equal(t, constants.DawaStages[i], sc.Stage)
	}
	assert.Equal(t, int64(2), dist[0].Count)
	assert.Equal(t, int64(0), dist[1].Count)
	assert.Equal(t, int64(1), dist[2].Count)

	// list kosong tetap 6 tahap, semua 0
	empty := StageDistribution(nil)
	require.Len(t, empty, len(constants.DawaStages))
	for _, sc := range empty {
		assert.Zero(t, sc.Count)
	}
}

func TestMonthlyBuckets(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	times := []time.Time{
		time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.April, 3, 0, 0, 0, 0, time.UTC),
		// di luar jendela 6 bulan → tidak ikut
		time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC),
	}

	buckets := MonthlyBuckets(times, 6, now)
	require.Len(t, buckets, 6)

	assert.Equal(t, "2025-01", buckets[0].Month)
	assert.Equal(t, "2025-06", buckets[5].Month)
	assert.Equal(t, int64(2), buckets[5].Count)
	assert.Equal(t, int64(1), buckets[3].Count) // 2025-04
	assert.Equal(t, int64(0), buckets[1].Count) // 2025-02 kosong tapi tetap muncul
}

func TestSelectInactive(t *testing.T) {
	now := time.Now()
	active := benModel.BeneficiaryModel{ID: uuid.New(), Name: "Aktif"}
	stale := benModel.BeneficiaryModel{ID: uuid.New(), Name: "Lama"}
	never := benModel.BeneficiaryModel{ID: uuid.New(), Name: "Belum Pernah"}

	lastAttendance := map[uuid.UUID]time.Time{
		active.ID: now.Add(-5 * 24 * time.Hour),
		stale.ID:  now.Add(-45 * 24 * time.Hour),
	}

	inactive := SelectInactive(
		[]benModel.BeneficiaryModel{active, stale, never},
		lastAttendance, now, 30*24*time.Hour,
	)
	require.Len(t, inactive, 2)
	assert.Equal(t, "Lama", inactive[0].Name)
	assert.Equal(t, "Belum Pernah", inactive[1].Name)
}

func TestEligibleForLeaderboard(t *testing.T) {
	assert.True(t, EligibleForLeaderboard(constants.RoleDai, true))
	assert.True(t, EligibleForLeaderboard(constants.RoleAdmin, true))

	// nonaktif tidak pernah tampil, role apapun — termasuk admin
	assert.False(t, EligibleForLeaderboard(constants.RoleAdmin, false))
	assert.False(t, EligibleForLeaderboard(constants.RoleDai, false))

	assert.False(t, EligibleForLeaderboard(constants.RolePending, true))
}

func TestRankLeaderboard(t *testing.T) {
	rows := []LeaderboardRow{
		{DaiName: "Ustadz C", BeneficiaryCount: 3, AttendanceLogged: 10},
		{DaiName: "Ustadz A", BeneficiaryCount: 5, AttendanceLogged: 2},
		{DaiName: "Ustadz B", BeneficiaryCount: 3, AttendanceLogged: 20},
		{DaiName: "Ustadz D", BeneficiaryCount: 3, AttendanceLogged: 10},
	}

	ranked := RankLeaderboard(rows)
	require.Len(t, ranked, 4)
	assert.Equal(t, "Ustadz A", ranked[0].DaiName) // mad'u terbanyak
	assert.Equal(t, "Ustadz B", ranked[1].DaiName) // tie mad'u → absensi terbanyak
	assert.Equal(t, "Ustadz C", ranked[2].DaiName) // tie keduanya → nama asc
	assert.Equal(t, "Ustadz D", ranked[3].DaiName)

	// input tidak boleh termutasi
	assert.Equal(t, "Ustadz C", rows[0].DaiName)
}
