package service

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"dakwahku_backend/internals/constants"
	benModel "dakwahku_backend/internals/features/dakwah/beneficiaries/model"
)

/* ==========================
   Pertumbuhan bulan-ke-bulan
========================== */

// GrowthPercent: (cur-prev)/prev*100. Basis nol: 0→n dihitung 100%,
// 0→0 dihitung 0%.
func GrowthPercent(prev, cur int64) float64 {
	if prev == 0 {
		if cur > 0 {
			return 100
		}
		return 0
	}
	return float64(cur-prev) / float64(prev) * 100
}

/* ==========================
   Distribusi tahap dakwah
========================== */

type StageCount struct {
	Stage string `json:"stage"`
	Count int64  `json:"count"`
}

// StageDistribution menghitung jumlah mad'u per tahap, urut sesuai
// urutan tahap dan selalu lengkap 6 tahap (yang kosong = 0).
func StageDistribution(list []benModel.BeneficiaryModel) []StageCount {
	counts := map[string]int64{}
	for _, b := range list {
		counts[b.Stage]++
	}
	out := make([]StageCount, 0, len(constants.DawaStages))
	for _, stage := range constants.DawaStages {
		out = append(out, StageCount{Stage: stage, Count: counts[stage]})
	}
	return out
}

/* ==========================
   Bucket bulanan
========================== */

type MonthlyCount struct {
	Month string `json:"month"` // format YYYY-MM
	Count int64  `json:"count"`
}

// MonthlyBuckets mengelompokkan timestamp per bulan kalender, `months`
// bulan terakhir berakhir di bulan `now` (bulan tanpa data tetap muncul
// dengan 0).
func MonthlyBuckets(times []time.Time, months int, now time.Time) []MonthlyCount {
	if months <= 0 {
		return []MonthlyCount{}
	}
	counts := map[string]int64{}
	for _, t := range times {
		counts[t.Format("2006-01")]++
	}
	out := make([]MonthlyCount, 0, months)
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := months - 1; i >= 0; i-- {
		m := anchor.AddDate(0, -i, 0)
		key := m.Format("2006-01")
		out = append(out, MonthlyCount{Month: key, Count: counts[key]})
	}
	return out
}

/* ==========================
   Mad'u tidak aktif
========================== */

// SelectInactive: mad'u yang kehadiran terakhirnya lebih lama dari
// `threshold` sebelum `now` — atau belum pernah hadir sama sekali.
func SelectInactive(list []benModel.BeneficiaryModel, lastAttendance map[uuid.UUID]time.Time, now time.Time, threshold time.Duration) []benModel.BeneficiaryModel {
	cutoff := now.Add(-threshold)
	out := make([]benModel.BeneficiaryModel, 0)
	for _, b := range list {
		last, ok := lastAttendance[b.ID]
		if !ok || last.Before(cutoff) {
			out = append(out, b)
		}
	}
	return out
}

/* ==========================
   Leaderboard da'i
========================== */

// EligibleForLeaderboard: hanya akun approved (admin/dai) yang masih
// aktif yang ikut ranking — admin nonaktif juga tidak ditampilkan.
func EligibleForLeaderboard(role string, isActive bool) bool {
	if !isActive {
		return false
	}
	return role == constants.RoleAdmin || role == constants.RoleDai
}

type LeaderboardRow struct {
	DaiID            uuid.UUID `json:"da_i_id"`
	DaiName          string    `json:"da_i_name"`
	BeneficiaryCount int64     `json:"beneficiary_count"`
	AttendanceLogged int64     `json:"attendance_logged"`
}

// RankLeaderboard urut by jumlah mad'u desc, tie-break jumlah absensi
// desc, lalu nama asc biar deterministik.
func RankLeaderboard(rows []LeaderboardRow) []LeaderboardRow {
	out := make([]LeaderboardRow, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].BeneficiaryCount != out[j].BeneficiaryCount {
			return out[i].BeneficiaryCount > out[j].BeneficiaryCount
		}
		if out[i].AttendanceLogged != out[j].AttendanceLogged {
			return out[i].AttendanceLogged > out[j].AttendanceLogged
		}
		return out[i].DaiName < out[j].DaiName
	})
	return out
}
