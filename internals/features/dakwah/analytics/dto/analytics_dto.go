package dto

import (
	analyticsService "dakwahku_backend/internals/features/dakwah/analytics/service"
)

// DashboardStatsResponse — angka ringkas untuk halaman utama
type DashboardStatsResponse struct {
	TotalBeneficiaries int64   `json:"total_beneficiaries"`
	TotalPreachers     int64   `json:"total_preachers"`
	TotalActivities    int64   `json:"total_activities"`
	ActiveThisMonth    int64   `json:"active_this_month"`
	GrowthPercent      float64 `json:"growth_percent"`
}

// BeneficiaryAnalyticsResponse — grafik halaman analitik mad'u
type BeneficiaryAnalyticsResponse struct {
	StageDistribution []analyticsService.StageCount   `json:"stage_distribution"`
	BatchDistribution map[string]int64                `json:"batch_distribution"`
	MonthlyGrowth     []analyticsService.MonthlyCount `json:"monthly_growth"`
	InactiveCount     int64                           `json:"inactive_count"`
}

// ActivityAnalyticsResponse — grafik halaman analitik kegiatan
type ActivityAnalyticsResponse struct {
	KindCounts        map[string]int64                `json:"kind_counts"`
	MonthlyAttendance []analyticsService.MonthlyCount `json:"monthly_attendance"`
}
