package database

import (
	"log"

	actModel "dakwahku_backend/internals/features/dakwah/activities/model"
	attendanceModel "dakwahku_backend/internals/features/dakwah/attendance/model"
	benModel "dakwahku_backend/internals/features/dakwah/beneficiaries/model"
	authModel "dakwahku_backend/internals/features/users/auth/model"
	preacherModel "dakwahku_backend/internals/features/users/preacher/model"
)

// MigrateSchema menjalankan AutoMigrate untuk semua tabel aplikasi.
// gen_random_uuid() butuh ekstensi pgcrypto.
func MigrateSchema() {
	log.Println("🔧 Menjalankan migrasi skema...")

	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		log.Printf("⚠️ Gagal enable pgcrypto: %v", err)
	}

	if err := DB.AutoMigrate(
		&preacherModel.PreacherModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklistModel{},
		&benModel.BeneficiaryModel{},
		&benModel.ProgressLogModel{},
		&actModel.ActivityModel{},
		&attendanceModel.AttendanceRecordModel{},
	); err != nil {
		log.Fatalf("❌ Migrasi gagal: %v", err)
	}

	log.Println("✅ Migrasi selesai.")
}
