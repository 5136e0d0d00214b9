package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authRepo "dakwahku_backend/internals/features/users/auth/repository"
)

// StartBlacklistCleanupScheduler membersihkan token_blacklist yang sudah
// kadaluarsa, tiap 24 jam. Blacklist cuma relevan sampai exp token lewat.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		for {
			log.Println("[CLEANUP] Menjalankan pembersihan token_blacklist...")

			if n, err := authRepo.CleanupExpiredBlacklist(db); err != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus token kadaluarsa: %v", err)
			} else if n > 0 {
				log.Printf("[CLEANUP] %d token kadaluarsa dihapus", n)
			} else {
				log.Println("[CLEANUP] Tidak ada token yang memenuhi syarat dihapus")
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
