// file: internals/features/users/auth/scheduler/blacklist_cleanup.go
package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	tokenModel "gasku_backend/internals/features/users/token/model"
)

// StartBlacklistCleanupScheduler menghapus baris blacklist yang sudah
// lewat expiry tiap jam. Jalan di goroutine sendiri sampai proses mati.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			res := db.
				Where("token_blacklist_expired_at < ?", time.Now()).
				Delete(&tokenModel.TokenBlacklist{})
			if res.Error != nil {
				log.Printf("❌ cleanup token blacklist gagal: %v", res.Error)
				continue
			}
			if res.RowsAffected > 0 {
				log.Printf("🧹 token blacklist: %d baris kedaluwarsa dihapus", res.RowsAffected)
			}
		}
	}()
	log.Println("✅ Scheduler cleanup token blacklist aktif (tiap 1 jam)")
}
