package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"teep_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler purges expired blacklist rows hourly.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	// TTL from env (default: 7 days)
	ttlDays := 7
	if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			ttlDays = parsed
		}
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc("@hourly", func() {
		log.Println("[CLEANUP] Running token_blacklist cleanup...")

		deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

		var expiredTokens []model.TokenBlacklist
		if err := db.
			Where("expired_at < ? AND deleted_at IS NULL", deleteBefore).
			Limit(100).
			Find(&expiredTokens).Error; err != nil {
			log.Printf("[CLEANUP ERROR] fetching expired tokens: %v", err)
			return
		}
		if len(expiredTokens) == 0 {
			log.Println("[CLEANUP] no tokens eligible for deletion")
			return
		}
		if err := db.Delete(&expiredTokens).Error; err != nil {
			log.Printf("[CLEANUP ERROR] deleting tokens: %v", err)
			return
		}
		log.Printf("[CLEANUP] %d expired tokens removed", len(expiredTokens))
	})
	if err != nil {
		log.Printf("[CLEANUP ERROR] scheduler init: %v", err)
		return
	}
	c.Start()
}
