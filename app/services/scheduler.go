package services

import (
	"database/sql"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/phanumatwang/finance-dashboard/app/database"
)

// StartScheduler runs the nightly maintenance job. The only task today is
// the stale-status sweep: records fully covered by past payments whose
// status never flipped to paid.
func StartScheduler(db *sql.DB) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("5 20 * * *", func() {
		log.Println("Running scheduled stale-status sweep...")
		fixed, err := database.SweepStalePaidStatuses(db)
		if err != nil {
			log.Printf("Error sweeping stale wage statuses: %v", err)
			return
		}
		if fixed > 0 {
			log.Printf("Stale-status sweep corrected %d wage records", fixed)
		}
	})
	if err != nil {
		log.Printf("Failed to register scheduler job: %v", err)
		return c
	}

	c.Start()
	log.Println("Scheduler started...")
	return c
}
