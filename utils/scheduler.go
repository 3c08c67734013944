package utils

import (
	"log"
	"time"

	"elimu/database"
	"elimu/models"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// closeExpiredOpportunities transitions active opportunities whose deadline
// has passed to closed.
func closeExpiredOpportunities() {
	db := database.Database.Db

	result := db.Model(&models.Opportunity{}).
		Where("status = ? AND deadline < ?", "active", time.Now()).
		Update("status", "closed")
	if result.Error != nil {
		logScheduler("Error closing expired opportunities: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		logScheduler("Closed expired opportunities: " + time.Now().Format(time.RFC3339))
	}
}

// StartScheduler starts the background cron jobs
func StartScheduler() *cron.Cron {
	c := cron.New()

	// Hourly sweep for opportunity deadlines
	if _, err := c.AddFunc("@hourly", closeExpiredOpportunities); err != nil {
		log.Fatalf("Failed to register opportunity scheduler: %v", err)
	}

	c.Start()
	logScheduler("Scheduler started")
	return c
}
