package services

import (
	"database/sql"
	"log"
	"time"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 11:30 PM (23:30)
			if now.Hour() == 23 && now.Minute() == 30 {
				log.Println("Triggering scheduled tasks [23:30]...")

				// Nightly payment ledger audit
				drifts, err := AuditPaymentLedger(db)
				if err != nil {
					log.Printf("Error auditing payment ledger: %v", err)
				} else if len(drifts) == 0 {
					log.Println("Payment ledger audit clean")
				} else {
					log.Printf("Payment ledger audit found %d drifted center-series pairs", len(drifts))
				}
			}
		}
	}()
}
