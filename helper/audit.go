package helper

import (
	"log"

	"cinema_booking/database"

	"github.com/go-co-op/gocron/v2"
)

var auditScheduler gocron.Scheduler

// AuditOccupancyMirror reconciles the denormalized seat→booking references
// with the booking ledger. The ledger wins: seats pointing at cancelled or
// missing bookings are released, and active bookings missing their mirror
// get it restored. A non-zero repair count means a booking or cancellation
// transaction was interrupted and should be investigated.
func AuditOccupancyMirror() {
	db := database.DB

	stale := db.Exec(`
		UPDATE seats SET booking_id = NULL
		WHERE booking_id IS NOT NULL
		  AND booking_id NOT IN (
			SELECT id FROM bookings
			WHERE is_cancelled = false AND deleted_at IS NULL
		  )`)
	if stale.Error != nil {
		log.Printf("[AUDIT] releasing stale seat mirrors failed: %v", stale.Error)
		return
	}

	missing := db.Exec(`
		UPDATE seats SET booking_id = b.id
		FROM bookings b
		WHERE b.seat_id = seats.id
		  AND b.is_cancelled = false AND b.deleted_at IS NULL
		  AND (seats.booking_id IS NULL OR seats.booking_id <> b.id)`)
	if missing.Error != nil {
		log.Printf("[AUDIT] restoring seat mirrors failed: %v", missing.Error)
		return
	}

	if stale.RowsAffected > 0 || missing.RowsAffected > 0 {
		log.Printf("[AUDIT] occupancy mirror repaired: released=%d restored=%d",
			stale.RowsAffected, missing.RowsAffected)
	}
}

func StartMirrorAuditScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	auditScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(3, 30, 0),
			),
		),
		gocron.NewTask(AuditOccupancyMirror),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("occupancy mirror audit scheduler started (03:30 daily)")
}

func StopMirrorAuditScheduler() {
	if auditScheduler != nil {
		_ = auditScheduler.Shutdown()
	}
}
