package helper

import (
	"log"
	"strconv"
	"strings"
	"time"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/model"

	"github.com/robfig/cron/v3"
)

var scheduler *cron.Cron

func StartShowtimeScheduler() {
	scheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := scheduler.AddFunc("*/5 * * * *", UpdateExpiredShowtimes)
	if err != nil {
		log.Printf("showtime scheduler init failed: %v", err)
		return
	}

	scheduler.Start()
	log.Println("showtime scheduler started (every 5 minutes)")
}

// UpdateExpiredShowtimes marks scheduled showtimes whose start has passed
// as expired. Start is stored as a date column plus a "HH:MM" string, so
// the comparison happens here instead of in SQL.
func UpdateExpiredShowtimes() {
	var showtimes []model.Showtime
	err := database.DB.
		Where("status = ?", constants.SHOWTIME_SCHEDULED).
		Find(&showtimes).Error
	if err != nil {
		log.Printf("loading scheduled showtimes failed: %v", err)
		return
	}

	now := time.Now()
	expired := 0
	for _, st := range showtimes {
		if !ShowtimeStart(st.Date, st.Time).Before(now) {
			continue
		}
		result := database.DB.Model(&model.Showtime{}).
			Where("id = ?", st.ID).
			Update("status", constants.SHOWTIME_EXPIRED)
		if result.Error != nil {
			log.Printf("expiring showtime %d failed: %v", st.ID, result.Error)
			continue
		}
		expired++
	}

	if expired > 0 {
		log.Printf("marked %d showtimes as expired", expired)
	}
}

func StopShowtimeScheduler() {
	if scheduler != nil {
		scheduler.Stop()
		log.Println("showtime scheduler stopped")
	}
}

// ShowtimeStart combines the stored date with the "HH:MM" start string.
// A malformed time string falls back to midnight of the stored date.
func ShowtimeStart(date time.Time, clock string) time.Time {
	hour, minute := 0, 0
	parts := strings.Split(clock, ":")
	if len(parts) == 2 {
		hour, _ = strconv.Atoi(parts[0])
		minute, _ = strconv.Atoi(parts[1])
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

// FormatTime normalizes a clock slot to "15:04".
func FormatTime(hour, minute int) string {
	return time.Date(0, 0, 0, hour, minute, 0, 0, time.Local).Format("15:04")
}
