package handler

import (
	"errors"
	"time"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
)

// bookingDateRange builds the booked_at filter for the stats queries.
// Start is inclusive, end covers the whole end day.
func bookingDateRange(startDate, endDate string) (string, []interface{}, error) {
	where := "1=1"
	args := []interface{}{}
	if startDate != "" {
		start, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return "", nil, errors.New("startDate must be YYYY-MM-DD")
		}
		where += " AND booked_at >= ?"
		args = append(args, start)
	}
	if endDate != "" {
		end, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			return "", nil, errors.New("endDate must be YYYY-MM-DD")
		}
		where += " AND booked_at < ?"
		args = append(args, end.Add(24*time.Hour))
	}
	return where, args, nil
}

// GetBookingStatsSummary aggregates the booking ledger over an optional
// date range. Cancelled bookings count separately and never add revenue.
func GetBookingStatsSummary(c *fiber.Ctx) error {
	filterInput := new(model.FilterBookingInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB

	rangeWhere, args, err := bookingDateRange(filterInput.StartDate, filterInput.EndDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	type Summary struct {
		TotalBookings     int64   `json:"totalBookings"`
		ActiveBookings    int64   `json:"activeBookings"`
		CancelledBookings int64   `json:"cancelledBookings"`
		TotalRevenue      float64 `json:"totalRevenue"`
		TotalDiscount     float64 `json:"totalDiscount"`
	}

	var summary Summary
	db.Raw(`
        SELECT COUNT(*) AS total_bookings,
               COUNT(*) FILTER (WHERE is_cancelled = false) AS active_bookings,
               COUNT(*) FILTER (WHERE is_cancelled = true)  AS cancelled_bookings,
               COALESCE(SUM(total_price)    FILTER (WHERE is_cancelled = false), 0) AS total_revenue,
               COALESCE(SUM(discount_price) FILTER (WHERE is_cancelled = false), 0) AS total_discount
        FROM bookings
        WHERE deleted_at IS NULL AND `+rangeWhere, args...).Scan(&summary)

	type PaymentRow struct {
		PaymentMethod string  `json:"paymentMethod"`
		Count         int64   `json:"count"`
		Revenue       float64 `json:"revenue"`
	}
	var byPayment []PaymentRow
	db.Raw(`
        SELECT payment_method,
               COUNT(*) AS count,
               COALESCE(SUM(total_price), 0) AS revenue
        FROM bookings
        WHERE deleted_at IS NULL AND is_cancelled = false AND `+rangeWhere+`
        GROUP BY payment_method
        ORDER BY revenue DESC`, args...).Scan(&byPayment)

	type ShowtimeRow struct {
		ShowtimeId uint    `json:"showtimeId"`
		Count      int64   `json:"count"`
		Revenue    float64 `json:"revenue"`
	}
	var byShowtime []ShowtimeRow
	db.Raw(`
        SELECT showtime_id,
               COUNT(*) AS count,
               COALESCE(SUM(total_price), 0) AS revenue
        FROM bookings
        WHERE deleted_at IS NULL AND is_cancelled = false AND `+rangeWhere+`
        GROUP BY showtime_id
        ORDER BY revenue DESC`, args...).Scan(&byShowtime)

	var overTime []BookingDayRow
	db.Raw(`
        SELECT TO_CHAR(booked_at::date, 'YYYY-MM-DD') AS day,
               COUNT(*) AS bookings,
               COALESCE(SUM(total_price), 0) AS revenue
        FROM bookings
        WHERE deleted_at IS NULL AND is_cancelled = false AND `+rangeWhere+`
        GROUP BY booked_at::date
        ORDER BY day ASC`, args...).Scan(&overTime)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"summary":           summary,
		"revenueByPayment":  byPayment,
		"revenueByShowtime": byShowtime,
		"bookingsOverTime":  overTime,
	})
}

type BookingDayRow struct {
	Day      string  `json:"day"`
	Bookings int64   `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// GetDashboardStats powers the admin landing page: headline counts, today
// vs yesterday growth, revenue breakdowns and the latest bookings.
func GetDashboardStats(c *fiber.Ctx) error {
	db := database.DB

	type Stats struct {
		Movies       int64 `json:"movies"`
		ActiveMovies int64 `json:"activeMovies"`
		Rooms        int64 `json:"rooms"`
		Showtimes    int64 `json:"showtimes"`
		Bookings     int64 `json:"bookings"`

		TodayRevenue  float64 `json:"todayRevenue"`
		TodayBookings int64   `json:"todayBookings"`
		RevenueGrowth float64 `json:"revenueGrowth"`
		BookingGrowth float64 `json:"bookingGrowth"`
	}

	var stats Stats
	today := time.Now().In(time.Local)
	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Second)

	db.Model(&model.Movie{}).Count(&stats.Movies)

	// movies with at least one upcoming showtime still on the schedule
	db.Raw(`
        SELECT COUNT(DISTINCT movie_id)
        FROM showtimes
        WHERE status = ? AND date >= CURRENT_DATE AND deleted_at IS NULL
    `, constants.SHOWTIME_SCHEDULED).Scan(&stats.ActiveMovies)

	db.Model(&model.Room{}).Count(&stats.Rooms)
	db.Model(&model.Showtime{}).Count(&stats.Showtimes)
	db.Model(&model.Booking{}).Where("is_cancelled = ?", false).Count(&stats.Bookings)

	db.Raw(`
        SELECT COALESCE(SUM(total_price), 0)
        FROM bookings
        WHERE is_cancelled = false AND deleted_at IS NULL
          AND booked_at BETWEEN ? AND ?
    `, todayStart, todayEnd).Scan(&stats.TodayRevenue)

	db.Model(&model.Booking{}).
		Where("is_cancelled = ? AND booked_at BETWEEN ? AND ?", false, todayStart, todayEnd).
		Count(&stats.TodayBookings)

	yesterdayStart := todayStart.AddDate(0, 0, -1)
	yesterdayEnd := todayEnd.AddDate(0, 0, -1)

	var yesterdayRevenue float64
	var yesterdayBookings int64

	db.Raw(`
        SELECT COALESCE(SUM(total_price), 0)
        FROM bookings
        WHERE is_cancelled = false AND deleted_at IS NULL
          AND booked_at BETWEEN ? AND ?
    `, yesterdayStart, yesterdayEnd).Scan(&yesterdayRevenue)

	db.Model(&model.Booking{}).
		Where("is_cancelled = ? AND booked_at BETWEEN ? AND ?", false, yesterdayStart, yesterdayEnd).
		Count(&yesterdayBookings)

	stats.RevenueGrowth = utils.CalculateGrowth(stats.TodayRevenue, yesterdayRevenue)
	stats.BookingGrowth = utils.CalculateGrowth(float64(stats.TodayBookings), float64(yesterdayBookings))

	// last 7 days of bookings for the chart
	var overTime []BookingDayRow
	db.Raw(`
        SELECT TO_CHAR(booked_at::date, 'YYYY-MM-DD') AS day,
               COUNT(*) AS bookings,
               COALESCE(SUM(total_price), 0) AS revenue
        FROM bookings
        WHERE is_cancelled = false AND deleted_at IS NULL
          AND booked_at >= ?
        GROUP BY booked_at::date
        ORDER BY day ASC
    `, todayStart.AddDate(0, 0, -6)).Scan(&overTime)

	type MovieRow struct {
		MovieId uint    `json:"movieId"`
		Title   string  `json:"title"`
		Count   int64   `json:"count"`
		Revenue float64 `json:"revenue"`
	}
	var byMovie []MovieRow
	db.Raw(`
        SELECT m.id AS movie_id,
               m.title,
               COUNT(b.id) AS count,
               COALESCE(SUM(b.total_price), 0) AS revenue
        FROM bookings b
        JOIN showtimes s ON s.id = b.showtime_id
        JOIN movies m ON m.id = s.movie_id
        WHERE b.is_cancelled = false AND b.deleted_at IS NULL
        GROUP BY m.id, m.title
        ORDER BY revenue DESC
        LIMIT 10`).Scan(&byMovie)

	type CustomerRow struct {
		CustomerName  string  `json:"customerName"`
		CustomerPhone string  `json:"customerPhone"`
		Count         int64   `json:"count"`
		Spent         float64 `json:"spent"`
	}
	var topCustomers []CustomerRow
	db.Raw(`
        SELECT customer_name,
               customer_phone,
               COUNT(*) AS count,
               COALESCE(SUM(total_price), 0) AS spent
        FROM bookings
        WHERE is_cancelled = false AND deleted_at IS NULL
        GROUP BY customer_name, customer_phone
        ORDER BY spent DESC
        LIMIT 5`).Scan(&topCustomers)

	var latest []model.Booking
	db.Order("id DESC").Limit(5).Find(&latest)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"stats":            stats,
		"bookingsOverTime": overTime,
		"revenueByMovie":   byMovie,
		"topCustomers":     topCustomers,
		"latestBookings":   latest,
	})
}
