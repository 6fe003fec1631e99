package router

import (
	"cinema_booking/handler"
	"cinema_booking/middleware"
	"cinema_booking/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)
	auth.Get("/check", middleware.Protected(), handler.CheckAuth)
	auth.Post("/add-user", middleware.Protected(), validate.AddUser(), handler.AddUser)

	movie := v1.Group("/movies", logger.New())
	movie.Get("/", middleware.Protected(), handler.GetMovies)
	movie.Get("/:movieId", middleware.Protected(), validate.GetById("movieId"), handler.GetMovieById)
	movie.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateMovie(), handler.CreateMovie)
	movie.Put("/:movieId", middleware.Protected(), middleware.AdminOnly(), validate.EditMovie("movieId"), handler.UpdateMovie)
	movie.Delete("/", middleware.Protected(), middleware.AdminOnly(), validate.Delete(), handler.DeleteMovies)
	movie.Delete("/:movieId", middleware.Protected(), middleware.AdminOnly(), validate.GetById("movieId"), handler.DeleteMovie)

	room := v1.Group("/rooms", logger.New())
	room.Get("/", middleware.Protected(), handler.GetRooms)
	room.Get("/:roomId", middleware.Protected(), validate.GetById("roomId"), handler.GetRoomById)
	room.Post("/", middleware.Protected(), validate.CreateRoom(), handler.CreateRoom)
	room.Put("/:roomId", middleware.Protected(), validate.EditRoom("roomId"), handler.UpdateRoom)
	room.Delete("/:roomId", middleware.Protected(), validate.GetById("roomId"), handler.DeleteRoom)

	showtime := v1.Group("/showtimes", logger.New())
	showtime.Get("/", middleware.Protected(), handler.GetShowtimes)
	showtime.Get("/:showtimeId", middleware.Protected(), validate.GetById("showtimeId"), handler.GetShowtimeById)
	showtime.Get("/:showtimeId/seats", middleware.Protected(), validate.GetById("showtimeId"), handler.GetShowtimeSeats)
	showtime.Post("/", middleware.Protected(), validate.CreateShowtime(), handler.CreateShowtime)
	showtime.Put("/:showtimeId", middleware.Protected(), validate.EditShowtime("showtimeId"), handler.UpdateShowtime)
	showtime.Delete("/:showtimeId", middleware.Protected(), middleware.AdminOnly(), validate.GetById("showtimeId"), handler.DeleteShowtime)

	booking := v1.Group("/bookings", logger.New())
	booking.Post("/", middleware.Protected(), validate.CreateBooking(), handler.CreateBooking)
	booking.Get("/", middleware.Protected(), handler.GetBookings)
	booking.Get("/stats/summary", middleware.Protected(), handler.GetBookingStatsSummary)
	booking.Get("/:bookingId", middleware.Protected(), validate.GetById("bookingId"), handler.GetBookingById)
	booking.Get("/:bookingId/qrcode", middleware.Protected(), validate.GetById("bookingId"), handler.GetBookingQRCode)
	booking.Put("/cancel/:bookingId", middleware.Protected(), validate.GetById("bookingId"), handler.CancelBooking)

	dashboard := v1.Group("/dashboard", logger.New())
	dashboard.Get("/stats", middleware.Protected(), middleware.AdminOnly(), handler.GetDashboardStats)

	student := v1.Group("/students", logger.New())
	student.Get("/", middleware.Protected(), handler.GetStudents)
	student.Get("/:studentId", middleware.Protected(), validate.GetById("studentId"), handler.GetStudentById)
	student.Post("/", middleware.Protected(), validate.CreateStudent(), handler.CreateStudent)
	student.Put("/:studentId", middleware.Protected(), validate.GetById("studentId"), handler.UpdateStudent)
	student.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteStudents)
	student.Delete("/:studentId", middleware.Protected(), validate.GetById("studentId"), handler.DeleteStudent)

	course := v1.Group("/courses", logger.New())
	course.Get("/", middleware.Protected(), handler.GetCourses)
	course.Get("/:courseId", middleware.Protected(), validate.GetById("courseId"), handler.GetCourseById)
	course.Post("/", middleware.Protected(), validate.CreateCourse(), handler.CreateCourse)
	course.Put("/:courseId", middleware.Protected(), validate.GetById("courseId"), handler.UpdateCourse)
	course.Delete("/:courseId", middleware.Protected(), validate.GetById("courseId"), handler.DeleteCourse)

	// live seat map
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/showtimes/:id/seats", websocket.New(handler.SeatWebsocket))
}
