package main

import (
	"flag"
	"log"

	"cinema_booking/config"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	seed := flag.Bool("seed", false, "seed the default admin account and exit")
	flag.Parse()

	database.ConnectDB()

	if *seed {
		database.SeedData(database.DB)
		return
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // poster uploads
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	helper.StartShowtimeScheduler()
	defer helper.StopShowtimeScheduler()
	helper.StartMirrorAuditScheduler()
	defer helper.StopMirrorAuditScheduler()

	app.Static("/uploads", "./uploads")

	router.SetupRoutes(app)

	port := config.ConfigOr("PORT", "8002")
	log.Fatal(app.Listen(":" + port))
}
