package database

import (
	"log"

	"cinema_booking/config"
	"cinema_booking/constants"
	"cinema_booking/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedData creates the default admin account if it does not exist.
// Safe to run repeatedly.
func SeedData(db *gorm.DB) {
	password := config.ConfigOr("ADMIN_PASSWORD", "admin123")
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Println("failed to hash admin password:", err)
		return
	}

	admin := model.User{
		Name:     "Administrator",
		Email:    config.ConfigOr("ADMIN_EMAIL", "admin@cinema.local"),
		Password: string(bytes),
		Role:     constants.ROLE_ADMIN,
	}

	if err := db.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		log.Println("failed to seed admin account:", err)
		return
	}
	log.Println("default admin account ready:", admin.Email)
}
