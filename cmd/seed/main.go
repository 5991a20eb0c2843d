package main

import (
	"log"
	"time"

	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	db, err := database.Connect("hotel.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Room{},
		&domain.Reservation{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@hotel.local",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Administrator",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@hotel.local / admin123")

	guestHash, _ := bcrypt.GenerateFromPassword([]byte("guest123"), bcrypt.DefaultCost)
	guest := domain.User{
		Email:        "guest@example.com",
		PasswordHash: string(guestHash),
		Role:         domain.RoleUser,
		Name:         "Test Guest",
	}
	db.Create(&guest)
	log.Println("Guest created: guest@example.com / guest123")

	// ================== ROOMS ==================
	log.Println("Creating rooms...")

	rooms := []domain.Room{
		{
			Type:          "Standard",
			Description:   "Cozy room with a city view",
			Capacity:      2,
			PricePerNight: 80,
			Amenities:     []string{"wifi", "tv"},
			Availability:  true,
		},
		{
			Type:          "Deluxe",
			Description:   "Spacious room with a king-size bed",
			Capacity:      2,
			PricePerNight: 140,
			Amenities:     []string{"wifi", "tv", "minibar"},
			Availability:  true,
		},
		{
			Type:          "Suite",
			Description:   "Two-room suite with a lounge area",
			Capacity:      4,
			PricePerNight: 260,
			Amenities:     []string{"wifi", "tv", "minibar", "jacuzzi"},
			Availability:  true,
		},
		{
			Type:          "Standard",
			Description:   "Under renovation",
			Capacity:      2,
			PricePerNight: 80,
			Amenities:     []string{"wifi"},
			Availability:  false,
		},
	}
	for i := range rooms {
		db.Create(&rooms[i])
	}

	// ================== RESERVATIONS ==================
	log.Println("Creating a sample reservation...")

	start := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour)
	db.Create(&domain.Reservation{
		UserID:           guest.ID,
		RoomID:           rooms[0].ID,
		StartDate:        start,
		EndDate:          start.AddDate(0, 0, 3),
		Status:           domain.ReservationBooked,
		ConfirmationCode: "seed-0001",
	})

	log.Println("Seed complete")
}
