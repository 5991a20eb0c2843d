package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/middleware"
	"hotelbooking/internal/modules/admin"
	"hotelbooking/internal/modules/auth"
	"hotelbooking/internal/modules/catalog"
	"hotelbooking/internal/modules/notify"
	"hotelbooking/internal/modules/reservation"
	jwtsvc "hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hotel.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Room{},
		&domain.Reservation{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	hub := notify.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(roomRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	reservationService := reservation.NewService(reservationRepo, roomRepo, notify.NewSender(hub))
	reservationHandler := reservation.NewHandler(reservationService)

	adminService := admin.NewService(userRepo, roomRepo, reservationRepo)
	adminHandler := admin.NewHandler(adminService)

	notifyHandler := notify.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			reservationHandler.RegisterRoutes(protected)

			adminOnly := protected.Group("/")
			adminOnly.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(adminOnly)
				notifyHandler.RegisterRoutes(adminOnly)
			}
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
