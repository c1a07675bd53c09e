package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/Achawin1998/tours-travel-backend/internal/config"
	"github.com/Achawin1998/tours-travel-backend/internal/database"
	"github.com/Achawin1998/tours-travel-backend/internal/handler"
	"github.com/Achawin1998/tours-travel-backend/internal/queue"
	"github.com/Achawin1998/tours-travel-backend/internal/repository"
	"github.com/Achawin1998/tours-travel-backend/internal/router"
	"github.com/Achawin1998/tours-travel-backend/internal/service"
)

func main() {
	// A local .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("connect to mysql: %v", err)
	}
	defer db.Close()
	log.Println("connected to MySQL")

	users := repository.NewUserRepo(db)
	tours := repository.NewTourRepo(db)
	reviews := repository.NewReviewRepo(db)
	bookings := repository.NewBookingRepo(db)

	authHandler := handler.NewAuthHandler(cfg, users)
	userHandler := handler.NewUserHandler(cfg, users)
	tourHandler := handler.NewTourHandler(tours)
	reviewHandler := handler.NewReviewHandler(reviews)
	bookingHandler := handler.NewBookingHandler(bookings, service.BookingEvents{})

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler)
	router.RegisterTours(e, tourHandler, reviewHandler, cfg.JWTSecret)
	router.RegisterBookings(e, bookingHandler, cfg.JWTSecret)
	router.RegisterUsers(e, userHandler, cfg.JWTSecret)

	// Background consumer mirrors booking events into logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
