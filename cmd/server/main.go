package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"carrental/internal/api"
	"carrental/internal/auth"
	"carrental/internal/entities"
	"carrental/internal/repository"
	"carrental/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

func main() {
	godotenv.Load()

	inventory := repository.NewMemoryCarInventory()
	svc := service.NewRentalService(inventory)
	if err := seedFleet(svc, os.Getenv("FLEET")); err != nil {
		log.Fatalf("Failed to seed fleet: %v", err)
	}

	authSvc, err := service.NewAdminAuthServiceFromEnv()
	if err != nil {
		log.Fatalf("Failed to configure admin auth: %v", err)
	}

	rentalHandler := api.NewRentalHandler(svc, inventory)
	adminHandler := api.NewAdminHandler(svc)
	adminAuthHandler := api.NewAdminAuthHandler(authSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/availability", rentalHandler.CheckAvailability).Methods("POST")
	r.HandleFunc("/api/reservations", rentalHandler.CreateReservation).Methods("POST")
	r.HandleFunc("/api/fleet", rentalHandler.ListFleet).Methods("GET")
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/fleet", adminHandler.AddCar).Methods("POST")

	reportSvc := service.NewFleetReportService(inventory)
	c := cron.New()
	if _, err := c.AddFunc("@hourly", reportSvc.LogUtilization); err != nil {
		log.Fatalf("Failed to schedule fleet report: %v", err)
	}
	c.Start()

	corsOrigins := handlers.AllowedOrigins(strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ","))
	corsMethods := handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"})
	corsHeaders := handlers.AllowedHeaders([]string{"Content-Type", "Authorization"})
	handler := handlers.LoggingHandler(os.Stdout, handlers.CORS(corsOrigins, corsMethods, corsHeaders)(r))

	port := getEnv("PORT", "8080")
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

// seedFleet parses FLEET entries like "1:sedan,2:suv" and registers each car.
func seedFleet(svc *service.RentalService, raw string) error {
	if raw == "" {
		return nil
	}
	for _, entry := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(entry), ":", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid fleet entry %q", entry)
		}
		id, err := strconv.Atoi(parts[0])
		if err != nil {
			return fmt.Errorf("invalid car id in fleet entry %q: %w", entry, err)
		}
		carType, err := entities.ParseCarType(parts[1])
		if err != nil {
			return fmt.Errorf("invalid fleet entry %q: %w", entry, err)
		}
		svc.AddCar(id, carType)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
