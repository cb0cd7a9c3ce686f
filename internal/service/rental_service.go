package service

import (
	"time"

	"carrental/internal/entities"
	"carrental/internal/repository"
)

// RentalService is the entry point callers use. Every method is a direct
// delegation to the inventory, which stays the sole owner of the ledger;
// the indirection exists so a persistent inventory can replace the
// in-memory one without touching callers.
type RentalService struct {
	Inventory repository.CarInventory
}

func NewRentalService(inventory repository.CarInventory) *RentalService {
	return &RentalService{Inventory: inventory}
}

// AddCar registers a new unit of the given type in the fleet.
func (s *RentalService) AddCar(id int, carType entities.CarType) {
	s.Inventory.AddCar(entities.Car{ID: id, Type: carType})
}

// CheckAvailability reports whether any car of the type is free for the
// whole requested period.
func (s *RentalService) CheckAvailability(carType entities.CarType, start time.Time, days int) bool {
	return s.Inventory.CheckAvailability(carType, start, days)
}

// ReserveCar books the first free car of the type for the requested period.
func (s *RentalService) ReserveCar(carType entities.CarType, start time.Time, days int) (*entities.Reservation, error) {
	return s.Inventory.Reserve(carType, start, days)
}
