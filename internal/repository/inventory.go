package repository

import (
	"errors"
	"time"

	"carrental/internal/entities"
)

// Business errors surfaced by Reserve. All three are ordinary outcomes of
// the reservation rules, never a sign of internal corruption, so callers
// handle them as normal control flow.
var (
	ErrInvalidDuration = errors.New("reservation must be for at least one day")
	ErrPastStartDate   = errors.New("reservation start date cannot be in the past")
	ErrNoAvailableCars = errors.New("no cars available for the requested type and dates")
)

// CarInventory is the storage capability the rental service depends on.
// MemoryCarInventory is the in-memory variant; a persistent implementation
// can be swapped in without touching the service or its callers.
type CarInventory interface {
	AddCar(car entities.Car)
	CheckAvailability(carType entities.CarType, start time.Time, days int) bool
	Reserve(carType entities.CarType, start time.Time, days int) (*entities.Reservation, error)
}

// FleetReader exposes read-only snapshots of the ledger for listings and
// reporting.
type FleetReader interface {
	Cars() []entities.Car
	ReservationsFor(carID int) []entities.Reservation
}
