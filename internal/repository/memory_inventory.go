package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"carrental/internal/entities"
)

// MemoryCarInventory keeps the fleet and its reservation ledger in memory.
// The mutex keeps the scan-then-append in Reserve atomic, so two concurrent
// requests can never both commit overlapping periods on the same car.
type MemoryCarInventory struct {
	mu           sync.RWMutex
	cars         []entities.Car
	reservations map[int][]entities.Reservation
}

func NewMemoryCarInventory() *MemoryCarInventory {
	return &MemoryCarInventory{
		reservations: make(map[int][]entities.Reservation),
	}
}

// AddCar appends a car to the fleet. Uniqueness of IDs is the operator's
// responsibility; duplicates are not rejected here.
func (inv *MemoryCarInventory) AddCar(car entities.Car) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.cars = append(inv.cars, car)
}

// CheckAvailability reports whether at least one car of the type is free
// for the whole requested period. Pure query; the ledger is never touched.
func (inv *MemoryCarInventory) CheckAvailability(carType entities.CarType, start time.Time, days int) bool {
	period := entities.NewRentalPeriod(start, days)

	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.firstFreeCar(carType, period) != nil
}

// Reserve commits the first free car of the type for the requested period.
// The ledger is left unchanged on every error path.
func (inv *MemoryCarInventory) Reserve(carType entities.CarType, start time.Time, days int) (*entities.Reservation, error) {
	if days <= 0 {
		return nil, ErrInvalidDuration
	}
	if start.Before(time.Now()) {
		return nil, ErrPastStartDate
	}
	period := entities.NewRentalPeriod(start, days)

	inv.mu.Lock()
	defer inv.mu.Unlock()

	car := inv.firstFreeCar(carType, period)
	if car == nil {
		return nil, ErrNoAvailableCars
	}

	res := entities.Reservation{
		Code:   uuid.New().String(),
		CarID:  car.ID,
		Period: period,
	}
	inv.reservations[car.ID] = append(inv.reservations[car.ID], res)
	return &res, nil
}

// firstFreeCar scans the fleet in insertion order and returns the first car
// of the type with no conflicting reservation. Callers hold the lock.
func (inv *MemoryCarInventory) firstFreeCar(carType entities.CarType, period entities.RentalPeriod) *entities.Car {
	for i := range inv.cars {
		car := &inv.cars[i]
		if car.Type != carType {
			continue
		}
		if !inv.isCarReserved(car.ID, period) {
			return car
		}
	}
	return nil
}

func (inv *MemoryCarInventory) isCarReserved(carID int, period entities.RentalPeriod) bool {
	for _, res := range inv.reservations[carID] {
		if period.Conflicts(res.Period) {
			return true
		}
	}
	return false
}

// Cars returns a snapshot of the fleet in insertion order.
func (inv *MemoryCarInventory) Cars() []entities.Car {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	out := make([]entities.Car, len(inv.cars))
	copy(out, inv.cars)
	return out
}

// ReservationsFor returns a snapshot of a car's committed reservations.
func (inv *MemoryCarInventory) ReservationsFor(carID int) []entities.Reservation {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	out := make([]entities.Reservation, len(inv.reservations[carID]))
	copy(out, inv.reservations[carID])
	return out
}
