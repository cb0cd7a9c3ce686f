package repository

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrental/internal/entities"
)

func newTestInventory() *MemoryCarInventory {
	inv := NewMemoryCarInventory()
	inv.AddCar(entities.Car{ID: 1, Type: entities.Sedan})
	inv.AddCar(entities.Car{ID: 2, Type: entities.Sedan})
	inv.AddCar(entities.Car{ID: 3, Type: entities.SUV})
	inv.AddCar(entities.Car{ID: 4, Type: entities.Van})
	return inv
}

func futureDate(daysAhead int) time.Time {
	return time.Now().Add(time.Duration(daysAhead) * 24 * time.Hour)
}

func TestReserveSuccess(t *testing.T) {
	inv := newTestInventory()

	res, err := inv.Reserve(entities.Sedan, futureDate(1), 3)
	require.NoError(t, err)
	assert.Equal(t, 1, res.CarID)
	assert.NotEmpty(t, res.Code)
	assert.Contains(t, inv.ReservationsFor(res.CarID), *res)
}

func TestReserveFirstFitBindsDistinctCars(t *testing.T) {
	inv := newTestInventory()
	start := futureDate(1)

	first, err := inv.Reserve(entities.Sedan, start, 3)
	require.NoError(t, err)
	second, err := inv.Reserve(entities.Sedan, start, 3)
	require.NoError(t, err)

	assert.Equal(t, 1, first.CarID)
	assert.Equal(t, 2, second.CarID)
}

func TestReserveExhaustsType(t *testing.T) {
	inv := newTestInventory()
	start := futureDate(1)

	_, err := inv.Reserve(entities.Van, start, 3)
	require.NoError(t, err)

	_, err = inv.Reserve(entities.Van, start, 3)
	assert.ErrorIs(t, err, ErrNoAvailableCars)
}

func TestReserveSameCarForDisjointPeriods(t *testing.T) {
	inv := newTestInventory()

	first, err := inv.Reserve(entities.SUV, futureDate(1), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, first.CarID)

	_, err = inv.Reserve(entities.SUV, futureDate(1), 3)
	require.ErrorIs(t, err, ErrNoAvailableCars)

	second, err := inv.Reserve(entities.SUV, futureDate(5), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, second.CarID)
}

func TestReserveBackToBackPeriods(t *testing.T) {
	inv := newTestInventory()
	start := futureDate(1)

	first, err := inv.Reserve(entities.Van, start, 3)
	require.NoError(t, err)

	// The second rental starts exactly when the first ends; the half-open
	// boundary leaves that instant free.
	second, err := inv.Reserve(entities.Van, start.Add(3*24*time.Hour), 2)
	require.NoError(t, err)
	assert.Equal(t, first.CarID, second.CarID)
}

func TestReserveInvalidDuration(t *testing.T) {
	inv := newTestInventory()

	for _, days := range []int{0, -5} {
		_, err := inv.Reserve(entities.Sedan, futureDate(1), days)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	}
}

func TestReservePastStartDate(t *testing.T) {
	inv := newTestInventory()

	_, err := inv.Reserve(entities.SUV, time.Now().Add(-24*time.Hour), 3)
	assert.ErrorIs(t, err, ErrPastStartDate)
}

func TestFailedReserveLeavesLedgerUnchanged(t *testing.T) {
	inv := newTestInventory()

	_, err := inv.Reserve(entities.Van, futureDate(1), 3)
	require.NoError(t, err)

	_, err = inv.Reserve(entities.Van, futureDate(2), 3)
	require.ErrorIs(t, err, ErrNoAvailableCars)
	assert.Len(t, inv.ReservationsFor(4), 1)
}

func TestCheckAvailabilityMatchesReserve(t *testing.T) {
	inv := newTestInventory()
	start := futureDate(1)

	require.True(t, inv.CheckAvailability(entities.SUV, start, 3))
	_, err := inv.Reserve(entities.SUV, start, 3)
	require.NoError(t, err)

	assert.False(t, inv.CheckAvailability(entities.SUV, start, 3))
	assert.True(t, inv.CheckAvailability(entities.SUV, futureDate(4), 3))
}

func TestCheckAvailabilityEmptyFleet(t *testing.T) {
	inv := NewMemoryCarInventory()
	assert.False(t, inv.CheckAvailability(entities.Sedan, futureDate(1), 3))
}

func TestNoDoubleBooking(t *testing.T) {
	inv := newTestInventory()

	// Fire a mix of overlapping and disjoint requests, then verify the
	// ledger holds no conflicting pair on any car.
	for i := 0; i < 40; i++ {
		inv.Reserve(entities.Sedan, futureDate(1+i%7), 1+i%5)
		inv.Reserve(entities.SUV, futureDate(1+i%7), 1+i%5)
	}

	for _, car := range inv.Cars() {
		booked := inv.ReservationsFor(car.ID)
		for i := 0; i < len(booked); i++ {
			for j := i + 1; j < len(booked); j++ {
				assert.False(t, booked[i].Period.Conflicts(booked[j].Period),
					"car %d holds overlapping reservations %v and %v", car.ID, booked[i], booked[j])
			}
		}
	}
}

func TestConcurrentReservesNeverOverbook(t *testing.T) {
	inv := NewMemoryCarInventory()
	inv.AddCar(entities.Car{ID: 1, Type: entities.Sedan})
	inv.AddCar(entities.Car{ID: 2, Type: entities.Sedan})

	start := futureDate(1)
	errs := make(chan error, 10)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := inv.Reserve(entities.Sedan, start, 3)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded int
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrNoAvailableCars)
		}
	}
	assert.Equal(t, 2, succeeded)
	assert.Len(t, inv.ReservationsFor(1), 1)
	assert.Len(t, inv.ReservationsFor(2), 1)
}

func TestLargeFleetFirstFit(t *testing.T) {
	inv := NewMemoryCarInventory()
	for id := 1000; id < 1050; id++ {
		inv.AddCar(entities.Car{ID: id, Type: entities.Sedan})
	}

	start := futureDate(1)
	seen := make(map[int]bool)
	for i := 0; i < 50; i++ {
		res, err := inv.Reserve(entities.Sedan, start, 3)
		require.NoError(t, err)
		assert.False(t, seen[res.CarID], "car %d reserved twice for the same period", res.CarID)
		seen[res.CarID] = true
	}

	_, err := inv.Reserve(entities.Sedan, start, 3)
	assert.ErrorIs(t, err, ErrNoAvailableCars)
}
