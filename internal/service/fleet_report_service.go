package service

import (
	"log"
	"time"

	"carrental/internal/entities"
	"carrental/internal/repository"
)

// FleetReportService logs periodic utilization snapshots of the ledger.
// It only reads; reservations have no further lifecycle to advance.
type FleetReportService struct {
	Fleet repository.FleetReader
}

func NewFleetReportService(fleet repository.FleetReader) *FleetReportService {
	return &FleetReportService{Fleet: fleet}
}

// LogUtilization reports, per car type, how many units the fleet holds and
// how many are booked at some point during the next 24 hours.
func (s *FleetReportService) LogUtilization() {
	window := entities.NewRentalPeriod(time.Now(), 1)

	totals := make(map[entities.CarType]int)
	booked := make(map[entities.CarType]int)
	for _, car := range s.Fleet.Cars() {
		totals[car.Type]++
		for _, res := range s.Fleet.ReservationsFor(car.ID) {
			if res.Period.Conflicts(window) {
				booked[car.Type]++
				break
			}
		}
	}

	for _, carType := range []entities.CarType{entities.Sedan, entities.SUV, entities.Van} {
		log.Printf("Fleet report: %s units=%d booked_next_24h=%d", carType, totals[carType], booked[carType])
	}
}
