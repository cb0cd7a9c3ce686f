package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"carrental/internal/entities"
	apperrors "carrental/internal/errors"
	"carrental/internal/repository"
	"carrental/internal/service"
)

type RentalHandler struct {
	Service *service.RentalService
	Fleet   repository.FleetReader
}

func NewRentalHandler(svc *service.RentalService, fleet repository.FleetReader) *RentalHandler {
	return &RentalHandler{Service: svc, Fleet: fleet}
}

func (h *RentalHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.WriteJSON(w, apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body"))
		return
	}
	carType, start, err := parseCarTypeAndStart(req.CarType, req.StartDate)
	if err != nil {
		apperrors.WriteJSON(w, apperrors.NewHTTPError(http.StatusBadRequest, err.Error()))
		return
	}
	available := h.Service.CheckAvailability(carType, start, req.Days)
	writeJSON(w, http.StatusOK, AvailabilityResponse{Available: available})
}

func (h *RentalHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.WriteJSON(w, apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body"))
		return
	}
	carType, start, err := parseCarTypeAndStart(req.CarType, req.StartDate)
	if err != nil {
		apperrors.WriteJSON(w, apperrors.NewHTTPError(http.StatusBadRequest, err.Error()))
		return
	}
	res, err := h.Service.ReserveCar(carType, start, req.Days)
	if err != nil {
		apperrors.WriteJSON(w, apperrors.FromDomain(err))
		return
	}
	writeJSON(w, http.StatusCreated, CreateReservationResponse{
		ReservationCode: res.Code,
		CarID:           res.CarID,
		StartDate:       res.Period.Start.Format(time.RFC3339),
		EndDate:         res.Period.End.Format(time.RFC3339),
		Message:         "Reservation confirmed.",
	})
}

func (h *RentalHandler) ListFleet(w http.ResponseWriter, r *http.Request) {
	cars := h.Fleet.Cars()
	out := make([]FleetCarResponse, 0, len(cars))
	for _, car := range cars {
		out = append(out, FleetCarResponse{
			ID:           car.ID,
			CarType:      string(car.Type),
			Reservations: len(h.Fleet.ReservationsFor(car.ID)),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func parseCarTypeAndStart(rawType, rawStart string) (entities.CarType, time.Time, error) {
	carType, err := entities.ParseCarType(rawType)
	if err != nil {
		return "", time.Time{}, err
	}
	start, err := time.Parse(time.RFC3339, rawStart)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("start_date must be RFC3339: %w", err)
	}
	return carType, start, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
