package api

import (
	"encoding/json"
	"net/http"

	"carrental/internal/entities"
	apperrors "carrental/internal/errors"
	"carrental/internal/service"
)

type AdminHandler struct {
	Service *service.RentalService
}

func NewAdminHandler(svc *service.RentalService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// AddCar registers a new unit in the fleet. Car IDs are chosen by the
// operator and reuse of an ID is not checked here.
func (h *AdminHandler) AddCar(w http.ResponseWriter, r *http.Request) {
	var req AddCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.WriteJSON(w, apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body"))
		return
	}
	carType, err := entities.ParseCarType(req.CarType)
	if err != nil {
		apperrors.WriteJSON(w, apperrors.NewHTTPError(http.StatusBadRequest, err.Error()))
		return
	}
	h.Service.AddCar(req.CarID, carType)
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Car added to fleet."})
}
