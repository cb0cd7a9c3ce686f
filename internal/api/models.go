package api

// Availability
type AvailabilityRequest struct {
	CarType   string `json:"car_type"`
	StartDate string `json:"start_date"`
	Days      int    `json:"days"`
}
type AvailabilityResponse struct {
	Available bool `json:"available"`
}

// Reservation
type CreateReservationRequest struct {
	CarType   string `json:"car_type"`
	StartDate string `json:"start_date"`
	Days      int    `json:"days"`
}
type CreateReservationResponse struct {
	ReservationCode string `json:"reservation_code"`
	CarID           int    `json:"car_id"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	Message         string `json:"message"`
}

// Fleet
type FleetCarResponse struct {
	ID           int    `json:"id"`
	CarType      string `json:"car_type"`
	Reservations int    `json:"reservations"`
}
type AddCarRequest struct {
	CarID   int    `json:"car_id"`
	CarType string `json:"car_type"`
}

// Admin auth
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type LoginResponse struct {
	Token string `json:"token"`
}
