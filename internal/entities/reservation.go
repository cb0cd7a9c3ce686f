package entities

// Reservation binds one physical car to a rental period. It is created only
// by a successful reserve and never changes afterwards; there is no
// cancelled or expired state.
type Reservation struct {
	Code   string       `json:"reservation_code"`
	CarID  int          `json:"car_id"`
	Period RentalPeriod `json:"period"`
}
