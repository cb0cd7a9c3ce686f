package entities

import (
	"fmt"
	"strings"
)

// CarType is the class of vehicle used as the unit of fungibility: any car
// of a type satisfies a request for that type.
type CarType string

const (
	Sedan CarType = "sedan"
	SUV   CarType = "suv"
	Van   CarType = "van"
)

// ParseCarType maps a request string onto the closed set of car types.
func ParseCarType(s string) (CarType, error) {
	switch t := CarType(strings.ToLower(strings.TrimSpace(s))); t {
	case Sedan, SUV, Van:
		return t, nil
	}
	return "", fmt.Errorf("unknown car type %q", s)
}

// Car is a physical unit of the fleet. IDs are assigned by the operator;
// cars are never mutated or removed once added.
type Car struct {
	ID   int     `json:"id"`
	Type CarType `json:"car_type"`
}
