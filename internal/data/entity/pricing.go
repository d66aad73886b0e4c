package entity

import (
	"math"
)

// NextPrice returns the event price after one successful registration:
// a 10% increase rounded up to the next whole number.
func NextPrice(current float64) float64 {
	return math.Ceil(current * 1.1)
}
