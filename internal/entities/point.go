package entities

import (
	"math"
	"time"
)

type DeliveryPoint struct {
	ID          string
	Latitude    float64
	Longitude   float64
	Description *string
	CreatedAt   time.Time
}

type PointModify struct {
	Latitude    *float64
	Longitude   *float64
	Description *string
}

// ValidCoordinates проверяет диапазон широты и долготы, NaN и Inf отбрасываются.
func ValidCoordinates(latitude, longitude float64) bool {
	if math.IsNaN(latitude) || math.IsNaN(longitude) {
		return false
	}
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}
