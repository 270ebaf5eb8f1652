package point

import "time"

type PointDB struct {
	ID          string
	Latitude    float64
	Longitude   float64
	Description *string
	CreatedAt   time.Time
}
