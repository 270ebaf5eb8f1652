package entities

import "time"

type ProofOfDelivery struct {
	ID          string
	DeliveryID  string
	OTP         string
	PhotoURL    *string
	Signature   *string
	Latitude    float64
	Longitude   float64
	DeliveredAt time.Time
}

type ProofSubmission struct {
	OTP       string
	Latitude  *float64
	Longitude *float64
	PhotoURL  *string
	Signature *string
}
