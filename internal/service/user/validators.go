package user

import (
	"strings"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if len(phone) < 2 || !strings.HasPrefix(phone, "+") {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidLocation(location *entities.Location) bool {
	return location == nil || entities.ValidCoordinates(location.Latitude, location.Longitude)
}
