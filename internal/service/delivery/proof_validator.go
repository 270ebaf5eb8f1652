package delivery

import "github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"

// ValidateProof проверяет подтверждение доставки без обращения к хранилищу:
// наличие и диапазон координат, затем совпадение OTP с кодом доставки.
// Пустой код доставки не сверяется.
func ValidateProof(delivery *entities.Delivery, submission entities.ProofSubmission) error {
	if submission.Latitude == nil || submission.Longitude == nil {
		return ErrMissingCoordinates
	}
	if !entities.ValidCoordinates(*submission.Latitude, *submission.Longitude) {
		return ErrInvalidCoordinates
	}

	if delivery.ConfirmationCode != "" && submission.OTP != delivery.ConfirmationCode {
		return ErrInvalidConfirmationCode
	}
	return nil
}
