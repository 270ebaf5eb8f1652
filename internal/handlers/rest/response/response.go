package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/service/delivery"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Error("encode JSON response",
			logger.NewField("error", err),
		)
	}
}

// Error пишет тело ошибки. Текст внутренних ошибок наружу не отдается.
func Error(w http.ResponseWriter, log errorLogger, status int, err error) {
	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			logger.NewField("error", err),
		)
		message = "internal error"
	}

	JSON(w, log, status, ErrorBody{
		Error:   http.StatusText(status),
		Message: message,
	})
}

// DeliveryStatus выбирает код ответа по категории ошибки оркестратора доставок.
func DeliveryStatus(err error) int {
	switch {
	case errors.Is(err, delivery.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, delivery.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, delivery.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, delivery.ErrInvalidConfirmationCode):
		return http.StatusUnprocessableEntity
	case errors.Is(err, delivery.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
