package notification_delete

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/response"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/middlewares/identity"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/service/notification"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteNotification(r.Context(), identity.ActorFromContext(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrInvalidUserID):
			response.Error(w, h.log, http.StatusForbidden, err)
		case errors.Is(err, notification.ErrInvalidNotificationID):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, notification.ErrNotificationNotFound):
			response.Error(w, h.log, http.StatusNotFound, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
