package notifications_get

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/dto"
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
	var unreadOnly bool
	if v := r.URL.Query().Get("unread"); v != "" {
		var err error
		unreadOnly, err = strconv.ParseBool(v)
		if err != nil {
			response.Error(w, h.log, http.StatusBadRequest, err)
			return
		}
	}

	list, err := h.service.ListNotifications(r.Context(), identity.ActorFromContext(r.Context()), unreadOnly)
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrInvalidUserID):
			response.Error(w, h.log, http.StatusForbidden, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.NotificationsFromEntity(list))
}
