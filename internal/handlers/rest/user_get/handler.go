package user_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/dto"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/response"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/service/user"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userEntity, err := h.service.GetUser(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound):
			response.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, user.ErrInvalidUserID):
			response.Error(w, h.log, http.StatusBadRequest, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.UserFromEntity(userEntity))
}
