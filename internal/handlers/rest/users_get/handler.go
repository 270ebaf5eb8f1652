package users_get

import (
	"errors"
	"net/http"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
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
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP поддерживает фильтр ?role=courier для выбора курьера при назначении.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var role *entities.UserRole
	if v := r.URL.Query().Get("role"); v != "" {
		userRole := entities.UserRole(v)
		role = &userRole
	}

	userEntities, err := h.service.GetUsers(r.Context(), role)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidRole):
			response.Error(w, h.log, http.StatusBadRequest, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.UsersFromEntity(userEntities))
}
