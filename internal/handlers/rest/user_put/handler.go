package user_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/dto"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/response"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/middlewares/identity"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var userDTO dto.UserUpdate
	err := json.NewDecoder(r.Body).Decode(&userDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	id := mux.Vars(r)["id"]
	userModify := entities.UserModify{
		ID:       &id,
		Name:     userDTO.Name,
		Phone:    userDTO.Phone,
		Location: userDTO.Location.ToEntity(),
	}

	// Опциональные параметры
	if userDTO.Role != nil {
		role := entities.UserRole(*userDTO.Role)
		userModify.Role = &role
	}

	res, err := h.service.UpdateUser(r.Context(), identity.ActorFromContext(r.Context()), userModify)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingRequiredFields),
			errors.Is(err, user.ErrInvalidUserID),
			errors.Is(err, user.ErrInvalidName),
			errors.Is(err, user.ErrInvalidPhone),
			errors.Is(err, user.ErrInvalidRole),
			errors.Is(err, user.ErrInvalidLocation):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, user.ErrForbidden):
			response.Error(w, h.log, http.StatusForbidden, err)
		case errors.Is(err, user.ErrUserNotFound):
			response.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, user.ErrConflict):
			response.Error(w, h.log, http.StatusConflict, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.UserFromEntity(res))
}
