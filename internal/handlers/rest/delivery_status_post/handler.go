package delivery_status_post

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/dto"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/response"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/middlewares/identity"
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
	var statusDTO dto.DeliveryStatusRequest
	err := json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	deliveryEntity, err := h.service.AdvanceStatus(
		r.Context(),
		identity.ActorFromContext(r.Context()),
		mux.Vars(r)["id"],
		entities.DeliveryStatus(statusDTO.Status),
	)
	if err != nil {
		response.Error(w, h.log, response.DeliveryStatus(err), err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.DeliveryFromEntity(deliveryEntity))
}
