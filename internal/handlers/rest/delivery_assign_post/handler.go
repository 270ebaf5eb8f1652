package delivery_assign_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

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

// ServeHTTP принимает пустое тело: курьер назначает сам себя.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var assignDTO dto.DeliveryAssignRequest
	err := json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil && !errors.Is(err, io.EOF) {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	deliveryEntity, err := h.service.AssignCourier(
		r.Context(),
		identity.ActorFromContext(r.Context()),
		mux.Vars(r)["id"],
		assignDTO.CourierID,
	)
	if err != nil {
		response.Error(w, h.log, response.DeliveryStatus(err), err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.DeliveryFromEntity(deliveryEntity))
}
