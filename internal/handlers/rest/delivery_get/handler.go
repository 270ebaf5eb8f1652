package delivery_get

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/dto"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/response"
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
	id := mux.Vars(r)["id"]

	details, err := h.service.GetDelivery(r.Context(), id)
	if err != nil {
		response.Error(w, h.log, response.DeliveryStatus(err), err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.DeliveryDetailsFromEntity(details))
}
