package product_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/dto"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/response"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/service/inventory"
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
	product, err := h.service.GetProduct(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrInvalidProductID):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, inventory.ErrProductNotFound):
			response.Error(w, h.log, http.StatusNotFound, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.ProductFromEntity(product))
}
