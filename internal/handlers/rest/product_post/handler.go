package product_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/dto"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/response"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/middlewares/identity"
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
	var productDTO dto.ProductCreate
	err := json.NewDecoder(r.Body).Decode(&productDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	productModify := entities.ProductModify{
		SellerID: productDTO.SellerID,
		Name:     productDTO.Name,
		Price:    productDTO.Price,
		Stock:    productDTO.Stock,
	}

	product, err := h.service.CreateProduct(r.Context(), identity.ActorFromContext(r.Context()), productModify)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrForbidden):
			response.Error(w, h.log, http.StatusForbidden, err)
		case errors.Is(err, inventory.ErrMissingRequiredFields),
			errors.Is(err, inventory.ErrInvalidName),
			errors.Is(err, inventory.ErrInvalidPrice),
			errors.Is(err, inventory.ErrInvalidStock):
			response.Error(w, h.log, http.StatusBadRequest, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusCreated, dto.ProductFromEntity(product))
}
