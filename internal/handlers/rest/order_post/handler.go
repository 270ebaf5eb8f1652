package order_post

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/dto"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/response"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/middlewares/identity"
)

const headerIdempotencyKey = "Idempotency-Key"

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
	var orderDTO dto.OrderCreateRequest
	err := json.NewDecoder(r.Body).Decode(&orderDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	placement := entities.OrderPlacement{
		Destination:    orderDTO.Destination.ToEntity(),
		Items:          dto.ItemsToEntity(orderDTO.Items),
		SellerID:       orderDTO.SellerID,
		IdempotencyKey: strings.TrimSpace(r.Header.Get(headerIdempotencyKey)),
	}

	placed, err := h.service.CreateOrder(r.Context(), identity.ActorFromContext(r.Context()), placement)
	if err != nil {
		response.Error(w, h.log, response.DeliveryStatus(err), err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, dto.OrderCreateResponse{
		DeliveryID:       placed.DeliveryID,
		ConfirmationCode: placed.ConfirmationCode,
	})
}
