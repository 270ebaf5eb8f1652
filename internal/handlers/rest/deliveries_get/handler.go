package deliveries_get

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
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
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	deliveries, err := h.service.ListDeliveries(r.Context(), filter)
	if err != nil {
		response.Error(w, h.log, response.DeliveryStatus(err), err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.DeliveriesFromEntity(deliveries))
}

func parseFilter(query url.Values) (entities.DeliveryFilter, error) {
	var filter entities.DeliveryFilter

	if v := query.Get("status"); v != "" {
		status := entities.DeliveryStatus(v)
		filter.Status = &status
	}
	if v := query.Get("courier_id"); v != "" {
		filter.CourierID = &v
	}
	if v := query.Get("client_id"); v != "" {
		filter.ClientID = &v
	}
	if v := query.Get("search"); v != "" {
		filter.SearchText = &v
	}

	var err error
	if v := query.Get("limit"); v != "" {
		filter.Limit, err = strconv.ParseUint(v, 10, 64)
		if err != nil {
			return entities.DeliveryFilter{}, fmt.Errorf("invalid limit %q: %w", v, err)
		}
	}
	if v := query.Get("offset"); v != "" {
		filter.Offset, err = strconv.ParseUint(v, 10, 64)
		if err != nil {
			return entities.DeliveryFilter{}, fmt.Errorf("invalid offset %q: %w", v, err)
		}
	}

	return filter, nil
}
