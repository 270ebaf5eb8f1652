package ping_get

import (
	"net/http"

	"github.com/AlekSi/pointer"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/dto"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/response"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, h.log, http.StatusOK, dto.PingResponse{
		Message: pointer.To("pong"),
	})
}
