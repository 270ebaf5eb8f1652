package delivery_proof_post

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

// ServeHTTP отвечает 200 и на повторную отправку: возвращается уже сохраненное подтверждение.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var proofDTO dto.ProofSubmitRequest
	err := json.NewDecoder(r.Body).Decode(&proofDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	submission := entities.ProofSubmission{
		OTP:       proofDTO.OTP,
		Latitude:  proofDTO.Latitude,
		Longitude: proofDTO.Longitude,
		PhotoURL:  proofDTO.PhotoURL,
		Signature: proofDTO.Signature,
	}

	proof, err := h.service.SubmitProof(r.Context(), identity.ActorFromContext(r.Context()), mux.Vars(r)["id"], submission)
	if err != nil {
		response.Error(w, h.log, response.DeliveryStatus(err), err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.ProofFromEntity(proof))
}
