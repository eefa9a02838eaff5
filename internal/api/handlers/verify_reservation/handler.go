package verify_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WashBooking/internal/api/handlers"
	"github.com/m04kA/SMC-WashBooking/internal/service/reservations"
)

const (
	msgMissingVerified = "Le champ verified est obligatoire."
	msgNotFound        = "Réservation introuvable."
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /{service}/{id}/verify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind, err := handlers.ServiceKind(r)
	if err != nil {
		handlers.RespondNotFound(w, handlers.MsgUnknownService)
		return
	}

	id, err := handlers.ReservationID(r)
	if err != nil {
		h.logger.Warn("PUT /%s/{id}/verify - Invalid reservation ID: %v", kind.Collection(), err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidID)
		return
	}

	var req VerifyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /%s/{id}/verify - Invalid request body: %v", kind.Collection(), err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidBody)
		return
	}
	if req.Verified == nil {
		handlers.RespondBadRequest(w, msgMissingVerified)
		return
	}

	resp, err := h.service.SetVerified(r.Context(), kind, id, *req.Verified)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.MsgInvalidID)
		default:
			h.logger.Error("PUT /%s/{id}/verify - Failed to update reservation: id=%d, error=%v", kind.Collection(), id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /%s/{id}/verify - Reservation updated: id=%d, verified=%t", kind.Collection(), id, *req.Verified)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
