package delete_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WashBooking/internal/api/handlers"
	"github.com/m04kA/SMC-WashBooking/internal/api/middleware"
	"github.com/m04kA/SMC-WashBooking/internal/service/reservations"
	"github.com/m04kA/SMC-WashBooking/internal/service/reservations/models"
)

const msgNotFound = "Réservation introuvable."

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

// Handle DELETE /{service}/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind, err := handlers.ServiceKind(r)
	if err != nil {
		handlers.RespondNotFound(w, handlers.MsgUnknownService)
		return
	}

	id, err := handlers.ReservationID(r)
	if err != nil {
		h.logger.Warn("DELETE /%s/{id} - Invalid reservation ID: %v", kind.Collection(), err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidID)
		return
	}

	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, handlers.MsgSignInRequired)
		return
	}

	err = h.service.Delete(r.Context(), kind, id, models.Actor{Email: principal.Email, IsAdmin: principal.IsAdmin()})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("DELETE /%s/{id} - Access denied: id=%d, user=%s", kind.Collection(), id, principal.Email)
			handlers.RespondForbidden(w, handlers.MsgAccessForbidden)
		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.MsgInvalidID)
		default:
			h.logger.Error("DELETE /%s/{id} - Failed to delete reservation: id=%d, error=%v", kind.Collection(), id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /%s/{id} - Reservation deleted: id=%d, user=%s", kind.Collection(), id, principal.Email)
	handlers.RespondNoContent(w)
}
