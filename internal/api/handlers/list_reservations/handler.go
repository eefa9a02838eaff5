package list_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WashBooking/internal/api/handlers"
	"github.com/m04kA/SMC-WashBooking/internal/service/reservations"
)

const (
	msgInvalidFilter = "Filtre invalide: from et to au format AAAA-MM-JJ, verified true ou false."
	msgInvalidRange  = "La date de début doit précéder la date de fin."
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

// Handle GET /{service}
// Query params: from, to (optional, YYYY-MM-DD), verified (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind, err := handlers.ServiceKind(r)
	if err != nil {
		handlers.RespondNotFound(w, handlers.MsgUnknownService)
		return
	}

	req, err := ToServiceRequest(kind, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /%s - Invalid filter: %v", kind.Collection(), err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	list, err := h.service.ListAll(r.Context(), req)
	if err != nil {
		if errors.Is(err, reservations.ErrInvalidTimeRange) {
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
		h.logger.Error("GET /%s - Failed to list reservations: %v", kind.Collection(), err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
