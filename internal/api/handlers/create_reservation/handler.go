package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WashBooking/internal/api/handlers"
	"github.com/m04kA/SMC-WashBooking/internal/api/middleware"
	"github.com/m04kA/SMC-WashBooking/internal/service/reservations/models"
	createReservation "github.com/m04kA/SMC-WashBooking/internal/usecase/create_reservation"
)

const (
	msgInvalidHour      = "Heure invalide, format attendu HH:MM."
	msgSlotNotAvailable = "Ce créneau est déjà réservé."
	msgInvalidTimeSlot  = "Cette heure n'est pas proposée pour ce service."
	msgPastDate         = "Impossible de réserver une date passée."
	msgVehicleRequired  = "Veuillez compléter les informations du véhicule."
	msgColorRequired    = "Veuillez indiquer la couleur du véhicule."
	msgPriceUnavailable = "Impossible de calculer le prix pour ces options."
	msgInvalidInput     = "Données de réservation invalides."
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidHour = errors.New("invalid hour")
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /{service}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind, err := handlers.ServiceKind(r)
	if err != nil {
		handlers.RespondNotFound(w, handlers.MsgUnknownService)
		return
	}

	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, handlers.MsgSignInRequired)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /%s - Invalid request body: %v", kind.Collection(), err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidBody)
		return
	}

	// Бронирование оформляется на владельца токена; администратор может указать клиента
	email := principal.Email
	if principal.IsAdmin() && req.User != nil && req.User.Email != "" {
		email = req.User.Email
	}

	useCaseReq, err := req.ToUseCaseRequest(kind, email)
	if err != nil {
		h.logger.Warn("POST /%s - Failed to parse request: %v", kind.Collection(), err)
		if errors.Is(err, errInvalidHour) {
			handlers.RespondBadRequest(w, msgInvalidHour)
		} else {
			handlers.RespondBadRequest(w, handlers.MsgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /%s - Slot not available: date=%s, hour=%s", kind.Collection(), req.Date, req.Hour)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createReservation.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createReservation.ErrVehicleRequired):
			handlers.RespondBadRequest(w, msgVehicleRequired)

		case errors.Is(err, createReservation.ErrColorRequired):
			handlers.RespondBadRequest(w, msgColorRequired)

		case errors.Is(err, createReservation.ErrPriceUnavailable):
			handlers.RespondBadRequest(w, msgPriceUnavailable)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /%s - Invalid input: %v", kind.Collection(), err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /%s - Failed to create reservation: user=%s, error=%v", kind.Collection(), email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /%s - Reservation created successfully: id=%d, user=%s",
		kind.Collection(), result.Reservation.ID, email)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainReservation(result.Reservation))
}
