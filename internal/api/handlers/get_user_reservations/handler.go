package get_user_reservations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WashBooking/internal/api/handlers"
	"github.com/m04kA/SMC-WashBooking/internal/api/middleware"
	"github.com/m04kA/SMC-WashBooking/internal/service/reservations"
	"github.com/m04kA/SMC-WashBooking/internal/service/reservations/models"
)

const msgInvalidEmail = "Adresse e-mail invalide."

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

// Handle GET /{service}/user/{email}
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

	email := mux.Vars(r)["email"]
	actor := models.Actor{Email: principal.Email, IsAdmin: principal.IsAdmin()}

	list, err := h.service.ListByUser(r.Context(), kind, email, actor)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /%s/user/{email} - Access denied: user=%s, target=%s", kind.Collection(), principal.Email, email)
			handlers.RespondForbidden(w, handlers.MsgAccessForbidden)
		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidEmail)
		default:
			h.logger.Error("GET /%s/user/{email} - Failed to get reservations: user=%s, error=%v", kind.Collection(), email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
