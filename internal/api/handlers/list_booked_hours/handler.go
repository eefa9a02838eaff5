package list_booked_hours

import (
	"net/http"

	"github.com/m04kA/SMC-WashBooking/internal/api/handlers"
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

// Handle POST /{service}/by-date
// Возвращает бронирования на дату без персональных данных
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind, err := handlers.ServiceKind(r)
	if err != nil {
		handlers.RespondNotFound(w, handlers.MsgUnknownService)
		return
	}

	var req ByDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /%s/by-date - Invalid request body: %v", kind.Collection(), err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidBody)
		return
	}
	if req.Date == "" {
		handlers.RespondBadRequest(w, handlers.MsgMissingDate)
		return
	}

	date, err := handlers.ParseDate(req.Date)
	if err != nil {
		h.logger.Warn("POST /%s/by-date - Invalid date %q", kind.Collection(), req.Date)
		handlers.RespondBadRequest(w, handlers.MsgInvalidDate)
		return
	}

	list, err := h.service.ListByDate(r.Context(), kind, date)
	if err != nil {
		h.logger.Error("POST /%s/by-date - Failed to list reservations: date=%s, error=%v", kind.Collection(), req.Date, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
