package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WashBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-WashBooking/internal/usecase/get_available_slots"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /{service}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind, err := handlers.ServiceKind(r)
	if err != nil {
		handlers.RespondNotFound(w, handlers.MsgUnknownService)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /%s/available-slots - Missing date", kind.Collection())
		handlers.RespondBadRequest(w, handlers.MsgMissingDate)
		return
	}

	date, err := handlers.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /%s/available-slots - Invalid date format: %v", kind.Collection(), err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Kind: kind, Date: date})
	if err != nil {
		if errors.Is(err, getAvailableSlots.ErrInvalidInput) {
			handlers.RespondBadRequest(w, handlers.MsgInvalidDate)
			return
		}
		h.logger.Error("GET /%s/available-slots - Failed to get slots: date=%s, error=%v", kind.Collection(), dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /%s/available-slots - Slots retrieved successfully: date=%s, free=%d/%d",
		kind.Collection(), dateStr, result.FreeCount(), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
