package get_quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WashBooking/internal/api/handlers"
	"github.com/m04kA/SMC-WashBooking/internal/pricing"
)

const (
	msgIncomplete    = "Veuillez sélectionner toutes les options."
	msgUnknownOption = "Option inconnue pour ce service."
	msgInvalidPieces = "Nombre de pièces invalide."
)

type Handler struct {
	resolve PriceResolver
	logger  Logger
}

func NewHandler(resolve PriceResolver, logger Logger) *Handler {
	return &Handler{
		resolve: resolve,
		logger:  logger,
	}
}

// Handle POST /{service}/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind, err := handlers.ServiceKind(r)
	if err != nil {
		handlers.RespondNotFound(w, handlers.MsgUnknownService)
		return
	}

	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /%s/quote - Invalid request body: %v", kind.Collection(), err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidBody)
		return
	}

	price, err := h.resolve(req.ToQuote(kind))
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrIncomplete):
			handlers.RespondBadRequest(w, msgIncomplete)
		case errors.Is(err, pricing.ErrUnknownOption):
			handlers.RespondBadRequest(w, msgUnknownOption)
		case errors.Is(err, pricing.ErrInvalidPieceCount):
			handlers.RespondBadRequest(w, msgInvalidPieces)
		default:
			h.logger.Error("POST /%s/quote - Failed to resolve price: %v", kind.Collection(), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, QuoteResponse{Service: string(kind), Price: price})
}
