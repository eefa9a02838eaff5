package get_quote

import (
	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/internal/pricing"
)

// QuoteRequest HTTP request model.
// type: тип транспорта для lavages, вид полировки для polissage.
type QuoteRequest struct {
	Type       string `json:"type,omitempty"`
	LavageType string `json:"lavageType,omitempty"`
	Size       string `json:"taille,omitempty"`
	NbPieces   int    `json:"nbPieces,omitempty"`
}

// QuoteResponse HTTP response model; price = null для tolerie
type QuoteResponse struct {
	Service string   `json:"service"`
	Price   *float64 `json:"price"`
}

// ToQuote конвертирует HTTP запрос в параметры расчета цены
func (r *QuoteRequest) ToQuote(kind domain.ServiceKind) pricing.Quote {
	q := pricing.Quote{
		Kind:      kind,
		SizeClass: domain.SizeClass(r.Size),
	}

	switch kind {
	case domain.KindLavage:
		q.VehicleType = domain.VehicleType(r.Type)
		q.SubOption = domain.SubOption(r.LavageType)
	case domain.KindPolissage:
		q.SubOption = domain.SubOption(r.Type)
		q.PieceCount = r.NbPieces
	}

	return q
}
