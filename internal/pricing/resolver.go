// Package pricing maps service attributes to a price using fixed tables.
//
// Resolve is pure and cheap; callers recompute on every input change.
// A nil price with a nil error means the service is not priced online (tôlerie).
package pricing

import (
	"fmt"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
)

// Quote holds every input that can influence a price
type Quote struct {
	Kind        domain.ServiceKind
	SubOption   domain.SubOption
	VehicleType domain.VehicleType // lavage only; empty means car
	SizeClass   domain.SizeClass
	PieceCount  int // polissage nb_pieces only
}

// IsPriced reports whether reservations of the kind must carry a computed price
func IsPriced(kind domain.ServiceKind) bool {
	return kind != domain.KindTolerie
}

// Resolve returns the price for the quote
func Resolve(q Quote) (*float64, error) {
	switch q.Kind {
	case domain.KindLavage:
		return resolveLavage(q)
	case domain.KindDetailing:
		return resolveDetailing(q)
	case domain.KindPolissage:
		return resolvePolissage(q)
	case domain.KindTolerie:
		// Кузовные работы оцениваются мастером на месте
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownService, q.Kind)
	}
}

func resolveLavage(q Quote) (*float64, error) {
	table := lavageCarPrices
	switch q.VehicleType {
	case domain.VehicleCar, "":
	case domain.VehicleMoto:
		table = lavageMotoPrices
	default:
		return nil, fmt.Errorf("%w: vehicle type %q", ErrUnknownOption, q.VehicleType)
	}

	if q.SizeClass == "" || q.SubOption == "" {
		return nil, ErrIncomplete
	}

	bySub, ok := table[q.SizeClass]
	if !ok {
		return nil, fmt.Errorf("%w: size class %q", ErrUnknownOption, q.SizeClass)
	}

	price, ok := bySub[q.SubOption]
	if !ok {
		return nil, fmt.Errorf("%w: wash type %q", ErrUnknownOption, q.SubOption)
	}

	return &price, nil
}

func resolveDetailing(q Quote) (*float64, error) {
	if q.SizeClass == "" {
		return nil, ErrIncomplete
	}

	price, ok := detailingPrices[q.SizeClass]
	if !ok {
		price = DetailingDefaultPrice
	}
	return &price, nil
}

func resolvePolissage(q Quote) (*float64, error) {
	switch q.SubOption {
	case domain.PolishComplete:
		if q.SizeClass == "" {
			return nil, ErrIncomplete
		}
		price, ok := polishCompletePrices[q.SizeClass]
		if !ok {
			return nil, fmt.Errorf("%w: size class %q", ErrUnknownOption, q.SizeClass)
		}
		return &price, nil

	case domain.PolishPerPieces:
		if q.PieceCount < 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidPieceCount, q.PieceCount)
		}
		if q.PieceCount == 0 {
			return nil, ErrIncomplete
		}
		price := float64(q.PieceCount * PolishPricePerPiece)
		return &price, nil

	case "":
		return nil, ErrIncomplete

	default:
		return nil, fmt.Errorf("%w: polish type %q", ErrUnknownOption, q.SubOption)
	}
}
