package booking

import (
	"fmt"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/internal/pricing"
	"github.com/m04kA/SMC-WashBooking/internal/slots"
)

// VehicleShape describes which vehicle fields a service form collects
type VehicleShape int

const (
	// ShapeCar: full car profile (name, model, year, plate, size)
	ShapeCar VehicleShape = iota
	// ShapeCarOrMoto: car profile or a moto profile (name, size), chosen by Form.VehicleType
	ShapeCarOrMoto
)

// ServiceConfig is everything that differs between the service forms
type ServiceConfig struct {
	Kind          domain.ServiceKind
	Grid          slots.GridSpec
	Vehicle       VehicleShape
	PriceRequired bool
	RequiresColor bool
	Price         func(Form) (*float64, error)
	Defaults      Form
}

// ConfigFor returns the form configuration of a service kind
func ConfigFor(kind domain.ServiceKind) (ServiceConfig, error) {
	grid, err := slots.GridFor(kind)
	if err != nil {
		return ServiceConfig{}, err
	}

	cfg := ServiceConfig{
		Kind:          kind,
		Grid:          grid,
		Vehicle:       ShapeCar,
		PriceRequired: pricing.IsPriced(kind),
	}

	switch kind {
	case domain.KindLavage:
		cfg.Vehicle = ShapeCarOrMoto
		cfg.Price = lavagePrice
		cfg.Defaults = Form{
			SubOption:   domain.WashRapide,
			VehicleType: domain.VehicleCar,
			Vehicle:     domain.VehicleProfile{SizeClass: domain.SizeCitadine},
			Moto:        domain.MotoProfile{SizeClass: domain.SizeMotoSmall},
		}
	case domain.KindDetailing:
		cfg.Price = detailingPrice
		cfg.Defaults = Form{
			Vehicle: domain.VehicleProfile{SizeClass: domain.SizeCitadine},
		}
	case domain.KindPolissage:
		cfg.Price = polissagePrice
		cfg.Defaults = Form{SubOption: domain.PolishComplete}
	case domain.KindTolerie:
		cfg.RequiresColor = true
		cfg.Price = func(Form) (*float64, error) { return nil, nil }
	default:
		return ServiceConfig{}, fmt.Errorf("%w: %q", domain.ErrUnknownServiceKind, kind)
	}

	return cfg, nil
}

// QuoteFor maps form fields onto a pricing quote for the kind
func QuoteFor(kind domain.ServiceKind, form Form) pricing.Quote {
	q := pricing.Quote{
		Kind:      kind,
		SubOption: form.SubOption,
		SizeClass: form.Vehicle.SizeClass,
	}

	switch kind {
	case domain.KindLavage:
		q.VehicleType = form.VehicleType
		if form.VehicleType == domain.VehicleMoto {
			q.SizeClass = form.Moto.SizeClass
		}
	case domain.KindPolissage:
		q.PieceCount = form.PieceCount
	case domain.KindDetailing, domain.KindTolerie:
		q.SubOption = ""
	}

	return q
}

func lavagePrice(form Form) (*float64, error) {
	return pricing.Resolve(QuoteFor(domain.KindLavage, form))
}

func detailingPrice(form Form) (*float64, error) {
	return pricing.Resolve(QuoteFor(domain.KindDetailing, form))
}

func polissagePrice(form Form) (*float64, error) {
	return pricing.Resolve(QuoteFor(domain.KindPolissage, form))
}
