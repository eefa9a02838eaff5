package create_reservation

import (
	"strings"

	"github.com/m04kA/SMC-WashBooking/internal/api/handlers"
	"github.com/m04kA/SMC-WashBooking/internal/domain"
	createReservation "github.com/m04kA/SMC-WashBooking/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-WashBooking/pkg/types"
)

type userRef struct {
	Email string `json:"email"`
}

type vehicleRequest struct {
	Name  string `json:"name"`
	Model string `json:"model"`
	Year  string `json:"year"`
	Plate string `json:"matricule"`
	Size  string `json:"taille"`
}

type motoRequest struct {
	Name string `json:"name"`
	Size string `json:"taille"`
}

// CreateReservationRequest HTTP request model, общий для всех коллекций.
// type: тип транспорта для lavages, вид полировки для polissage.
type CreateReservationRequest struct {
	Date       string          `json:"date"` // "2026-11-10"
	Hour       string          `json:"hour"` // "9:30" или "09:30"
	Type       string          `json:"type,omitempty"`
	LavageType string          `json:"lavageType,omitempty"`
	Color      *string         `json:"color,omitempty"`
	NbPieces   *int            `json:"nbPieces,omitempty"`
	Price      *float64        `json:"price,omitempty"`
	User       *userRef        `json:"user,omitempty"`
	Voiture    *vehicleRequest `json:"voiture,omitempty"`
	Moto       *motoRequest    `json:"moto,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(kind domain.ServiceKind, email string) (*createReservation.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	hour, err := types.NewTimeStringFromString(strings.TrimSpace(r.Hour))
	if err != nil {
		return nil, errInvalidHour
	}

	req := &createReservation.Request{
		Kind:        kind,
		UserEmail:   email,
		Date:        date,
		Hour:        hour,
		Color:       r.Color,
		PieceCount:  r.NbPieces,
		ClientPrice: r.Price,
	}

	switch kind {
	case domain.KindLavage:
		req.VehicleType = domain.VehicleType(r.Type)
		req.SubOption = domain.SubOption(r.LavageType)
	case domain.KindPolissage:
		req.SubOption = domain.SubOption(r.Type)
	}

	if r.Voiture != nil {
		req.Vehicle = &domain.VehicleProfile{
			Name:      strings.TrimSpace(r.Voiture.Name),
			Model:     strings.TrimSpace(r.Voiture.Model),
			Year:      strings.TrimSpace(r.Voiture.Year),
			Plate:     strings.TrimSpace(r.Voiture.Plate),
			SizeClass: domain.SizeClass(r.Voiture.Size),
		}
	}
	if r.Moto != nil {
		req.Moto = &domain.MotoProfile{
			Name:      strings.TrimSpace(r.Moto.Name),
			SizeClass: domain.SizeClass(r.Moto.Size),
		}
	}

	return req, nil
}
