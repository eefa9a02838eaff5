package reservationgateway

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/pkg/types"
)

type userRef struct {
	Email string `json:"email"`
}

type vehicleDTO struct {
	Name      string `json:"name"`
	Model     string `json:"model"`
	Year      string `json:"year"`
	Plate     string `json:"matricule"`
	SizeClass string `json:"taille"`
}

type motoDTO struct {
	Name      string `json:"name"`
	SizeClass string `json:"taille"`
}

// reservationDTO общее представление бронирования для всех коллекций.
// Поле type означает тип транспорта для lavages и вид полировки для polissage.
type reservationDTO struct {
	ID         int64       `json:"id,omitempty"`
	Date       string      `json:"date"`
	Hour       string      `json:"hour"`
	Type       string      `json:"type,omitempty"`
	LavageType string      `json:"lavageType,omitempty"`
	Color      *string     `json:"color,omitempty"`
	NbPieces   *int        `json:"nbPieces,omitempty"`
	Price      *float64    `json:"price,omitempty"`
	User       userRef     `json:"user"`
	Voiture    *vehicleDTO `json:"voiture,omitempty"`
	Moto       *motoDTO    `json:"moto,omitempty"`
	Verified   bool        `json:"verified,omitempty"`
	CreatedAt  string      `json:"createdAt,omitempty"`
}

type byDateRequest struct {
	Date string `json:"date"`
}

type slotDTO struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

type availabilityDTO struct {
	Date    string    `json:"date"`
	Service string    `json:"service"`
	Slots   []slotDTO `json:"slots"`
}

// errorResponse тело ошибки: часть коллекций отдаёт message, часть error
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e errorResponse) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

func fromDomain(r *domain.Reservation) reservationDTO {
	dto := reservationDTO{
		Date:     r.Date.Format(domain.DateFormat),
		Hour:     r.Hour.String(),
		Color:    r.Color,
		NbPieces: r.PieceCount,
		Price:    r.Price,
		User:     userRef{Email: r.UserEmail},
	}

	switch r.Kind {
	case domain.KindLavage:
		dto.Type = string(r.VehicleType)
		dto.LavageType = string(r.SubOption)
	case domain.KindPolissage:
		dto.Type = string(r.SubOption)
	}

	if r.Vehicle != nil {
		dto.Voiture = &vehicleDTO{
			Name:      r.Vehicle.Name,
			Model:     r.Vehicle.Model,
			Year:      r.Vehicle.Year,
			Plate:     r.Vehicle.Plate,
			SizeClass: string(r.Vehicle.SizeClass),
		}
	}
	if r.Moto != nil {
		dto.Moto = &motoDTO{Name: r.Moto.Name, SizeClass: string(r.Moto.SizeClass)}
	}

	return dto
}

func (d reservationDTO) toDomain(kind domain.ServiceKind) (*domain.Reservation, error) {
	date, err := time.Parse(domain.DateFormat, d.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", d.Date, err)
	}
	hour, err := types.NewTimeStringFromString(d.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid hour %q: %w", d.Hour, err)
	}

	r := &domain.Reservation{
		ID:         d.ID,
		Kind:       kind,
		Date:       date,
		Hour:       hour,
		Color:      d.Color,
		PieceCount: d.NbPieces,
		Price:      d.Price,
		UserEmail:  d.User.Email,
		Verified:   d.Verified,
	}

	switch kind {
	case domain.KindLavage:
		r.VehicleType = domain.VehicleType(d.Type)
		r.SubOption = domain.SubOption(d.LavageType)
	case domain.KindPolissage:
		r.SubOption = domain.SubOption(d.Type)
	}

	if d.Voiture != nil {
		r.Vehicle = &domain.VehicleProfile{
			Name:      d.Voiture.Name,
			Model:     d.Voiture.Model,
			Year:      d.Voiture.Year,
			Plate:     d.Voiture.Plate,
			SizeClass: domain.SizeClass(d.Voiture.SizeClass),
		}
	}
	if d.Moto != nil {
		r.Moto = &domain.MotoProfile{Name: d.Moto.Name, SizeClass: domain.SizeClass(d.Moto.SizeClass)}
	}
	if d.CreatedAt != "" {
		if created, err := time.Parse(time.RFC3339, d.CreatedAt); err == nil {
			r.CreatedAt = created
		}
	}

	return r, nil
}
