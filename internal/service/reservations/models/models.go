package models

import (
	"time"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
)

// Request модели

// Actor автор запроса (из токена)
type Actor struct {
	Email   string
	IsAdmin bool
}

// ListReservationsRequest запрос календаря бронирований (админ)
type ListReservationsRequest struct {
	Kind     domain.ServiceKind
	From     *time.Time // Начало периода (опционально)
	To       *time.Time // Конец периода (опционально)
	Verified *bool      // Фильтр по признаку проверки (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() domain.ReservationFilter {
	return domain.ReservationFilter{
		Kind:      r.Kind,
		StartDate: r.From,
		EndDate:   r.To,
		Verified:  r.Verified,
	}
}

// Response модели

// UserRef владелец бронирования
type UserRef struct {
	Email string `json:"email"`
}

// VehicleResponse описание машины
type VehicleResponse struct {
	Name  string `json:"name"`
	Model string `json:"model"`
	Year  string `json:"year"`
	Plate string `json:"matricule"`
	Size  string `json:"taille"`
}

// MotoResponse описание мотоцикла
type MotoResponse struct {
	Name string `json:"name"`
	Size string `json:"taille"`
}

// ReservationResponse ответ с данными бронирования.
// Поле type означает тип транспорта для lavages и вид полировки для polissage.
type ReservationResponse struct {
	ID         int64            `json:"id"`
	Date       string           `json:"date"` // "2026-11-10"
	Hour       string           `json:"hour"` // "9:30"
	Type       string           `json:"type,omitempty"`
	LavageType string           `json:"lavageType,omitempty"`
	Color      *string          `json:"color,omitempty"`
	NbPieces   *int             `json:"nbPieces,omitempty"`
	Price      *float64         `json:"price,omitempty"`
	User       UserRef          `json:"user"`
	Voiture    *VehicleResponse `json:"voiture,omitempty"`
	Moto       *MotoResponse    `json:"moto,omitempty"`
	Verified   bool             `json:"verified"`
	CreatedAt  string           `json:"createdAt,omitempty"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:       r.ID,
		Date:     r.Date.Format(domain.DateFormat),
		Hour:     r.Hour.String(),
		Color:    r.Color,
		NbPieces: r.PieceCount,
		Price:    r.Price,
		User:     UserRef{Email: r.UserEmail},
		Verified: r.Verified,
	}

	switch r.Kind {
	case domain.KindLavage:
		resp.Type = string(r.VehicleType)
		resp.LavageType = string(r.SubOption)
	case domain.KindPolissage:
		resp.Type = string(r.SubOption)
	}

	if r.Vehicle != nil {
		resp.Voiture = &VehicleResponse{
			Name:  r.Vehicle.Name,
			Model: r.Vehicle.Model,
			Year:  r.Vehicle.Year,
			Plate: r.Vehicle.Plate,
			Size:  string(r.Vehicle.SizeClass),
		}
	}
	if r.Moto != nil {
		resp.Moto = &MotoResponse{Name: r.Moto.Name, Size: string(r.Moto.SizeClass)}
	}
	if !r.CreatedAt.IsZero() {
		resp.CreatedAt = r.CreatedAt.Format(time.RFC3339)
	}

	return resp
}

// FromDomainReservationPublic оставляет только дату, час и вид услуги.
// Используется для публичного списка занятых слотов.
func FromDomainReservationPublic(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}
	resp := &ReservationResponse{
		ID:   r.ID,
		Date: r.Date.Format(domain.DateFormat),
		Hour: r.Hour.String(),
	}
	switch r.Kind {
	case domain.KindLavage:
		resp.Type = string(r.VehicleType)
		resp.LavageType = string(r.SubOption)
	case domain.KindPolissage:
		resp.Type = string(r.SubOption)
	}
	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(list []*domain.Reservation, convert func(*domain.Reservation) *ReservationResponse) []ReservationResponse {
	result := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		if resp := convert(r); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}
