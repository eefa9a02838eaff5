package domain

import (
	"time"

	"github.com/m04kA/SMC-WashBooking/pkg/types"
)

// VehicleProfile describes the car brought in for a service
type VehicleProfile struct {
	Name      string
	Model     string
	Year      string
	Plate     string
	SizeClass SizeClass
}

// MotoProfile describes a two-wheeler brought in for a wash
type MotoProfile struct {
	Name      string
	SizeClass SizeClass
}

// Reservation is a booked slot for one service kind
type Reservation struct {
	ID          int64
	Kind        ServiceKind
	Date        time.Time
	Hour        types.TimeString
	SubOption   SubOption   // lavage: rapide/express, polissage: complete/nb_pieces
	VehicleType VehicleType // lavage only
	Vehicle     *VehicleProfile
	Moto        *MotoProfile
	Color       *string  // tôlerie only
	PieceCount  *int     // polissage per piece only
	Price       *float64 // nil for tôlerie
	UserEmail   string
	Verified    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy reports whether the reservation belongs to the given user
func (r *Reservation) IsOwnedBy(email string) bool {
	return r.UserEmail != "" && r.UserEmail == email
}

// HasPrice reports whether a price was computed for the reservation
func (r *Reservation) HasPrice() bool {
	return r.Price != nil
}

// ReservationFilter фильтр для выборки бронирований одного вида услуги
type ReservationFilter struct {
	Kind      ServiceKind // Обязательный параметр
	StartDate *time.Time  // Начало периода (опционально)
	EndDate   *time.Time  // Конец периода (опционально)
	UserEmail *string     // Фильтр по владельцу (опционально)
	Verified  *bool       // Фильтр по признаку проверки (опционально)
}

// IsSingleDay reports whether the filter targets exactly one date
func (f ReservationFilter) IsSingleDay() bool {
	return f.StartDate != nil && f.EndDate != nil && f.StartDate.Equal(*f.EndDate)
}
