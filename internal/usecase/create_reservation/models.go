package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Kind        domain.ServiceKind
	UserEmail   string    // Email из токена, не из тела запроса
	Date        time.Time // Дата без времени
	Hour        types.TimeString
	SubOption   domain.SubOption
	VehicleType domain.VehicleType // Только для lavage, пусто = voiture
	Vehicle     *domain.VehicleProfile
	Moto        *domain.MotoProfile
	Color       *string
	PieceCount  *int
	ClientPrice *float64 // Цена, которую показал клиент (только для логирования)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Reservation *domain.Reservation
	// PriceAdjusted true, если цена клиента не совпала с пересчитанной
	PriceAdjusted bool
}
