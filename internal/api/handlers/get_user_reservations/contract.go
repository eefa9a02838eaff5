package get_user_reservations

import (
	"context"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/internal/service/reservations/models"
)

type ReservationService interface {
	ListByUser(ctx context.Context, kind domain.ServiceKind, email string, actor models.Actor) ([]models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
