package delete_reservation

import (
	"context"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/internal/service/reservations/models"
)

type ReservationService interface {
	Delete(ctx context.Context, kind domain.ServiceKind, id int64, actor models.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
