package list_booked_hours

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/internal/service/reservations/models"
)

type ReservationService interface {
	ListByDate(ctx context.Context, kind domain.ServiceKind, date time.Time) ([]models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
