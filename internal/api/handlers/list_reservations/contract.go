package list_reservations

import (
	"context"

	"github.com/m04kA/SMC-WashBooking/internal/service/reservations/models"
)

type ReservationService interface {
	ListAll(ctx context.Context, req *models.ListReservationsRequest) ([]models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
