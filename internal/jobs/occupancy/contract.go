package occupancy

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	BookedHours(ctx context.Context, kind domain.ServiceKind, date time.Time) ([]types.TimeString, error)
}

// Metrics gauges загрузки слотов
type Metrics interface {
	SetOccupancy(service string, booked, free int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
