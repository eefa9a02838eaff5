package stats

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
)

// RevenueRepository интерфейс агрегатов по бронированиям
type RevenueRepository interface {
	Revenue(ctx context.Context, kind domain.ServiceKind, from, to *time.Time) (float64, int, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}
