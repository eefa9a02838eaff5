package booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/internal/session"
)

// Gateway интерфейс клиента сервиса бронирований
type Gateway interface {
	// BookedHours возвращает часы уже забронированных слотов на дату (как их вернул сервер)
	BookedHours(ctx context.Context, kind domain.ServiceKind, date time.Time) ([]string, error)
	// Create создаёт бронирование, идентификатор присваивает сервер
	Create(ctx context.Context, kind domain.ServiceKind, draft *domain.Reservation) (*domain.Reservation, error)
}

// Session источник текущего пользователя
type Session interface {
	Current() (session.Identity, bool)
}

// Navigator переходы между экранами
type Navigator interface {
	ToSignIn()
	ToReservations()
	ToDashboard()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// serverMessage реализуется ошибками шлюза, несущими текст ответа сервера
type serverMessage interface {
	ServerMessage() string
}

// conflictError реализуется ошибками шлюза для ответа "слот уже занят"
type conflictError interface {
	IsConflict() bool
}
